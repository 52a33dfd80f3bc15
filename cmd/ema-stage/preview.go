package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/koscakluka/ema-stage/core/diagnostics"
	"github.com/koscakluka/ema-stage/core/expressions"
	"github.com/koscakluka/ema-stage/core/scenes"
	"github.com/koscakluka/ema-stage/core/vocabulary"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	actorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06B6D4"))

	talkingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#888888")).
			Padding(0, 1)
)

// renderPreview renders one panel per speaking timeline followed by the
// reaction timelines and the warnings of the run.
func renderPreview(scene *scenes.Scene, warnings []diagnostics.Warning, width int) string {
	var b strings.Builder

	header := fmt.Sprintf("scene %s  %dms", scene.ID, scene.SceneDuration)
	if scene.IsFallback {
		header += "  " + warningStyle.Render("fallback")
	}
	b.WriteString(titleStyle.Render(header) + "\n")
	b.WriteString(dimStyle.Render("roster: "+strings.Join(scene.Roster.IDs(), ", ")) + "\n")

	for _, tl := range scene.Timelines {
		b.WriteString(panelStyle.Render(renderTimeline(scene.Roster, tl, width)) + "\n")
	}

	for _, actor := range scene.NonSpeakers() {
		reaction, ok := scene.NonSpeakerBehavior[actor.ID]
		if !ok {
			continue
		}
		b.WriteString(dimStyle.Render(renderTimeline(scene.Roster, reaction, width)) + "\n")
	}

	for _, w := range warnings {
		line := fmt.Sprintf("[%s] %s", w.Kind.Stage(), w.Message)
		b.WriteString(warningStyle.Render(wordwrap.String(line, width)) + "\n")
	}
	return b.String()
}

func renderTimeline(roster scenes.Roster, tl scenes.Timeline, width int) string {
	var b strings.Builder

	name := tl.ActorID
	if actor, ok := roster.Actor(tl.ActorID); ok && actor.Name != "" {
		name = actor.Name
	}
	title := fmt.Sprintf("%s  [%d, %d)ms", actorStyle.Render(name), tl.StartDelay, tl.End())
	if tl.IsInterruption {
		title += " " + warningStyle.Render("interrupts")
	}
	b.WriteString(title + "\n")
	if tl.Caption != "" {
		b.WriteString(dimStyle.Render("*"+tl.Caption+"*") + "\n")
	}

	content := []rune(tl.Content)
	at := tl.StartDelay
	for _, segment := range tl.Segments {
		line := fmt.Sprintf("%6d %6dms  %s", at, segment.Duration, segment.Animation)
		if segment.Face != nil && segment.Face.Gaze != "" {
			line += dimStyle.Render(" gaze=" + segment.Face.Gaze)
		}
		if segment.IsTalking {
			line = talkingStyle.Render(line)
		}
		b.WriteString(line + "\n")

		if r := segment.TextReveal; r != nil && r.Start >= 0 && r.End <= len(content) && r.Len() > 0 {
			text := wordwrap.String(string(content[r.Start:r.End]), max(width-16, 20))
			b.WriteString(indent.String(text, 16) + "\n")
		}
		at += segment.Duration
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderVocabulary lists the accepted values of every field and the known
// mood presets.
func renderVocabulary(width int) string {
	var b strings.Builder
	for _, field := range vocabulary.Fields {
		v, ok := vocabulary.Lookup(field)
		if !ok {
			continue
		}
		b.WriteString(actorStyle.Render(string(field)) + dimStyle.Render(" (default "+v.Default+")") + "\n")
		b.WriteString(indent.String(wordwrap.String(strings.Join(v.Terms, ", "), max(width-2, 20)), 2) + "\n")
	}

	b.WriteString(actorStyle.Render("moods") + "\n")
	b.WriteString(indent.String(wordwrap.String(strings.Join(expressions.Names(), ", "), max(width-2, 20)), 2) + "\n")
	return b.String()
}
