// Package guidelines inspects finished scenes for content that breaks the
// authoring guidelines given to the model. It only reports, it never
// changes a scene.
package guidelines

import (
	"context"
	"regexp"
	"strings"

	"github.com/koscakluka/ema-stage/core/diagnostics"
	"github.com/koscakluka/ema-stage/core/scenes"
)

var bracketedPrefix = regexp.MustCompile(`(?m)^\s*\[[^\[\]\n]{1,40}\]|\[[^\[\]\n]{1,40}\]\s*:`)

// Check reports duplicate speakers, leftover name prefixes, blank dialogue
// and actors outside the roster. Every finding is added to warnings and
// returned.
func Check(ctx context.Context, scene *scenes.Scene, warnings *diagnostics.Collector) []diagnostics.Warning {
	if scene == nil {
		return nil
	}

	var found []diagnostics.Warning
	report := func(w diagnostics.Warning) {
		found = append(found, w)
		warnings.Add(ctx, w)
	}

	seen := map[string]bool{}
	for _, tl := range scene.Timelines {
		if seen[tl.ActorID] {
			report(diagnostics.Warning{
				Kind:    diagnostics.KindDuplicateSpeaker,
				Actor:   tl.ActorID,
				Message: "actor speaks more than once in the scene",
			})
		}
		seen[tl.ActorID] = true

		if strings.TrimSpace(tl.Content) == "" {
			report(diagnostics.Warning{
				Kind:    diagnostics.KindBlankDialogue,
				Actor:   tl.ActorID,
				Message: "turn has no dialogue",
			})
		}

		if prefix, ok := namePrefix(tl.Content, scene.Roster); ok {
			report(diagnostics.Warning{
				Kind:    diagnostics.KindLeftoverNamePrefix,
				Actor:   tl.ActorID,
				Value:   prefix,
				Message: "dialogue still contains a speaker name prefix",
			})
		}

		if len(scene.Roster) > 0 && !scene.Roster.Contains(tl.ActorID) {
			report(outsideRoster(tl.ActorID))
		}
	}

	if len(scene.Roster) > 0 {
		for actor := range scene.NonSpeakerBehavior {
			if !scene.Roster.Contains(actor) {
				report(outsideRoster(actor))
			}
		}
	}

	return found
}

func namePrefix(content string, roster scenes.Roster) (string, bool) {
	if match := bracketedPrefix.FindString(content); match != "" {
		return strings.TrimSpace(match), true
	}

	name, _, ok := strings.Cut(content, ":")
	if !ok || strings.ContainsAny(name, "\n.!?") {
		return "", false
	}
	if _, known := roster.Resolve(name); known {
		return name + ":", true
	}
	return "", false
}

func outsideRoster(actor string) diagnostics.Warning {
	return diagnostics.Warning{
		Kind:    diagnostics.KindActorOutsideRoster,
		Actor:   actor,
		Message: "actor is not part of the roster",
	}
}
