package scenes

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrDurationMismatch = errors.New("total duration does not match segment durations")
	ErrRevealCoverage   = errors.New("talking text ranges do not cover the content")
	ErrNegativeDelay    = errors.New("start delay is negative")
)

// Timeline is one actor's full turn.
type Timeline struct {
	ActorID string `json:"actorId" yaml:"actor_id"`
	// Content is the cleaned dialogue text; text reveal ranges index into it.
	Content string `json:"content" yaml:"content"`
	// Caption holds stage directions stripped from the dialogue.
	Caption        string            `json:"caption,omitempty" yaml:"caption,omitempty"`
	Segments       []Segment         `json:"segments" yaml:"segments"`
	TotalDuration  int               `json:"totalDuration" yaml:"total_duration"`
	StartDelay     int               `json:"startDelay" yaml:"start_delay"`
	IsInterruption bool              `json:"isInterruption" yaml:"is_interruption"`
	Order          int               `json:"order,omitempty" yaml:"order,omitempty"`
	Voice          map[string]string `json:"voice,omitempty" yaml:"voice,omitempty"`
}

// Recompute sets TotalDuration to the sum of the segment durations.
func (t *Timeline) Recompute() {
	total := 0
	for _, segment := range t.Segments {
		total += segment.Duration
	}
	t.TotalDuration = total
}

// End is the offset from scene start at which the timeline finishes.
func (t Timeline) End() int { return t.StartDelay + t.TotalDuration }

func (t Timeline) ContentLength() int { return utf8.RuneCountInString(t.Content) }

func (t Timeline) TalkingSegments() []Segment {
	var talking []Segment
	for _, segment := range t.Segments {
		if segment.IsTalking {
			talking = append(talking, segment)
		}
	}
	return talking
}

// Validate checks the timeline invariants: the total equals the sum of the
// segments, the start delay is not negative and the talking ranges cover the
// whole content. The only characters allowed between two consecutive ranges
// are the line breaks that separate sentences.
func (t Timeline) Validate() error {
	sum := 0
	for _, segment := range t.Segments {
		sum += segment.Duration
	}
	if sum != t.TotalDuration {
		return fmt.Errorf("%w: actor %s has total %d, segments sum to %d", ErrDurationMismatch, t.ActorID, t.TotalDuration, sum)
	}
	if t.StartDelay < 0 {
		return fmt.Errorf("%w: actor %s starts at %d", ErrNegativeDelay, t.ActorID, t.StartDelay)
	}
	return t.validateReveal()
}

func (t Timeline) validateReveal() error {
	content := []rune(t.Content)
	cursor := 0
	seen := false
	for i, segment := range t.Segments {
		if !segment.IsTalking {
			continue
		}
		r := segment.TextReveal
		if r == nil {
			return fmt.Errorf("%w: actor %s talking segment %d has no range", ErrRevealCoverage, t.ActorID, i)
		}
		if r.Start > r.End || r.End > len(content) {
			return fmt.Errorf("%w: actor %s segment %d has invalid range [%d,%d)", ErrRevealCoverage, t.ActorID, i, r.Start, r.End)
		}
		if !seen && r.Start != 0 {
			return fmt.Errorf("%w: actor %s first range starts at %d", ErrRevealCoverage, t.ActorID, r.Start)
		}
		if r.Start < cursor {
			return fmt.Errorf("%w: actor %s segment %d overlaps the previous range", ErrRevealCoverage, t.ActorID, i)
		}
		if gap := string(content[cursor:r.Start]); strings.Trim(gap, "\n") != "" {
			return fmt.Errorf("%w: actor %s leaves %q unrevealed", ErrRevealCoverage, t.ActorID, gap)
		}
		cursor = r.End
		seen = true
	}
	if seen && cursor != len(content) {
		return fmt.Errorf("%w: actor %s last range ends at %d of %d", ErrRevealCoverage, t.ActorID, cursor, len(content))
	}
	return nil
}
