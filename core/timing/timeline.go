package timing

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/koscakluka/ema-stage/core/diagnostics"
	"github.com/koscakluka/ema-stage/core/scenes"
	"github.com/koscakluka/ema-stage/core/vocabulary"
)

// Turn is a validated directive ready for timing.
type Turn struct {
	ActorID string
	Text    string
	// Animation and Speed are canonical vocabulary values.
	Animation string
	Speed     string
	Face      scenes.FaceState
	Interrupt bool
	Order     int
	Voice     map[string]string
}

type Calculator struct {
	config   Config
	warnings *diagnostics.Collector
}

type CalculatorOption func(*Calculator)

func WithWarnings(warnings *diagnostics.Collector) CalculatorOption {
	return func(c *Calculator) { c.warnings = warnings }
}

func NewCalculator(config Config, opts ...CalculatorOption) *Calculator {
	c := &Calculator{config: config}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TalkingDuration returns the duration of a spoken sentence of the given
// length in code points.
func (c *Calculator) TalkingDuration(length int, profile SpeedProfile) int {
	duration := int(math.Round(float64(length) * c.config.BaseMsPerChar * profile.Multiplier))
	return c.config.Clamp(duration)
}

// PauseDuration draws an inter-sentence pause from the configured range and
// scales it by the speed multiplier.
func (c *Calculator) PauseDuration(rng *rand.Rand, profile SpeedProfile) int {
	spread := c.config.PauseMax - c.config.PauseMin + 1
	var draw int
	if rng != nil {
		draw = rng.IntN(spread)
	} else {
		draw = rand.IntN(spread)
	}
	pause := float64(c.config.PauseMin+draw) * profile.Multiplier
	return c.config.Clamp(int(math.Round(pause)))
}

// GestureDuration returns the duration of a non-talking animation.
func (c *Calculator) GestureDuration(animation string, profile SpeedProfile) int {
	base, ok := c.config.AnimationDurations[animation]
	if !ok {
		base = c.config.DefaultAnimationDuration
	}
	return c.config.Clamp(int(math.Round(float64(base) * profile.Multiplier)))
}

// BuildTimeline turns a validated turn into a timeline starting at zero.
//
// A declared gesture is played first, then every sentence gets a talking
// segment with idle pauses in between.
func (c *Calculator) BuildTimeline(ctx context.Context, turn Turn, rng *rand.Rand) scenes.Timeline {
	cleaned := CleanText(turn.Text)
	sentences := SplitSentences(cleaned.Text)
	profile := c.config.Profile(turn.Speed)

	tl := scenes.Timeline{
		ActorID:        turn.ActorID,
		Content:        JoinSentences(sentences),
		Caption:        cleaned.Caption,
		IsInterruption: turn.Interrupt,
		Order:          turn.Order,
		Voice:          turn.Voice,
	}

	face := func() *scenes.FaceState {
		if turn.Face.IsZero() {
			return nil
		}
		f := turn.Face
		return &f
	}

	talkingAnimation := vocabulary.AnimationTalking
	if vocabulary.IsTalking(turn.Animation) {
		talkingAnimation = turn.Animation
	} else if turn.Animation != "" && turn.Animation != vocabulary.AnimationIdle {
		tl.Segments = append(tl.Segments, scenes.Segment{
			Animation:     turn.Animation,
			Duration:      c.GestureDuration(turn.Animation, profile),
			PlaybackSpeed: profile.PlaybackSpeed,
			Face:          face(),
		})
	}

	if len(sentences) == 0 {
		c.warnings.Add(ctx, diagnostics.Warning{
			Kind:    diagnostics.KindEmptyDialogue,
			Actor:   turn.ActorID,
			Value:   turn.Text,
			Message: "dialogue is empty after cleaning",
		})
		if len(tl.Segments) == 0 {
			tl.Segments = append(tl.Segments, scenes.Segment{
				Animation:     vocabulary.AnimationIdle,
				Duration:      c.GestureDuration(vocabulary.AnimationIdle, profile),
				PlaybackSpeed: profile.PlaybackSpeed,
				Face:          face(),
			})
		}
	}

	ranges := RevealRanges(sentences)
	for i, sentence := range sentences {
		if i > 0 {
			tl.Segments = append(tl.Segments, scenes.Segment{
				Animation:     vocabulary.AnimationIdle,
				Duration:      c.PauseDuration(rng, profile),
				PlaybackSpeed: profile.PlaybackSpeed,
				Face:          face(),
			})
		}
		reveal := ranges[i]
		tl.Segments = append(tl.Segments, scenes.Segment{
			Animation:     talkingAnimation,
			Duration:      c.TalkingDuration(runeLen(sentence), profile),
			IsTalking:     true,
			PlaybackSpeed: profile.PlaybackSpeed,
			Face:          face(),
			TextReveal:    &reveal,
			VoiceTone:     turn.Voice["tone"],
		})
	}

	if cleaned.Caption != "" {
		tl.Segments[0].ActionText = cleaned.Caption
	}

	tl.Recompute()
	return tl
}
