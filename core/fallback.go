package orchestration

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/koscakluka/ema-stage/core/payload"
	"github.com/koscakluka/ema-stage/core/scenes"
	"github.com/koscakluka/ema-stage/core/timing"
	"github.com/koscakluka/ema-stage/core/vocabulary"
)

// DefaultFallbackActor speaks fallback scenes when neither the caller, the
// payload nor the roster names anyone.
const DefaultFallbackActor = "narrator"

// Fallback builds a minimal playable scene straight from raw model text: one
// actor says the whole text as a single talking segment followed by an idle
// segment. Other roster actors get reaction timelines.
//
// The speaker is actorID if given, else the first actor named in a
// recoverable payload, else the first roster actor.
func (o *Orchestrator) Fallback(ctx context.Context, text string, roster scenes.Roster, actorID string) *scenes.Scene {
	return o.fallback(ctx, text, roster, actorID, o.newRand(0))
}

func (o *Orchestrator) fallback(ctx context.Context, text string, roster scenes.Roster, actorID string, rng *rand.Rand) *scenes.Scene {
	ctx, span := tracer.Start(ctx, "fallback")
	defer span.End()

	content, payloadActor := fallbackContent(text)
	speaker := fallbackSpeaker(roster, actorID, payloadActor)
	if len(roster) == 0 {
		roster = scenes.NewRoster(speaker)
	}

	calculator := timing.NewCalculator(o.config.Timing)
	profile := o.config.Timing.Profile(vocabulary.SpeedNormal)

	tl := scenes.Timeline{ActorID: speaker, Content: content, Order: 1}
	if content != "" {
		tl.Segments = append(tl.Segments, scenes.Segment{
			Animation:     vocabulary.AnimationTalking,
			Duration:      calculator.TalkingDuration(tl.ContentLength(), profile),
			IsTalking:     true,
			PlaybackSpeed: profile.PlaybackSpeed,
			TextReveal:    &scenes.TextRange{Start: 0, End: tl.ContentLength()},
		})
	}
	tl.Segments = append(tl.Segments, scenes.Segment{
		Animation:     vocabulary.AnimationIdle,
		Duration:      calculator.GestureDuration(vocabulary.AnimationIdle, profile),
		PlaybackSpeed: profile.PlaybackSpeed,
	})
	tl.Recompute()

	scene := scenes.New(roster, []scenes.Timeline{tl})
	scene.IsFallback = true
	newReactionGenerator(o.config).Fill(scene, rng)

	logger.InfoContext(ctx, "built fallback scene", "scene", scene.ID, "actor", speaker)
	return scene
}

// fallbackContent returns the single line dialogue of a fallback scene and
// the actor named by the first payload entry, if any.
func fallbackContent(text string) (string, string) {
	text = payload.StripFences(text)

	var first gjson.Result
	if data, err := payload.Extract(text); err == nil {
		first = gjson.Get(data, "s.ch.0")
		text = strings.Replace(text, data, " ", 1)
	}

	content := timing.CleanText(text).Text
	if content == "" {
		content = timing.CleanText(first.Get("t").String()).Text
	}
	return content, first.Get("c").String()
}

func fallbackSpeaker(roster scenes.Roster, requested, fromPayload string) string {
	for _, name := range []string{requested, fromPayload} {
		if name == "" {
			continue
		}
		if len(roster) == 0 {
			return name
		}
		if id, ok := roster.Resolve(name); ok {
			return id
		}
	}
	if len(roster) > 0 {
		return roster[0].ID
	}
	return DefaultFallbackActor
}
