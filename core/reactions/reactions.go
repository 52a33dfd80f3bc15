package reactions

import (
	"math/rand/v2"
	"regexp"
	"slices"

	"github.com/koscakluka/ema-stage/core/scenes"
	"github.com/koscakluka/ema-stage/core/vocabulary"
)

// Config tunes the reactions of actors without a turn. Durations are in
// milliseconds.
type Config struct {
	ReactionMin int `yaml:"reaction_min" mapstructure:"reaction_min"`
	ReactionMax int `yaml:"reaction_max" mapstructure:"reaction_max"`
	// BlinkChance is the probability of an idle segment being a blink.
	BlinkChance float64 `yaml:"blink_chance" mapstructure:"blink_chance"`
	// NodChance is the probability of a reaction segment being a nod.
	NodChance float64 `yaml:"nod_chance" mapstructure:"nod_chance"`
}

func DefaultConfig() Config {
	return Config{ReactionMin: 2000, ReactionMax: 3000, BlinkChance: 0.15, NodChance: 0.2}
}

type Generator struct {
	config     Config
	minSegment int
	maxSegment int
}

// NewGenerator creates a generator whose segments respect the given segment
// bounds.
func NewGenerator(config Config, minSegment, maxSegment int) *Generator {
	return &Generator{config: config, minSegment: minSegment, maxSegment: maxSegment}
}

// Fill replaces the reactions of the scene with one timeline per roster
// actor that has no speaking turn.
func (g *Generator) Fill(scene *scenes.Scene, rng *rand.Rand) {
	scene.NonSpeakerBehavior = map[string]scenes.Timeline{}
	for _, actor := range scene.NonSpeakers() {
		scene.NonSpeakerBehavior[actor.ID] = g.React(actor, scene.Roster, scene.Timelines, scene.SceneDuration, rng)
	}
}

// React builds the timeline of a listening actor spanning exactly
// sceneDuration. The actor idles between turns and reacts while someone
// speaks, looking towards the speaker's seat.
func (g *Generator) React(actor scenes.Actor, roster scenes.Roster, speakers []scenes.Timeline, sceneDuration int, rng *rand.Rand) scenes.Timeline {
	events := slices.Clone(speakers)
	slices.SortStableFunc(events, func(a, b scenes.Timeline) int { return a.StartDelay - b.StartDelay })

	mention := mentionPattern(actor)
	seat := roster.Index(actor.ID)

	var segments []scenes.Segment
	cursor := 0
	for _, event := range events {
		start := max(event.StartDelay, cursor)
		end := min(event.End(), sceneDuration)
		if start > cursor {
			segments = append(segments, g.idle(start-cursor, rng)...)
		}
		if end > start {
			mentioned := mention != nil && mention.MatchString(event.Content)
			gaze := gazeTowards(seat, roster.Index(event.ActorID))
			segments = append(segments, g.react(end-start, gaze, mentioned, rng)...)
		}
		cursor = max(cursor, end)
	}
	if sceneDuration > cursor {
		segments = append(segments, g.idle(sceneDuration-cursor, rng)...)
	}

	tl := scenes.Timeline{ActorID: actor.ID, Segments: g.splitLong(g.mergeShort(segments))}
	tl.Recompute()
	return tl
}

// gazeTowards returns the gaze of the actor in seat towards the speaker in
// speakerSeat.
func gazeTowards(seat, speakerSeat int) string {
	switch {
	case seat < 0 || speakerSeat < 0 || seat == speakerSeat:
		return vocabulary.GazeCenter
	case speakerSeat < seat:
		return vocabulary.GazeAtLeftCharacter
	default:
		return vocabulary.GazeAtRightCharacter
	}
}

func mentionPattern(actor scenes.Actor) *regexp.Regexp {
	var names []string
	if actor.Name != "" {
		names = append(names, regexp.QuoteMeta(actor.Name))
		if first := actor.FirstName(); first != "" && first != actor.Name {
			names = append(names, regexp.QuoteMeta(first))
		}
	}
	if len(names) == 0 {
		return nil
	}

	// \b only knows ASCII word characters, so names like José need explicit
	// Unicode boundaries.
	pattern := `(?i)(?:^|[^\p{L}\p{N}_])(?:`
	for i, name := range names {
		if i > 0 {
			pattern += "|"
		}
		pattern += name
	}
	return regexp.MustCompile(pattern + `)(?:$|[^\p{L}\p{N}_])`)
}

func (g *Generator) idle(span int, rng *rand.Rand) []scenes.Segment {
	parts := (span + g.maxSegment - 1) / g.maxSegment
	segments := make([]scenes.Segment, 0, parts)
	for i := range parts {
		duration := span / parts
		if i < span%parts {
			duration++
		}
		segment := scenes.Segment{Animation: vocabulary.AnimationIdle, Duration: duration}
		if chance(rng, g.config.BlinkChance) {
			segment.Face = &scenes.FaceState{Eyes: vocabulary.EyesBlink}
		}
		segments = append(segments, segment)
	}
	return segments
}

func (g *Generator) react(span int, gaze string, mentioned bool, rng *rand.Rand) []scenes.Segment {
	var segments []scenes.Segment
	for remaining := span; remaining > 0; {
		duration := g.config.ReactionMin + intN(rng, g.config.ReactionMax-g.config.ReactionMin+1)
		if remaining <= duration || remaining-duration < g.minSegment {
			duration = remaining
		}
		remaining -= duration

		segment := scenes.Segment{
			Animation: vocabulary.AnimationListening,
			Duration:  duration,
			Face:      &scenes.FaceState{Gaze: gaze},
		}
		if chance(rng, g.config.NodChance) {
			segment.Animation = vocabulary.AnimationNod
		}
		if mentioned && len(segments) == 0 {
			segment.Animation = vocabulary.AnimationLeanForward
			segment.Face.Mouth = vocabulary.MouthSmile
		}
		segments = append(segments, segment)
	}
	return segments
}

// mergeShort folds segments shorter than the minimum into their shorter
// neighbour.
func (g *Generator) mergeShort(segments []scenes.Segment) []scenes.Segment {
	for i := 0; i < len(segments) && len(segments) > 1; {
		if segments[i].Duration >= g.minSegment {
			i++
			continue
		}

		target := i - 1
		if i == 0 || (i+1 < len(segments) && segments[i+1].Duration < segments[i-1].Duration) {
			target = i + 1
		}
		segments[target].Duration += segments[i].Duration
		segments = slices.Delete(segments, i, i+1)
		i = 0
	}
	return segments
}

// splitLong divides segments longer than the maximum into near equal parts.
// Merging short fragments can push a neighbour past the maximum.
func (g *Generator) splitLong(segments []scenes.Segment) []scenes.Segment {
	if g.maxSegment <= 0 {
		return segments
	}

	split := make([]scenes.Segment, 0, len(segments))
	for _, segment := range segments {
		parts := max(1, (segment.Duration+g.maxSegment-1)/g.maxSegment)
		for i := range parts {
			part := segment
			part.Duration = segment.Duration / parts
			if i < segment.Duration%parts {
				part.Duration++
			}
			if segment.Face != nil {
				face := *segment.Face
				part.Face = &face
			}
			split = append(split, part)
		}
	}
	return split
}

func intN(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}

func chance(rng *rand.Rand, p float64) bool {
	if rng == nil {
		return rand.Float64() < p
	}
	return rng.Float64() < p
}
