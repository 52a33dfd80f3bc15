package scenes

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

var (
	ErrSceneDuration  = errors.New("scene duration does not match timelines")
	ErrReactionSpan   = errors.New("reaction timeline does not span the scene")
	ErrReactionSpeaks = errors.New("reaction timeline contains talking segments")
)

// Scene is the root aggregate handed to the renderer.
type Scene struct {
	ID     string `json:"id" yaml:"id"`
	Roster Roster `json:"roster" yaml:"roster"`
	// Timelines are the speaking turns, in speaking order.
	Timelines     []Timeline `json:"timelines" yaml:"timelines"`
	SceneDuration int        `json:"sceneDuration" yaml:"scene_duration"`
	// NonSpeakerBehavior maps every roster actor without a turn to its
	// synthesized reaction timeline.
	NonSpeakerBehavior map[string]Timeline `json:"nonSpeakerBehavior" yaml:"non_speaker_behavior"`
	// IsFallback marks scenes synthesized after a structural failure.
	IsFallback bool `json:"isFallback,omitempty" yaml:"is_fallback,omitempty"`
}

func New(roster Roster, timelines []Timeline) *Scene {
	s := &Scene{
		ID:                 uuid.NewString(),
		Roster:             roster,
		Timelines:          timelines,
		NonSpeakerBehavior: map[string]Timeline{},
	}
	s.RecomputeDuration()
	return s
}

// RecomputeDuration sets SceneDuration to the latest timeline end.
func (s *Scene) RecomputeDuration() {
	duration := 0
	for _, timeline := range s.Timelines {
		duration = max(duration, timeline.End())
	}
	s.SceneDuration = duration
}

// Speakers returns the distinct speaking actor ids in speaking order.
func (s Scene) Speakers() []string {
	var speakers []string
	for _, timeline := range s.Timelines {
		if !slices.Contains(speakers, timeline.ActorID) {
			speakers = append(speakers, timeline.ActorID)
		}
	}
	return speakers
}

// NonSpeakers returns the roster actors without a speaking turn, in seating
// order.
func (s Scene) NonSpeakers() []Actor {
	speakers := s.Speakers()
	var actors []Actor
	for _, actor := range s.Roster {
		if !slices.Contains(speakers, actor.ID) {
			actors = append(actors, actor)
		}
	}
	return actors
}

// Validate checks every timeline, the scene duration and the reaction spans.
func (s Scene) Validate() error {
	end := 0
	for _, timeline := range s.Timelines {
		if err := timeline.Validate(); err != nil {
			return err
		}
		end = max(end, timeline.End())
	}
	if end != s.SceneDuration {
		return fmt.Errorf("%w: expected %d, got %d", ErrSceneDuration, end, s.SceneDuration)
	}

	for id, reaction := range s.NonSpeakerBehavior {
		if err := reaction.Validate(); err != nil {
			return err
		}
		if reaction.StartDelay != 0 || reaction.TotalDuration != s.SceneDuration {
			return fmt.Errorf("%w: actor %s covers [%d,%d) of %d", ErrReactionSpan, id, reaction.StartDelay, reaction.End(), s.SceneDuration)
		}
		if len(reaction.TalkingSegments()) > 0 {
			return fmt.Errorf("%w: actor %s", ErrReactionSpeaks, id)
		}
	}
	return nil
}
