// Package reconcile rescales finished timelines to externally measured
// durations, such as the length of synthesized speech.
package reconcile

import (
	"fmt"
	"math"

	"github.com/jinzhu/copier"

	"github.com/koscakluka/ema-stage/core/scenes"
)

var deepCopy = copier.Option{DeepCopy: true}

// Timeline returns a copy of tl whose segments are scaled by
// target/TotalDuration, floored and clamped to [minSegment, maxSegment]. The
// new total may miss the target slightly. A non-positive maxSegment leaves
// segments unbounded above. Non-positive totals or targets leave the copy
// unchanged.
func Timeline(tl scenes.Timeline, target, minSegment, maxSegment int) (scenes.Timeline, error) {
	var scaled scenes.Timeline
	if err := copier.CopyWithOption(&scaled, &tl, deepCopy); err != nil {
		return tl, fmt.Errorf("failed to copy timeline of %s: %w", tl.ActorID, err)
	}

	rescale(&scaled, target, minSegment, maxSegment)
	return scaled, nil
}

// Scene returns a copy of the scene with every timeline whose actor has a
// target rescaled, and the scene duration recomputed. Reactions are copied
// as they are.
func Scene(scene *scenes.Scene, targets map[string]int, minSegment, maxSegment int) (*scenes.Scene, error) {
	scaled := &scenes.Scene{}
	if err := copier.CopyWithOption(scaled, scene, deepCopy); err != nil {
		return nil, fmt.Errorf("failed to copy scene %s: %w", scene.ID, err)
	}

	for i := range scaled.Timelines {
		if target, ok := targets[scaled.Timelines[i].ActorID]; ok {
			rescale(&scaled.Timelines[i], target, minSegment, maxSegment)
		}
	}
	scaled.RecomputeDuration()
	return scaled, nil
}

func rescale(tl *scenes.Timeline, target, minSegment, maxSegment int) {
	if tl.TotalDuration <= 0 || target <= 0 {
		return
	}

	scale := float64(target) / float64(tl.TotalDuration)
	for i := range tl.Segments {
		duration := int(math.Floor(float64(tl.Segments[i].Duration) * scale))
		duration = max(duration, minSegment)
		if maxSegment > 0 {
			duration = min(duration, maxSegment)
		}
		tl.Segments[i].Duration = duration
	}
	tl.Recompute()
}
