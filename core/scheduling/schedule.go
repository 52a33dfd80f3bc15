package scheduling

import (
	"slices"

	"github.com/koscakluka/ema-stage/core/scenes"
)

// Config holds the turn spacing constants in milliseconds.
type Config struct {
	// MinTurnGap is the silence between two regular turns.
	MinTurnGap int `yaml:"min_turn_gap" mapstructure:"min_turn_gap"`
	// Overlap is how far an interrupting turn may start before the previous
	// one ends.
	Overlap int `yaml:"overlap" mapstructure:"overlap"`
}

func DefaultConfig() Config {
	return Config{MinTurnGap: 400, Overlap: 300}
}

// Schedule assigns start delays to timelines given in speaking order and
// then runs Enforce. The first timeline starts at zero, an interrupting one
// starts up to Overlap before the latest end so far, any other one starts
// MinTurnGap after it.
func Schedule(timelines []scenes.Timeline, config Config) {
	latestEnd := 0
	for i := range timelines {
		tl := &timelines[i]
		switch {
		case i == 0:
			tl.StartDelay = 0
		case tl.IsInterruption:
			tl.StartDelay = max(0, latestEnd-config.Overlap)
		default:
			tl.StartDelay = latestEnd + config.MinTurnGap
		}
		latestEnd = max(latestEnd, tl.End())
	}

	Enforce(timelines, config)
}

// Enforce pushes regular timelines forward so that none starts before the
// previous regular one ended plus MinTurnGap. Interrupting timelines are left
// alone.
func Enforce(timelines []scenes.Timeline, config Config) {
	var regular []int
	for i, tl := range timelines {
		if !tl.IsInterruption {
			regular = append(regular, i)
		}
	}
	slices.SortStableFunc(regular, func(a, b int) int {
		return timelines[a].StartDelay - timelines[b].StartDelay
	})

	for n := 1; n < len(regular); n++ {
		previous := timelines[regular[n-1]]
		current := &timelines[regular[n]]
		if earliest := previous.End() + config.MinTurnGap; current.StartDelay < earliest {
			current.StartDelay = earliest
		}
	}
}
