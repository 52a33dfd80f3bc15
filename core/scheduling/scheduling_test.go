package scheduling

import (
	"context"
	"testing"

	"github.com/koscakluka/ema-stage/core/diagnostics"
	"github.com/koscakluka/ema-stage/core/payload"
	"github.com/koscakluka/ema-stage/core/scenes"
)

func timeline(actor string, total int, interrupt bool) scenes.Timeline {
	return scenes.Timeline{
		ActorID:        actor,
		Segments:       []scenes.Segment{{Animation: "idle", Duration: total}},
		TotalDuration:  total,
		IsInterruption: interrupt,
	}
}

func TestSchedule(t *testing.T) {
	config := DefaultConfig()

	testCases := []struct {
		name           string
		timelines      []scenes.Timeline
		expectedStarts []int
	}{
		{
			name:           "single speaker",
			timelines:      []scenes.Timeline{timeline("freud", 1000, false)},
			expectedStarts: []int{0},
		},
		{
			name:           "first speaker interrupting still starts at zero",
			timelines:      []scenes.Timeline{timeline("freud", 1000, true)},
			expectedStarts: []int{0},
		},
		{
			name:           "regular second turn waits for the gap",
			timelines:      []scenes.Timeline{timeline("freud", 1000, false), timeline("jung", 500, false)},
			expectedStarts: []int{0, 1400},
		},
		{
			name:           "interruption overlaps",
			timelines:      []scenes.Timeline{timeline("freud", 1000, false), timeline("jung", 500, true)},
			expectedStarts: []int{0, 700},
		},
		{
			name:           "interruption of a short turn clamps at zero",
			timelines:      []scenes.Timeline{timeline("freud", 200, false), timeline("jung", 500, true)},
			expectedStarts: []int{0, 0},
		},
		{
			name: "regular turn after an interruption",
			timelines: []scenes.Timeline{
				timeline("freud", 1000, false),
				timeline("jung", 500, true),
				timeline("adler", 300, false),
			},
			expectedStarts: []int{0, 700, 1600},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			Schedule(tc.timelines, config)
			for i, tl := range tc.timelines {
				if tl.StartDelay != tc.expectedStarts[i] {
					t.Fatalf("expected start %d for %s, got %d", tc.expectedStarts[i], tl.ActorID, tl.StartDelay)
				}
			}
		})
	}
}

func TestScheduleGapProperty(t *testing.T) {
	config := DefaultConfig()
	timelines := []scenes.Timeline{timeline("freud", 2360, false), timeline("jung", 900, false)}
	Schedule(timelines, config)

	if timelines[1].StartDelay < timelines[0].End()+config.MinTurnGap {
		t.Fatalf("expected start >= %d, got %d", timelines[0].End()+config.MinTurnGap, timelines[1].StartDelay)
	}

	timelines[1].IsInterruption = true
	Schedule(timelines, config)
	if timelines[1].StartDelay < timelines[0].End()-config.Overlap {
		t.Fatalf("expected start >= %d, got %d", timelines[0].End()-config.Overlap, timelines[1].StartDelay)
	}
	if timelines[1].StartDelay >= timelines[0].End() {
		t.Fatalf("expected interruption before %d, got %d", timelines[0].End(), timelines[1].StartDelay)
	}
}

func TestEnforce(t *testing.T) {
	timelines := []scenes.Timeline{
		timeline("freud", 1000, false),
		timeline("jung", 500, false),
		timeline("adler", 500, true),
	}
	timelines[1].StartDelay = 500
	timelines[2].StartDelay = 200

	Enforce(timelines, DefaultConfig())

	if timelines[1].StartDelay != 1400 {
		t.Fatalf("expected jung pushed to 1400, got %d", timelines[1].StartDelay)
	}
	if timelines[2].StartDelay != 200 {
		t.Fatalf("expected interruption untouched, got %d", timelines[2].StartDelay)
	}
}

func TestSplit(t *testing.T) {
	roster := scenes.Roster{{ID: "freud", Name: "Sigmund Freud"}, {ID: "jung", Name: "Carl Jung"}}
	warnings := diagnostics.NewCollector()

	directives := []payload.Directive{
		{
			Actor:     "freud",
			Text:      "I think so. [Jung]: I disagree! [Carl Jung] Strongly. [Nobody]: hi [laughs] there",
			Order:     1,
			Animation: "wave",
			Speed:     "fast",
			Mouth:     "smile",
		},
		{Actor: "jung", Text: "Anyway [laughs] moving on.", Order: 2},
	}

	got := Split(context.Background(), directives, roster, warnings)
	if len(got) != 3 {
		t.Fatalf("expected 3 directives, got %+v", got)
	}

	if got[0].Actor != "freud" || got[0].Text != "I think so." || got[0].Animation != "wave" || got[0].Mouth != "smile" {
		t.Fatalf("expected freud to keep its fields, got %+v", got[0])
	}
	if got[1].Actor != "jung" || got[1].Text != "I disagree! Strongly." {
		t.Fatalf("expected merged jung fragment, got %+v", got[1])
	}
	if got[1].Animation != "talking" || got[1].Speed != "fast" || got[1].Mouth != "" {
		t.Fatalf("expected default fields on split fragment, got %+v", got[1])
	}
	if got[2].Text != "Anyway [laughs] moving on." {
		t.Fatalf("expected inline brackets to stay, got %q", got[2].Text)
	}
	for i, d := range got {
		if d.Order != i+1 {
			t.Fatalf("expected sequential order, got %d at %d", d.Order, i)
		}
	}

	if warnings.Count(diagnostics.KindUnresolvedActor) != 1 || warnings.Count(diagnostics.KindTurnSplit) != 1 {
		t.Fatalf("unexpected warnings %v", warnings.Warnings())
	}
}

func TestSplitStripsOwnHeader(t *testing.T) {
	roster := scenes.Roster{{ID: "freud", Name: "Sigmund Freud"}}
	warnings := diagnostics.NewCollector()

	got := Split(context.Background(), []payload.Directive{{Actor: "freud", Text: "[Sigmund]: Hello there.", Order: 1}}, roster, warnings)
	if len(got) != 1 || got[0].Text != "Hello there." {
		t.Fatalf("expected header stripped, got %+v", got)
	}
	if len(warnings.Warnings()) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings.Warnings())
	}
}
