package timing

import (
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/koscakluka/ema-stage/core/diagnostics"
	"github.com/koscakluka/ema-stage/core/scenes"
)

func seeded() *rand.Rand { return rand.New(rand.NewPCG(7, 7)) }

func TestSplitSentences(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected []string
	}{
		{name: "two sentences", in: "Hello. How are you?", expected: []string{"Hello.", "How are you?"}},
		{name: "punctuation runs", in: "Wait... what?! Fine", expected: []string{"Wait...", "what?!", "Fine"}},
		{name: "no terminal punctuation", in: "just talking here", expected: []string{"just talking here"}},
		{name: "empty", in: "   ", expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitSentences(tc.in)
			if len(got) != len(tc.expected) {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Fatalf("expected %q, got %q", tc.expected, got)
				}
			}
		})
	}
}

func TestCleanText(t *testing.T) {
	testCases := []struct {
		name            string
		in              string
		expectedText    string
		expectedCaption string
	}{
		{name: "plain", in: "Hello there.", expectedText: "Hello there."},
		{name: "direction", in: "*adjusts glasses* Well , this is   odd .", expectedText: "Well, this is odd.", expectedCaption: "adjusts glasses"},
		{name: "several directions", in: "Hi *waves* there *smiles*!", expectedText: "Hi there!", expectedCaption: "waves smiles"},
		{name: "only direction", in: "*sighs*", expectedText: "", expectedCaption: "sighs"},
		{name: "stray asterisk", in: "A * B", expectedText: "A B"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CleanText(tc.in)
			if got.Text != tc.expectedText {
				t.Fatalf("expected text %q, got %q", tc.expectedText, got.Text)
			}
			if got.Caption != tc.expectedCaption {
				t.Fatalf("expected caption %q, got %q", tc.expectedCaption, got.Caption)
			}
		})
	}
}

func TestRevealRanges(t *testing.T) {
	ranges := RevealRanges([]string{"Hello.", "How are you?"})
	expected := []scenes.TextRange{{Start: 0, End: 6}, {Start: 7, End: 19}}
	if len(ranges) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, ranges)
	}
	for i := range ranges {
		if ranges[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, ranges)
		}
	}

	unicode := RevealRanges([]string{"Ça va?", "Très bien."})
	if unicode[1].End != 6+1+10 {
		t.Fatalf("expected code point indices, got %v", unicode)
	}
}

func TestRepairRanges(t *testing.T) {
	testCases := []struct {
		name            string
		in              []scenes.TextRange
		length          int
		expected        []scenes.TextRange
		expectedChanged bool
	}{
		{
			name:     "already contiguous",
			in:       []scenes.TextRange{{0, 5}, {5, 10}},
			length:   10,
			expected: []scenes.TextRange{{0, 5}, {5, 10}},
		},
		{
			name:            "gap and short end",
			in:              []scenes.TextRange{{2, 5}, {7, 8}},
			length:          10,
			expected:        []scenes.TextRange{{0, 5}, {5, 10}},
			expectedChanged: true,
		},
		{
			name:            "overlap and overflow",
			in:              []scenes.TextRange{{0, 6}, {4, 20}, {9, 12}},
			length:          10,
			expected:        []scenes.TextRange{{0, 6}, {6, 10}, {10, 10}},
			expectedChanged: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := RepairRanges(tc.in, tc.length)
			if changed != tc.expectedChanged {
				t.Fatalf("expected changed %v, got %v", tc.expectedChanged, changed)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Fatalf("expected %v, got %v", tc.expected, got)
				}
			}
		})
	}
}

func TestRepairTimeline(t *testing.T) {
	tl := scenes.Timeline{
		ActorID: "freud",
		Content: "Hello there",
		Segments: []scenes.Segment{
			{Animation: "talking", Duration: 400, IsTalking: true, TextReveal: &scenes.TextRange{Start: 0, End: 4}},
			{Animation: "idle", Duration: 700},
			{Animation: "talking", Duration: 400, IsTalking: true, TextReveal: &scenes.TextRange{Start: 6, End: 9}},
		},
	}
	tl.Recompute()

	if !RepairTimeline(&tl) {
		t.Fatalf("expected timeline to be repaired")
	}
	if err := tl.Validate(); err != nil {
		t.Fatalf("expected valid timeline, got %v", err)
	}
	if RepairTimeline(&tl) {
		t.Fatalf("expected a valid timeline to stay untouched")
	}
}

func TestBuildTimelineScenario(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	tl := calc.BuildTimeline(context.Background(), Turn{
		ActorID:   "freud",
		Text:      "Hello. How are you?",
		Animation: "talking",
		Speed:     "normal",
		Order:     1,
	}, seeded())

	if tl.StartDelay != 0 {
		t.Fatalf("expected start delay 0, got %d", tl.StartDelay)
	}
	if tl.Content != "Hello.\nHow are you?" {
		t.Fatalf("expected joined content, got %q", tl.Content)
	}
	if len(tl.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(tl.Segments))
	}

	first, pause, second := tl.Segments[0], tl.Segments[1], tl.Segments[2]
	if !first.IsTalking || !second.IsTalking || pause.IsTalking {
		t.Fatalf("expected talking, pause, talking, got %+v", tl.Segments)
	}
	if pause.Animation != "idle" {
		t.Fatalf("expected idle pause, got %q", pause.Animation)
	}
	if *first.TextReveal != (scenes.TextRange{Start: 0, End: 6}) || *second.TextReveal != (scenes.TextRange{Start: 7, End: 19}) {
		t.Fatalf("expected ranges [0,6) and [7,19), got %v and %v", *first.TextReveal, *second.TextReveal)
	}
	if first.Duration != 360 || second.Duration != 720 {
		t.Fatalf("expected talking durations 360 and 720, got %d and %d", first.Duration, second.Duration)
	}
	if pause.Duration < 700 || pause.Duration > 2000 {
		t.Fatalf("expected pause within [700,2000], got %d", pause.Duration)
	}
	if err := tl.Validate(); err != nil {
		t.Fatalf("expected valid timeline, got %v", err)
	}
}

func TestBuildTimelineDeterministic(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	turn := Turn{ActorID: "jung", Text: "One. Two. Three. Four.", Speed: "slow"}

	a := calc.BuildTimeline(context.Background(), turn, seeded())
	b := calc.BuildTimeline(context.Background(), turn, seeded())
	if a.TotalDuration != b.TotalDuration {
		t.Fatalf("expected equal totals for equal seeds, got %d and %d", a.TotalDuration, b.TotalDuration)
	}
}

func TestBuildTimelineGestureAndSpeed(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	tl := calc.BuildTimeline(context.Background(), Turn{
		ActorID:   "freud",
		Text:      "*waves* Hi!",
		Animation: "wave",
		Speed:     "explosive",
		Face:      scenes.FaceState{Mouth: "smile"},
	}, seeded())

	if len(tl.Segments) != 2 {
		t.Fatalf("expected gesture and talking segments, got %+v", tl.Segments)
	}
	gesture := tl.Segments[0]
	if gesture.Animation != "wave" || gesture.IsTalking {
		t.Fatalf("expected leading wave gesture, got %+v", gesture)
	}
	if gesture.Duration != 1080 {
		t.Fatalf("expected 1800ms scaled by 0.6, got %d", gesture.Duration)
	}
	if gesture.ActionText != "waves" || tl.Caption != "waves" {
		t.Fatalf("expected caption waves, got %q and %q", gesture.ActionText, tl.Caption)
	}
	if gesture.PlaybackSpeed != 1.6 {
		t.Fatalf("expected playback speed 1.6, got %v", gesture.PlaybackSpeed)
	}
	talking := tl.Segments[1]
	if talking.Duration != 300 {
		t.Fatalf("expected talking duration clamped to 300, got %d", talking.Duration)
	}
	if talking.Face == nil || talking.Face.Mouth != "smile" {
		t.Fatalf("expected face on talking segment, got %+v", talking.Face)
	}
	if err := tl.Validate(); err != nil {
		t.Fatalf("expected valid timeline, got %v", err)
	}
}

func TestBuildTimelineEmptyDialogue(t *testing.T) {
	warnings := diagnostics.NewCollector()
	calc := NewCalculator(DefaultConfig(), WithWarnings(warnings))
	tl := calc.BuildTimeline(context.Background(), Turn{ActorID: "freud", Text: "*shrugs*"}, seeded())

	if len(tl.Segments) != 1 || tl.Segments[0].IsTalking {
		t.Fatalf("expected a single idle segment, got %+v", tl.Segments)
	}
	if tl.TotalDuration != tl.Segments[0].Duration {
		t.Fatalf("expected total %d, got %d", tl.Segments[0].Duration, tl.TotalDuration)
	}
	if !warnings.Has(diagnostics.KindEmptyDialogue) {
		t.Fatalf("expected empty dialogue warning, got %v", warnings.Warnings())
	}
}

func TestTalkingDurationClampsToMax(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	if got := calc.TalkingDuration(1000, SpeedProfile{Multiplier: 1}); got != 15000 {
		t.Fatalf("expected 15000, got %d", got)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timing.yaml")
	data := "base_ms_per_char: 80\nanimation_durations:\n  wave: 900\nspeeds:\n  normal:\n    multiplier: 1.1\n    playback_speed: 1\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.BaseMsPerChar != 80 || cfg.MinSegmentDuration != 300 {
		t.Fatalf("expected override on top of defaults, got %+v", cfg)
	}
	if cfg.AnimationDurations["wave"] != 900 || cfg.AnimationDurations["nod"] != 1000 {
		t.Fatalf("expected merged animation durations, got %v", cfg.AnimationDurations)
	}
	if cfg.Profile("normal").Multiplier != 1.1 || cfg.Profile("fast").Multiplier != 0.75 {
		t.Fatalf("expected merged speeds, got %v", cfg.Speeds)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("min_segment_duration: 0\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Fatalf("expected invalid config error")
	}
}
