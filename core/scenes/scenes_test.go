package scenes

import (
	"errors"
	"path/filepath"
	"testing"
)

func talking(duration, start, end int) Segment {
	return Segment{Animation: "talking", Duration: duration, IsTalking: true, TextReveal: &TextRange{Start: start, End: end}}
}

func idle(duration int) Segment {
	return Segment{Animation: "idle", Duration: duration}
}

func TestTimelineValidate(t *testing.T) {
	testCases := []struct {
		name     string
		timeline Timeline
		expected error
	}{
		{
			name: "two sentences separated by a line break",
			timeline: Timeline{
				ActorID:       "freud",
				Content:       "Hello.\nHow are you?",
				Segments:      []Segment{talking(360, 0, 6), idle(900), talking(720, 7, 19)},
				TotalDuration: 1980,
			},
		},
		{
			name: "total does not match",
			timeline: Timeline{
				ActorID:       "freud",
				Content:       "Hi.",
				Segments:      []Segment{talking(300, 0, 3)},
				TotalDuration: 200,
			},
			expected: ErrDurationMismatch,
		},
		{
			name: "range does not reach the end",
			timeline: Timeline{
				ActorID:       "freud",
				Content:       "Hello there.",
				Segments:      []Segment{talking(300, 0, 5)},
				TotalDuration: 300,
			},
			expected: ErrRevealCoverage,
		},
		{
			name: "gap with visible text",
			timeline: Timeline{
				ActorID:       "freud",
				Content:       "Hello. You.",
				Segments:      []Segment{talking(300, 0, 5), talking(300, 7, 11)},
				TotalDuration: 600,
			},
			expected: ErrRevealCoverage,
		},
		{
			name: "overlapping ranges",
			timeline: Timeline{
				ActorID:       "freud",
				Content:       "Hello.\nYou.",
				Segments:      []Segment{talking(300, 0, 7), talking(300, 5, 11)},
				TotalDuration: 600,
			},
			expected: ErrRevealCoverage,
		},
		{
			name: "negative delay",
			timeline: Timeline{
				ActorID:       "freud",
				Segments:      []Segment{idle(300)},
				TotalDuration: 300,
				StartDelay:    -1,
			},
			expected: ErrNegativeDelay,
		},
		{
			name: "no talking segments",
			timeline: Timeline{
				ActorID:       "jung",
				Segments:      []Segment{idle(300), idle(400)},
				TotalDuration: 700,
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := testCase.timeline.Validate()
			if testCase.expected == nil && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if testCase.expected != nil && !errors.Is(err, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, err)
			}
		})
	}
}

func TestRosterResolve(t *testing.T) {
	roster := Roster{
		{ID: "freud", Name: "Sigmund Freud"},
		{ID: "carl_jung", Name: "Carl Jung"},
	}

	testCases := []struct {
		name     string
		expected string
		ok       bool
	}{
		{name: "freud", expected: "freud", ok: true},
		{name: "FREUD", expected: "freud", ok: true},
		{name: "Carl Jung", expected: "carl_jung", ok: true},
		{name: "carl-jung", expected: "carl_jung", ok: true},
		{name: "Sigmund", expected: "freud", ok: true},
		{name: "Adler", ok: false},
		{name: "  ", ok: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			id, ok := roster.Resolve(testCase.name)
			if ok != testCase.ok || id != testCase.expected {
				t.Fatalf("expected (%q, %t), got (%q, %t)", testCase.expected, testCase.ok, id, ok)
			}
		})
	}
}

func TestSceneDurationAndNonSpeakers(t *testing.T) {
	roster := Roster{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	scene := New(roster, []Timeline{
		{ActorID: "a", Segments: []Segment{idle(1000)}, TotalDuration: 1000},
		{ActorID: "b", Segments: []Segment{idle(500)}, TotalDuration: 500, StartDelay: 1400},
	})

	if scene.ID == "" {
		t.Fatalf("expected scene id to be set")
	}
	if scene.SceneDuration != 1900 {
		t.Fatalf("expected scene duration 1900, got %d", scene.SceneDuration)
	}

	nonSpeakers := scene.NonSpeakers()
	if len(nonSpeakers) != 1 || nonSpeakers[0].ID != "c" {
		t.Fatalf("expected c to be the only non speaker, got %+v", nonSpeakers)
	}

	scene.NonSpeakerBehavior["c"] = Timeline{ActorID: "c", Segments: []Segment{idle(1900)}, TotalDuration: 1900}
	if err := scene.Validate(); err != nil {
		t.Fatalf("expected valid scene, got %v", err)
	}

	scene.NonSpeakerBehavior["c"] = Timeline{ActorID: "c", Segments: []Segment{idle(1000)}, TotalDuration: 1000}
	if err := scene.Validate(); !errors.Is(err, ErrReactionSpan) {
		t.Fatalf("expected %v, got %v", ErrReactionSpan, err)
	}
}

func TestFaceStateMerge(t *testing.T) {
	base := FaceState{Eyes: "narrow", Mouth: "frown", Eyebrows: "furrowed"}
	merged := base.Merge(FaceState{Mouth: "smile", Gaze: "left"})

	if merged.Mouth != "smile" || merged.Eyes != "narrow" || merged.Gaze != "left" || merged.Eyebrows != "furrowed" {
		t.Fatalf("unexpected merge result: %+v", merged)
	}
	if !(FaceState{}).IsZero() || merged.IsZero() {
		t.Fatalf("unexpected IsZero result")
	}
}

func TestSceneYAMLExport(t *testing.T) {
	scene := New(Roster{{ID: "freud", Name: "Sigmund Freud"}}, []Timeline{
		{
			ActorID:       "freud",
			Content:       "Hi.",
			Segments:      []Segment{talking(300, 0, 3)},
			TotalDuration: 300,
		},
	})

	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := WriteYAML(scene, path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	read, err := ReadYAML(path)
	if err != nil {
		t.Fatalf("ReadYAML failed: %v", err)
	}
	if read.ID != scene.ID || read.SceneDuration != 300 {
		t.Fatalf("expected scene %s with duration 300, got %s with %d", scene.ID, read.ID, read.SceneDuration)
	}
	if err := read.Validate(); err != nil {
		t.Fatalf("expected read scene to be valid, got %v", err)
	}
}
