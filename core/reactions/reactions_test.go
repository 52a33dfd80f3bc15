package reactions

import (
	"math/rand/v2"
	"testing"

	"github.com/koscakluka/ema-stage/core/scenes"
)

var roster = scenes.Roster{
	{ID: "freud", Name: "Sigmund Freud"},
	{ID: "jung", Name: "Carl Jung"},
	{ID: "adler", Name: "Alfred Adler"},
}

func speaker(actor, content string, start, total int) scenes.Timeline {
	tl := scenes.Timeline{
		ActorID:    actor,
		Content:    content,
		StartDelay: start,
		Segments:   []scenes.Segment{{Animation: "talking", Duration: total, IsTalking: true, TextReveal: &scenes.TextRange{Start: 0, End: len(content)}}},
	}
	tl.Recompute()
	return tl
}

func newGenerator() *Generator { return NewGenerator(DefaultConfig(), 300, 15000) }

func TestFillSpansScene(t *testing.T) {
	scene := scenes.New(roster, []scenes.Timeline{
		speaker("freud", "Hello there.", 0, 2360),
	})

	for seed := uint64(0); seed < 20; seed++ {
		newGenerator().Fill(scene, rand.New(rand.NewPCG(seed, seed)))

		if len(scene.NonSpeakerBehavior) != 2 {
			t.Fatalf("expected reactions for jung and adler, got %v", scene.NonSpeakerBehavior)
		}
		for actor, tl := range scene.NonSpeakerBehavior {
			if tl.TotalDuration != scene.SceneDuration {
				t.Fatalf("expected %s total %d, got %d", actor, scene.SceneDuration, tl.TotalDuration)
			}
			if len(tl.TalkingSegments()) != 0 {
				t.Fatalf("expected %s not to talk", actor)
			}
			for _, segment := range tl.Segments {
				if segment.Duration < 300 {
					t.Fatalf("expected %s segments of at least 300ms, got %d", actor, segment.Duration)
				}
			}
		}
		if err := scene.Validate(); err != nil {
			t.Fatalf("expected valid scene, got %v", err)
		}
	}
}

func TestReactGazeAndGaps(t *testing.T) {
	speakers := []scenes.Timeline{
		speaker("adler", "Late reply.", 3400, 2500),
		speaker("freud", "Hello there.", 0, 3000),
	}
	tl := newGenerator().React(roster[1], roster, speakers, 7000, rand.New(rand.NewPCG(1, 2)))

	if tl.TotalDuration != 7000 {
		t.Fatalf("expected total 7000, got %d", tl.TotalDuration)
	}

	offset := 0
	for _, segment := range tl.Segments {
		mid := offset + segment.Duration/2
		switch {
		case mid < 3000:
			if segment.Face == nil || segment.Face.Gaze != "at_left_character" {
				t.Fatalf("expected gaze towards freud at %d, got %+v", offset, segment.Face)
			}
		case mid >= 3000 && mid < 3400, mid >= 5900:
			if segment.Animation != "idle" {
				t.Fatalf("expected idle at %d, got %q", offset, segment.Animation)
			}
		default:
			if segment.Face == nil || segment.Face.Gaze != "at_right_character" {
				t.Fatalf("expected gaze towards adler at %d, got %+v", offset, segment.Face)
			}
		}
		offset += segment.Duration
	}
}

func TestReactMention(t *testing.T) {
	speakers := []scenes.Timeline{speaker("freud", "Carl, what do you think?", 0, 5000)}

	tl := newGenerator().React(roster[1], roster, speakers, 5000, rand.New(rand.NewPCG(3, 3)))
	first := tl.Segments[0]
	if first.Animation != "lean_forward" || first.Face.Mouth != "smile" {
		t.Fatalf("expected lean forward smile, got %+v", first)
	}
	if len(tl.Segments) > 1 && tl.Segments[1].Animation == "lean_forward" {
		t.Fatalf("expected only the first reaction upgraded")
	}

	other := newGenerator().React(roster[2], roster, speakers, 5000, rand.New(rand.NewPCG(3, 3)))
	if other.Segments[0].Animation == "lean_forward" {
		t.Fatalf("expected adler not to be mentioned")
	}

	partial := newGenerator().React(roster[1], roster, []scenes.Timeline{speaker("freud", "Carla is here.", 0, 2000)}, 2000, nil)
	if partial.Segments[0].Animation == "lean_forward" {
		t.Fatalf("expected whole word mentions only")
	}
}

func TestReactMentionUnicodeNames(t *testing.T) {
	cast := scenes.Roster{
		{ID: "freud", Name: "Sigmund Freud"},
		{ID: "jose", Name: "José Martí"},
		{ID: "zoe", Name: "Zoë"},
	}

	testCases := []struct {
		name      string
		actor     scenes.Actor
		content   string
		mentioned bool
	}{
		{name: "first name", actor: cast[1], content: "José, what do you think?", mentioned: true},
		{name: "full name", actor: cast[1], content: "I agree with José Martí.", mentioned: true},
		{name: "lower case", actor: cast[1], content: "what about josé?", mentioned: true},
		{name: "single name", actor: cast[2], content: "Thanks, Zoë.", mentioned: true},
		{name: "longer word", actor: cast[1], content: "Joséa is late.", mentioned: false},
		{name: "prefixed word", actor: cast[2], content: "AZoë is late.", mentioned: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			speakers := []scenes.Timeline{speaker("freud", testCase.content, 0, 2000)}
			tl := newGenerator().React(testCase.actor, cast, speakers, 2000, rand.New(rand.NewPCG(1, 1)))

			got := tl.Segments[0].Animation == "lean_forward"
			if got != testCase.mentioned {
				t.Fatalf("expected mentioned %v for %q, got %+v", testCase.mentioned, testCase.content, tl.Segments[0])
			}
		})
	}
}

func TestIdleSplitsLongSpans(t *testing.T) {
	tl := newGenerator().React(roster[1], roster, nil, 40000, rand.New(rand.NewPCG(5, 5)))
	if tl.TotalDuration != 40000 {
		t.Fatalf("expected total 40000, got %d", tl.TotalDuration)
	}
	for _, segment := range tl.Segments {
		if segment.Duration > 15000 {
			t.Fatalf("expected idle segments of at most 15000ms, got %d", segment.Duration)
		}
	}
}

func TestMergeShort(t *testing.T) {
	g := newGenerator()
	merged := g.mergeShort([]scenes.Segment{
		{Animation: "idle", Duration: 100},
		{Animation: "listening", Duration: 2000},
		{Animation: "idle", Duration: 250},
		{Animation: "listening", Duration: 900},
	})

	total := 0
	for _, segment := range merged {
		if segment.Duration < 300 {
			t.Fatalf("expected no short segments, got %+v", merged)
		}
		total += segment.Duration
	}
	if total != 3250 {
		t.Fatalf("expected total 3250, got %d", total)
	}
}

func TestReactKeepsMergedSegmentsBelowMaximum(t *testing.T) {
	speakers := []scenes.Timeline{speaker("freud", "Hm.", 15000, 100)}

	tl := newGenerator().React(roster[1], roster, speakers, 15100, rand.New(rand.NewPCG(2, 2)))
	if tl.TotalDuration != 15100 {
		t.Fatalf("expected total 15100, got %d", tl.TotalDuration)
	}
	for _, segment := range tl.Segments {
		if segment.Duration < 300 || segment.Duration > 15000 {
			t.Fatalf("expected segments within [300,15000], got %+v", tl.Segments)
		}
	}
}

func TestSplitLong(t *testing.T) {
	g := newGenerator()
	split := g.splitLong([]scenes.Segment{
		{Animation: "idle", Duration: 30001, Face: &scenes.FaceState{Eyes: "blink"}},
		{Animation: "listening", Duration: 2000},
	})

	expected := []int{10001, 10000, 10000, 2000}
	if len(split) != len(expected) {
		t.Fatalf("expected %d segments, got %+v", len(expected), split)
	}
	for i, segment := range split {
		if segment.Duration != expected[i] {
			t.Fatalf("expected durations %v, got segment %d = %d", expected, i, segment.Duration)
		}
	}

	split[0].Face.Eyes = "open"
	if split[1].Face.Eyes != "blink" {
		t.Fatalf("expected every part to own its face")
	}
}

func TestGazeTowards(t *testing.T) {
	testCases := []struct {
		seat, speaker int
		expected      string
	}{
		{seat: 1, speaker: 0, expected: "at_left_character"},
		{seat: 1, speaker: 2, expected: "at_right_character"},
		{seat: 1, speaker: 1, expected: "center"},
		{seat: 1, speaker: -1, expected: "center"},
	}

	for _, tc := range testCases {
		if got := gazeTowards(tc.seat, tc.speaker); got != tc.expected {
			t.Fatalf("expected %q for seat %d and speaker %d, got %q", tc.expected, tc.seat, tc.speaker, got)
		}
	}
}
