package timing

import (
	"errors"

	"github.com/koscakluka/ema-stage/core/scenes"
)

// RevealRanges returns the range of every sentence inside the newline-joined
// sentence text. Indices count code points.
func RevealRanges(sentences []string) []scenes.TextRange {
	ranges := make([]scenes.TextRange, 0, len(sentences))
	cursor := 0
	for i, sentence := range sentences {
		if i > 0 {
			cursor++ // line break
		}
		end := cursor + runeLen(sentence)
		ranges = append(ranges, scenes.TextRange{Start: cursor, End: end})
		cursor = end
	}
	return ranges
}

// RepairRanges makes consumer provided ranges contiguous. Every start is
// clamped to the previous end, ends never precede their start or exceed the
// text length, and the final end is forced to the text length. It reports
// whether anything changed.
func RepairRanges(ranges []scenes.TextRange, textLength int) ([]scenes.TextRange, bool) {
	repaired := make([]scenes.TextRange, len(ranges))
	changed := false
	previousEnd := 0
	for i, r := range ranges {
		fixed := r
		fixed.Start = previousEnd
		fixed.End = min(max(fixed.End, fixed.Start), textLength)
		if i == len(ranges)-1 {
			fixed.End = textLength
		}
		if fixed != r {
			changed = true
		}
		repaired[i] = fixed
		previousEnd = fixed.End
	}
	return repaired, changed
}

// RepairTimeline rewrites the talking ranges of a timeline that fails reveal
// coverage. It reports whether the timeline was changed.
func RepairTimeline(tl *scenes.Timeline) bool {
	if err := tl.Validate(); !errors.Is(err, scenes.ErrRevealCoverage) {
		return false
	}

	var indices []int
	var ranges []scenes.TextRange
	for i, segment := range tl.Segments {
		if !segment.IsTalking {
			continue
		}
		indices = append(indices, i)
		if segment.TextReveal != nil {
			ranges = append(ranges, *segment.TextReveal)
		} else {
			ranges = append(ranges, scenes.TextRange{})
		}
	}

	repaired, changed := RepairRanges(ranges, tl.ContentLength())
	for n, i := range indices {
		r := repaired[n]
		tl.Segments[i].TextReveal = &r
	}
	return changed
}
