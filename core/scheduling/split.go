package scheduling

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/koscakluka/ema-stage/core/diagnostics"
	"github.com/koscakluka/ema-stage/core/payload"
	"github.com/koscakluka/ema-stage/core/scenes"
	"github.com/koscakluka/ema-stage/core/vocabulary"
)

var header = regexp.MustCompile(`\[([^\[\]\n]{1,40})\]\s*:?`)

type fragment struct {
	name    string
	actorID string
	text    string
}

// Split breaks up directives whose text contains bracketed headers naming
// roster actors, e.g. "[Jung]: I disagree.", into one directive per
// fragment. Consecutive fragments of the same actor are merged and fragments
// under a "[Name]:" header naming no roster actor are dropped. The result is renumbered in order.
//
// Text whose headers name no roster actor at all is left untouched.
func Split(ctx context.Context, directives []payload.Directive, roster scenes.Roster, warnings *diagnostics.Collector) []payload.Directive {
	var result []payload.Directive
	for _, d := range directives {
		result = append(result, splitDirective(ctx, d, roster, warnings)...)
	}
	for i := range result {
		result[i].Order = i + 1
	}
	return result
}

func splitDirective(ctx context.Context, d payload.Directive, roster scenes.Roster, warnings *diagnostics.Collector) []payload.Directive {
	// A bracket is a header when it names a roster actor or is followed by
	// a colon. Other brackets such as "[laughs]" stay in the text.
	var matches [][]int
	resolvable := false
	for _, m := range header.FindAllStringSubmatchIndex(d.Text, -1) {
		_, ok := roster.Resolve(strings.TrimSpace(d.Text[m[2]:m[3]]))
		if ok || strings.HasSuffix(d.Text[m[0]:m[1]], ":") {
			matches = append(matches, m)
			resolvable = resolvable || ok
		}
	}
	if !resolvable {
		return []payload.Directive{d}
	}

	fragments := []fragment{{name: d.Actor, actorID: d.Actor, text: d.Text[:matches[0][0]]}}
	for i, m := range matches {
		end := len(d.Text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		name := strings.TrimSpace(d.Text[m[2]:m[3]])
		actorID, _ := roster.Resolve(name)
		fragments = append(fragments, fragment{name: name, actorID: actorID, text: d.Text[m[1]:end]})
	}

	var merged []fragment
	for _, f := range fragments {
		f.text = strings.TrimSpace(f.text)
		if f.text == "" {
			continue
		}
		if f.actorID == "" {
			warnings.Add(ctx, diagnostics.NewUnresolvedActor(f.name))
			continue
		}
		if n := len(merged); n > 0 && merged[n-1].actorID == f.actorID {
			merged[n-1].text += " " + f.text
			continue
		}
		merged = append(merged, f)
	}

	if len(merged) > 1 || (len(merged) == 1 && merged[0].actorID != d.Actor) {
		warnings.Add(ctx, diagnostics.Warning{
			Kind:    diagnostics.KindTurnSplit,
			Actor:   d.Actor,
			Value:   d.Text,
			Message: fmt.Sprintf("turn split into %d turns", len(merged)),
		})
	}

	var result []payload.Directive
	inherited := false
	for _, f := range merged {
		if f.actorID == d.Actor && !inherited {
			own := d
			own.Text = f.text
			result = append(result, own)
			inherited = true
			continue
		}
		result = append(result, payload.Directive{
			Index:     d.Index,
			Actor:     f.actorID,
			Text:      f.text,
			Animation: vocabulary.AnimationTalking,
			Speed:     d.Speed,
		})
	}
	return result
}
