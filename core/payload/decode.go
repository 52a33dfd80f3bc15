package payload

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/koscakluka/ema-stage/core/diagnostics"
)

type DecodeOption func(*DecodeOptions)

type DecodeOptions struct {
	Context  context.Context
	Warnings *diagnostics.Collector
}

// WithWarnings reports skipped entries to the collector.
func WithWarnings(ctx context.Context, warnings *diagnostics.Collector) DecodeOption {
	return func(o *DecodeOptions) {
		o.Context = ctx
		o.Warnings = warnings
	}
}

// Decode parses an extracted compact payload.
//
// The compact shape is recognised by a numeric "ord" and no "d" on the first
// entry. Anything else is rejected rather than guessed at.
func Decode(data string, opts ...DecodeOption) (*Payload, error) {
	options := DecodeOptions{Context: context.Background()}
	for _, opt := range opts {
		opt(&options)
	}

	if !gjson.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrNoPayload)
	}

	entries := gjson.Get(data, "s.ch")
	if !entries.IsArray() || len(entries.Array()) == 0 {
		return nil, ErrNoActors
	}

	if err := detectFormat(entries.Array()[0]); err != nil {
		return nil, err
	}

	payload := &Payload{}
	for i, entry := range entries.Array() {
		directive, reason := decodeDirective(i, entry)
		if reason != "" {
			options.Warnings.Add(options.Context, diagnostics.NewSkippedEntry(i, reason))
			continue
		}
		payload.Directives = append(payload.Directives, directive)
	}

	if len(payload.Directives) == 0 {
		return nil, ErrNoActors
	}

	slices.SortStableFunc(payload.Directives, func(a, b Directive) int {
		return a.Order - b.Order
	})
	return payload, nil
}

func detectFormat(first gjson.Result) error {
	order := first.Get("ord")
	hasOrder := order.Type == gjson.Number
	hasDelay := first.Get("d").Exists()

	switch {
	case hasOrder && hasDelay:
		return ErrAmbiguousFormat
	case hasDelay:
		return ErrLegacyFormat
	case !hasOrder:
		return ErrUnknownFormat
	}
	return nil
}

func decodeDirective(index int, entry gjson.Result) (Directive, string) {
	if !entry.IsObject() {
		return Directive{}, "entry is not an object"
	}

	actor := strings.TrimSpace(entry.Get("c").String())
	if actor == "" {
		return Directive{}, "entry has no actor"
	}
	text := entry.Get("t")
	if !text.Exists() {
		return Directive{}, "entry has no text"
	}

	order := index + 1
	if ord := entry.Get("ord"); ord.Exists() {
		order = int(ord.Int())
	}

	str := func(key string) string { return entry.Get(key).String() }
	return Directive{
		Index:      index,
		Actor:      actor,
		Text:       text.String(),
		Order:      order,
		Animation:  str("a"),
		Speed:      str("sp"),
		Gaze:       str("lk"),
		Expression: str("ex"),
		Eyes:       str("ey"),
		Eyebrows:   str("eb"),
		Mouth:      str("m"),
		Face:       str("fc"),
		Nose:       str("n"),
		Cheek:      str("ck"),
		Forehead:   str("fh"),
		Jaw:        str("j"),
		Effect:     str("fx"),
		Interrupt:  entry.Get("int").Bool(),
		Voice:      decodeVoice(entry.Get("v")),
	}, ""
}

func decodeVoice(v gjson.Result) map[string]string {
	switch {
	case v.IsObject():
		voice := map[string]string{}
		v.ForEach(func(key, value gjson.Result) bool {
			voice[key.String()] = value.String()
			return true
		})
		if len(voice) == 0 {
			return nil
		}
		return voice
	case v.Type == gjson.String && v.Str != "":
		return map[string]string{"tone": v.Str}
	}
	return nil
}
