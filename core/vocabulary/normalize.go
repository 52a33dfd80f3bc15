package vocabulary

import (
	"context"
	"slices"
	"strings"

	"github.com/koscakluka/ema-stage/core/diagnostics"
	"github.com/koscakluka/ema-stage/core/scenes"
)

// Normalize lower-cases and trims the value and collapses internal runs of
// whitespace and hyphens into a single underscore.
func Normalize(raw string) string {
	fields := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	return strings.Join(fields, "_")
}

// Resolution describes how a raw value was mapped onto a vocabulary.
type Resolution struct {
	Value string
	// Kind is empty for exact matches and empty input, otherwise it names the
	// correction that was applied.
	Kind diagnostics.Kind
}

// Resolve maps a raw value onto the closed vocabulary of the field: exact
// term, alias, bidirectional substring containment and finally the field
// default. Unknown fields resolve to the empty string.
func Resolve(field Field, raw string) Resolution {
	v, ok := vocabularies[field]
	if !ok {
		return Resolution{}
	}
	return v.Resolve(raw)
}

func (v Vocabulary) Resolve(raw string) Resolution {
	key := Normalize(raw)
	if key == "" {
		return Resolution{Value: v.Default}
	}
	if slices.Contains(v.Terms, key) {
		return Resolution{Value: key}
	}
	if alias, ok := v.Aliases[key]; ok {
		return Resolution{Value: alias, Kind: diagnostics.KindAliasResolved}
	}
	if term, ok := v.substringMatch(key); ok {
		return Resolution{Value: term, Kind: diagnostics.KindSubstringMatch}
	}
	return Resolution{Value: v.Default, Kind: diagnostics.KindDefaulted}
}

// substringMatch returns the longest term that contains the key or is
// contained in it.
func (v Vocabulary) substringMatch(key string) (string, bool) {
	best := ""
	for _, term := range v.Terms {
		if term == v.Default {
			continue
		}
		if strings.Contains(term, key) || strings.Contains(key, term) {
			if len(term) > len(best) {
				best = term
			}
		}
	}
	return best, best != ""
}

// ValidateAnimation resolves a raw animation name without reporting.
func ValidateAnimation(raw string) string { return Resolve(FieldAnimation, raw).Value }

// Validator resolves raw payload fields and reports every correction.
type Validator struct {
	warnings *diagnostics.Collector
}

func NewValidator(warnings *diagnostics.Collector) *Validator {
	return &Validator{warnings: warnings}
}

// Validate resolves the raw value of a field for the actor.
func (v *Validator) Validate(ctx context.Context, actor string, field Field, raw string) string {
	resolution := Resolve(field, raw)
	if resolution.Kind != "" {
		warning := diagnostics.NewVocabularyWarning(resolution.Kind, string(field), raw, resolution.Value)
		warning.Actor = actor
		v.warnings.Add(ctx, warning)
	}
	return resolution.Value
}

// RawFace holds the unvalidated facial fields of a payload entry.
type RawFace struct {
	Eyes, Eyebrows, Mouth, Face, Nose, Cheek, Forehead, Jaw, Gaze, Effect string
}

// Face validates every non-empty field of the raw face. Empty fields stay
// empty so that expression presets can fill them in.
func (v *Validator) Face(ctx context.Context, actor string, raw RawFace) scenes.FaceState {
	optional := func(field Field, value string) string {
		if strings.TrimSpace(value) == "" {
			return ""
		}
		return v.Validate(ctx, actor, field, value)
	}

	return scenes.FaceState{
		Eyes:     optional(FieldEyes, raw.Eyes),
		Eyebrows: optional(FieldEyebrows, raw.Eyebrows),
		Mouth:    optional(FieldMouth, raw.Mouth),
		Face:     optional(FieldFace, raw.Face),
		Nose:     optional(FieldNose, raw.Nose),
		Cheek:    optional(FieldCheek, raw.Cheek),
		Forehead: optional(FieldForehead, raw.Forehead),
		Jaw:      optional(FieldJaw, raw.Jaw),
		Gaze:     optional(FieldGaze, raw.Gaze),
		Effect:   optional(FieldEffect, raw.Effect),
	}
}
