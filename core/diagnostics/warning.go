package diagnostics

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindSkippedEntry Kind = "payload.skipped_entry"

	KindAliasResolved  Kind = "vocabulary.alias_resolved"
	KindSubstringMatch Kind = "vocabulary.substring_match"
	KindDefaulted      Kind = "vocabulary.defaulted"

	KindUnknownMood Kind = "expression.unknown_mood"

	KindEmptyDialogue Kind = "timing.empty_dialogue"
	KindRangeRepaired Kind = "timing.range_repaired"

	KindTurnSplit       Kind = "scheduling.turn_split"
	KindUnresolvedActor Kind = "scheduling.unresolved_actor"

	KindDuplicateSpeaker   Kind = "guideline.duplicate_speaker"
	KindLeftoverNamePrefix Kind = "guideline.leftover_name_prefix"
	KindBlankDialogue      Kind = "guideline.blank_dialogue"
	KindActorOutsideRoster Kind = "guideline.actor_outside_roster"

	KindFallbackScene Kind = "orchestration.fallback_scene"
)

// Stage returns the namespace part of the kind, e.g. "vocabulary".
func (k Kind) Stage() string {
	stage, _, _ := strings.Cut(string(k), ".")
	return stage
}

// Warning is a single silently corrected anomaly.
type Warning struct {
	Kind Kind `json:"kind" yaml:"kind"`
	// Actor is the actor the warning relates to, if any.
	Actor string `json:"actor,omitempty" yaml:"actor,omitempty"`
	// Field is the raw payload field that was corrected, e.g. "animation".
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	// Value is the offending raw value.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	// Resolved is the value that was used instead, if any.
	Resolved string `json:"resolved,omitempty" yaml:"resolved,omitempty"`
	Message  string `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	var b strings.Builder
	b.WriteString(string(w.Kind))
	if w.Actor != "" {
		fmt.Fprintf(&b, " actor=%s", w.Actor)
	}
	if w.Field != "" {
		fmt.Fprintf(&b, " field=%s", w.Field)
	}
	if w.Value != "" {
		fmt.Fprintf(&b, " value=%q", w.Value)
	}
	if w.Resolved != "" {
		fmt.Fprintf(&b, " resolved=%q", w.Resolved)
	}
	if w.Message != "" {
		b.WriteString(": ")
		b.WriteString(w.Message)
	}
	return b.String()
}

func NewVocabularyWarning(kind Kind, field, value, resolved string) Warning {
	var message string
	switch kind {
	case KindAliasResolved:
		message = "value resolved through alias"
	case KindSubstringMatch:
		message = "value resolved through substring match"
	default:
		message = "unknown value replaced with default"
	}

	return Warning{Kind: kind, Field: field, Value: value, Resolved: resolved, Message: message}
}

func NewUnknownMood(mood string) Warning {
	return Warning{
		Kind:    KindUnknownMood,
		Field:   "expression",
		Value:   mood,
		Message: "unknown expression preset, using explicit fields only",
	}
}

func NewSkippedEntry(index int, reason string) Warning {
	return Warning{
		Kind:    KindSkippedEntry,
		Value:   fmt.Sprintf("ch[%d]", index),
		Message: reason,
	}
}

func NewUnresolvedActor(name string) Warning {
	return Warning{
		Kind:    KindUnresolvedActor,
		Value:   name,
		Message: "actor is not part of the roster, entry dropped",
	}
}
