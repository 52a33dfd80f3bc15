package expressions

import (
	"slices"
	"strings"

	"github.com/koscakluka/ema-stage/core/scenes"
)

// Resolve maps a mood word to a preset name through the alias table. The
// mood is matched case-insensitively with spaces and hyphens as underscores.
func Resolve(mood string) (string, bool) {
	key := strings.Join(strings.FieldsFunc(strings.ToLower(mood), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '\t'
	}), "_")
	if _, ok := presets[key]; ok {
		return key, true
	}
	if name, ok := aliases[key]; ok {
		return name, true
	}
	return "", false
}

// Lookup returns the preset for a mood word.
func Lookup(mood string) (Preset, bool) {
	name, ok := Resolve(mood)
	if !ok {
		return Preset{}, false
	}
	return presets[name], true
}

// Expand merges the preset named by mood underneath the overrides. Fields set
// in overrides always win. For an unknown mood only the overrides are
// returned and ok is false. An empty mood is not considered unknown.
func Expand(mood string, overrides scenes.FaceState) (face scenes.FaceState, ok bool) {
	if strings.TrimSpace(mood) == "" {
		return overrides, true
	}

	preset, ok := Lookup(mood)
	if !ok {
		return overrides, false
	}
	return preset.FaceState().Merge(overrides), true
}

// Names returns the canonical preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
