package timing

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid timing config")

// SpeedProfile maps a speed qualifier onto timing values.
type SpeedProfile struct {
	// Multiplier scales talking, pause and gesture durations.
	Multiplier float64 `yaml:"multiplier" mapstructure:"multiplier"`
	// PlaybackSpeed is handed to the renderer.
	PlaybackSpeed float64 `yaml:"playback_speed" mapstructure:"playback_speed"`
}

// Config holds the tuned timing constants. All durations are milliseconds.
type Config struct {
	MinSegmentDuration int     `yaml:"min_segment_duration" mapstructure:"min_segment_duration"`
	MaxSegmentDuration int     `yaml:"max_segment_duration" mapstructure:"max_segment_duration"`
	BaseMsPerChar      float64 `yaml:"base_ms_per_char" mapstructure:"base_ms_per_char"`
	PauseMin           int     `yaml:"pause_min" mapstructure:"pause_min"`
	PauseMax           int     `yaml:"pause_max" mapstructure:"pause_max"`

	// DefaultAnimationDuration is used for gestures missing from
	// AnimationDurations.
	DefaultAnimationDuration int            `yaml:"default_animation_duration" mapstructure:"default_animation_duration"`
	AnimationDurations       map[string]int `yaml:"animation_durations" mapstructure:"animation_durations"`

	Speeds map[string]SpeedProfile `yaml:"speeds" mapstructure:"speeds"`
}

func DefaultConfig() Config {
	return Config{
		MinSegmentDuration:       300,
		MaxSegmentDuration:       15000,
		BaseMsPerChar:            60,
		PauseMin:                 700,
		PauseMax:                 2000,
		DefaultAnimationDuration: 1500,
		AnimationDurations: map[string]int{
			"idle":         1500,
			"listening":    2000,
			"wave":         1800,
			"nod":          1000,
			"shake_head":   1200,
			"laugh":        2000,
			"cry":          2500,
			"shrug":        1200,
			"point":        1200,
			"thinking":     2000,
			"clap":         1800,
			"bow":          1500,
			"jump":         1200,
			"dance":        3000,
			"facepalm":     1500,
			"cross_arms":   1200,
			"lean_forward": 1000,
			"lean_back":    1000,
			"sigh":         1500,
			"celebrate":    2500,
			"scared":       1500,
			"angry":        1500,
		},
		Speeds: map[string]SpeedProfile{
			"slow":      {Multiplier: 1.3, PlaybackSpeed: 0.8},
			"normal":    {Multiplier: 1.0, PlaybackSpeed: 1.0},
			"fast":      {Multiplier: 0.75, PlaybackSpeed: 1.3},
			"explosive": {Multiplier: 0.6, PlaybackSpeed: 1.6},
		},
	}
}

// LoadConfig reads a YAML file on top of the default config.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read timing config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse timing config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.MinSegmentDuration <= 0:
		return fmt.Errorf("%w: min segment duration must be positive", ErrInvalidConfig)
	case c.MaxSegmentDuration < c.MinSegmentDuration:
		return fmt.Errorf("%w: max segment duration is below the minimum", ErrInvalidConfig)
	case c.BaseMsPerChar <= 0:
		return fmt.Errorf("%w: base ms per char must be positive", ErrInvalidConfig)
	case c.PauseMin < 0 || c.PauseMax < c.PauseMin:
		return fmt.Errorf("%w: pause range [%d,%d] is invalid", ErrInvalidConfig, c.PauseMin, c.PauseMax)
	}
	for name, profile := range c.Speeds {
		if profile.Multiplier <= 0 || profile.PlaybackSpeed <= 0 {
			return fmt.Errorf("%w: speed %s must have positive values", ErrInvalidConfig, name)
		}
	}
	return nil
}

// Profile returns the profile of a canonical speed qualifier, falling back
// to an identity profile.
func (c Config) Profile(speed string) SpeedProfile {
	if profile, ok := c.Speeds[speed]; ok {
		return profile
	}
	if profile, ok := c.Speeds["normal"]; ok {
		return profile
	}
	return SpeedProfile{Multiplier: 1, PlaybackSpeed: 1}
}

// Clamp limits a duration to the segment bounds.
func (c Config) Clamp(duration int) int {
	return min(max(duration, c.MinSegmentDuration), c.MaxSegmentDuration)
}
