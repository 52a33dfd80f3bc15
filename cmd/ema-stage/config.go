package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	orchestration "github.com/koscakluka/ema-stage/core"
)

const envPrefix = "EMA_STAGE"

// loadConfig reads the orchestration config from the given file, or from
// ema-stage.yaml in the working directory, with EMA_STAGE_* environment
// variables taking precedence.
func loadConfig(path string) (*orchestration.Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ema-stage")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, orchestration.DefaultConfig())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	config := orchestration.DefaultConfig()
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// setDefaults registers the scalar keys so that AutomaticEnv can override
// them without a config file.
func setDefaults(v *viper.Viper, config orchestration.Config) {
	defaults := map[string]any{
		"timing.min_segment_duration":       config.Timing.MinSegmentDuration,
		"timing.max_segment_duration":       config.Timing.MaxSegmentDuration,
		"timing.base_ms_per_char":           config.Timing.BaseMsPerChar,
		"timing.pause_min":                  config.Timing.PauseMin,
		"timing.pause_max":                  config.Timing.PauseMax,
		"timing.default_animation_duration": config.Timing.DefaultAnimationDuration,
		"scheduling.min_turn_gap":           config.Scheduling.MinTurnGap,
		"scheduling.overlap":                config.Scheduling.Overlap,
		"reactions.reaction_min":            config.Reactions.ReactionMin,
		"reactions.reaction_max":            config.Reactions.ReactionMax,
		"reactions.blink_chance":            config.Reactions.BlinkChance,
		"reactions.nod_chance":              config.Reactions.NodChance,
		"batch_limit":                       config.BatchLimit,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}
