package orchestration

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/koscakluka/ema-stage/core/reactions"
	"github.com/koscakluka/ema-stage/core/scheduling"
	"github.com/koscakluka/ema-stage/core/timing"
)

// Config gathers the tunable constants of every stage.
type Config struct {
	Timing     timing.Config     `yaml:"timing" mapstructure:"timing"`
	Scheduling scheduling.Config `yaml:"scheduling" mapstructure:"scheduling"`
	Reactions  reactions.Config  `yaml:"reactions" mapstructure:"reactions"`
	// BatchLimit caps the number of scenes orchestrated concurrently by
	// OrchestrateBatch. Zero or less means no limit.
	BatchLimit int `yaml:"batch_limit" mapstructure:"batch_limit"`
}

func DefaultConfig() Config {
	return Config{
		Timing:     timing.DefaultConfig(),
		Scheduling: scheduling.DefaultConfig(),
		Reactions:  reactions.DefaultConfig(),
		BatchLimit: 8,
	}
}

// LoadConfig reads a YAML file on top of the default config.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	if err := c.Timing.Validate(); err != nil {
		return err
	}
	if c.Scheduling.MinTurnGap < 0 || c.Scheduling.Overlap < 0 {
		return fmt.Errorf("%w: turn gap and overlap must not be negative", timing.ErrInvalidConfig)
	}
	if c.Reactions.ReactionMin <= 0 || c.Reactions.ReactionMax < c.Reactions.ReactionMin {
		return fmt.Errorf("%w: reaction range [%d,%d] is invalid", timing.ErrInvalidConfig, c.Reactions.ReactionMin, c.Reactions.ReactionMax)
	}
	return nil
}
