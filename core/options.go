package orchestration

import (
	"github.com/koscakluka/ema-stage/core/diagnostics"
	"github.com/koscakluka/ema-stage/core/reactions"
	"github.com/koscakluka/ema-stage/core/scheduling"
	"github.com/koscakluka/ema-stage/core/timing"
)

type OrchestratorOption func(*Orchestrator)

// WithConfig replaces the whole configuration. A nil config is ignored.
func WithConfig(config *Config) OrchestratorOption {
	return func(o *Orchestrator) {
		if config == nil {
			return
		}

		o.config = *config
	}
}

func WithTimingConfig(config timing.Config) OrchestratorOption {
	return func(o *Orchestrator) { o.config.Timing = config }
}

func WithSchedulingConfig(config scheduling.Config) OrchestratorOption {
	return func(o *Orchestrator) { o.config.Scheduling = config }
}

func WithReactionConfig(config reactions.Config) OrchestratorOption {
	return func(o *Orchestrator) { o.config.Reactions = config }
}

// WithSeed makes every run reproducible: the same input produces the same
// scene apart from its id.
func WithSeed(seed uint64) OrchestratorOption {
	return func(o *Orchestrator) { o.seed = &seed }
}

func WithBatchLimit(limit int) OrchestratorOption {
	return func(o *Orchestrator) { o.config.BatchLimit = limit }
}

// WithWarningHandler registers a callback invoked for every warning of every
// run, in addition to the warnings returned with the result.
func WithWarningHandler(handler func(diagnostics.Warning)) OrchestratorOption {
	return func(o *Orchestrator) { o.onWarning = handler }
}
