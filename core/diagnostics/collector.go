package diagnostics

import (
	"context"
	"slices"
	"sync"
)

// Collector accumulates the warnings of a single orchestration run.
//
// A nil *Collector is valid and only logs.
type Collector struct {
	mu        sync.Mutex
	warnings  []Warning
	onWarning func(Warning)
}

type CollectorOption func(*Collector)

// WithWarningCallback registers a callback that is invoked inline for every
// warning added to the collector.
func WithWarningCallback(callback func(Warning)) CollectorOption {
	return func(c *Collector) { c.onWarning = callback }
}

func NewCollector(opts ...CollectorOption) *Collector {
	c := &Collector{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add records the warning and logs it.
func (c *Collector) Add(ctx context.Context, w Warning) {
	logger.WarnContext(ctx, w.Message,
		"kind", string(w.Kind),
		"actor", w.Actor,
		"field", w.Field,
		"value", w.Value,
		"resolved", w.Resolved,
	)

	if c == nil {
		return
	}

	c.mu.Lock()
	c.warnings = append(c.warnings, w)
	onWarning := c.onWarning
	c.mu.Unlock()

	if onWarning != nil {
		onWarning(w)
	}
}

// Warnings returns a copy of the recorded warnings in insertion order.
func (c *Collector) Warnings() []Warning {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.warnings)
}

// Count returns the number of recorded warnings of the given kind.
func (c *Collector) Count(kind Kind) int {
	count := 0
	for _, w := range c.Warnings() {
		if w.Kind == kind {
			count++
		}
	}
	return count
}

func (c *Collector) Has(kind Kind) bool { return c.Count(kind) > 0 }
