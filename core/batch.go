package orchestration

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/koscakluka/ema-stage/core/scenes"
)

// Request is one independent input of OrchestrateBatch.
type Request struct {
	Text          string
	Roster        scenes.Roster
	FallbackActor string
}

// OrchestrateBatch orchestrates independent requests concurrently, at most
// BatchLimit at a time. Structural failures fall back per request; only a
// cancelled context fails the batch, leaving unprocessed results nil.
// Results are in request order.
func (o *Orchestrator) OrchestrateBatch(ctx context.Context, requests []Request) ([]*Result, error) {
	ctx, span := tracer.Start(ctx, "orchestrate batch", trace.WithAttributes(
		attribute.Int("batch.size", len(requests)),
		attribute.Int("batch.limit", o.config.BatchLimit),
	))
	defer span.End()

	results := make([]*Result, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	if o.config.BatchLimit > 0 {
		g.SetLimit(o.config.BatchLimit)
	}
	for i, request := range requests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = o.orchestrateOrFallback(ctx, request.Text, request.Roster, request.FallbackActor, o.newRand(uint64(i)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		err = fmt.Errorf("batch orchestration interrupted: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return results, err
	}
	return results, nil
}
