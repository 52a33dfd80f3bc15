package orchestration

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/koscakluka/ema-stage/core/reconcile"
	"github.com/koscakluka/ema-stage/core/scenes"
	"github.com/koscakluka/ema-stage/core/scheduling"
	"github.com/koscakluka/ema-stage/core/texttospeech"
)

// Reconcile rescales the speaking timelines of the scene to the measured
// durations in targets, keyed by actor id, then reschedules the turns and
// regenerates the reactions so that the scene stays consistent. The input
// scene is not modified.
func (o *Orchestrator) Reconcile(ctx context.Context, scene *scenes.Scene, targets map[string]int) (*scenes.Scene, error) {
	ctx, span := tracer.Start(ctx, "reconcile", trace.WithAttributes(
		attribute.String("scene.id", scene.ID),
		attribute.Int("targets", len(targets)),
	))
	defer span.End()

	rescaled, err := reconcile.Scene(scene, targets, o.config.Timing.MinSegmentDuration, o.config.Timing.MaxSegmentDuration)
	if err != nil {
		err = fmt.Errorf("failed to reconcile scene: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	scheduling.Schedule(rescaled.Timelines, o.config.Scheduling)
	rescaled.RecomputeDuration()
	newReactionGenerator(o.config).Fill(rescaled, o.newRand(0))

	logger.DebugContext(ctx, "reconciled scene",
		"scene", rescaled.ID,
		"before", scene.SceneDuration,
		"after", rescaled.SceneDuration,
	)
	return rescaled, nil
}

// ReconcileWithMeasurer measures the speech of every speaker and reconciles
// the scene against it.
func (o *Orchestrator) ReconcileWithMeasurer(ctx context.Context, scene *scenes.Scene, measurer texttospeech.DurationMeasurer) (*scenes.Scene, error) {
	targets, err := texttospeech.MeasureScene(ctx, measurer, scene, texttospeech.WithConcurrency(o.config.BatchLimit))
	if err != nil {
		return nil, err
	}
	return o.Reconcile(ctx, scene, targets)
}
