package orchestration

import (
	"context"

	"go.opentelemetry.io/otel/codes"
)

// Stage is a step of the orchestration state machine.
type Stage string

const (
	StageDecoding        Stage = "decoding"
	StageValidating      Stage = "validating"
	StageExpanding       Stage = "expanding"
	StageTiming          Stage = "timing"
	StageScheduling      Stage = "scheduling"
	StageReactionFilling Stage = "reaction_filling"
	StageDone            Stage = "done"
)

// Stages lists the stages in the order they run.
var Stages = []Stage{
	StageDecoding,
	StageValidating,
	StageExpanding,
	StageTiming,
	StageScheduling,
	StageReactionFilling,
	StageDone,
}

// runStage runs fn inside a child span named after the stage and records
// the stage on the run.
func (r *run) runStage(ctx context.Context, stage Stage, fn func(ctx context.Context) error) error {
	ctx, span := tracer.Start(ctx, "orchestration."+string(stage))
	defer span.End()

	r.stage = stage
	logger.DebugContext(ctx, "orchestration stage started", "stage", string(stage), "scene", r.sceneID)

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
