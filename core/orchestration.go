package orchestration

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/koscakluka/ema-stage/core/diagnostics"
	"github.com/koscakluka/ema-stage/core/expressions"
	"github.com/koscakluka/ema-stage/core/guidelines"
	"github.com/koscakluka/ema-stage/core/payload"
	"github.com/koscakluka/ema-stage/core/reactions"
	"github.com/koscakluka/ema-stage/core/scenes"
	"github.com/koscakluka/ema-stage/core/scheduling"
	"github.com/koscakluka/ema-stage/core/timing"
	"github.com/koscakluka/ema-stage/core/vocabulary"
)

var ErrNoUsableActors = errors.New("no usable actors in payload")

// Orchestrator turns model output into animation scenes. It holds no state
// between runs and is safe for concurrent use.
type Orchestrator struct {
	config    Config
	seed      *uint64
	onWarning func(diagnostics.Warning)

	sceneCounter   metric.Int64Counter
	warningCounter metric.Int64Counter
}

func NewOrchestrator(opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{config: DefaultConfig()}
	for _, opt := range opts {
		opt(o)
	}

	var err error
	if o.sceneCounter, err = meter.Int64Counter("ema_stage.scenes",
		metric.WithDescription("Scenes produced, by outcome"),
		metric.WithUnit("{scene}"),
	); err != nil {
		logger.Error("failed to create scene counter", "error", err)
		o.sceneCounter = noop.Int64Counter{}
	}
	if o.warningCounter, err = meter.Int64Counter("ema_stage.warnings",
		metric.WithDescription("Silently corrected anomalies, by kind"),
		metric.WithUnit("{warning}"),
	); err != nil {
		logger.Error("failed to create warning counter", "error", err)
		o.warningCounter = noop.Int64Counter{}
	}

	return o
}

// Config returns the configuration in use.
func (o *Orchestrator) Config() Config { return o.config }

// Result is the outcome of a single orchestration run.
type Result struct {
	// Scene is nil when the run failed structurally.
	Scene *scenes.Scene
	// Warnings lists every silently corrected anomaly in the order they
	// were found.
	Warnings []diagnostics.Warning
	// Stage is the last stage reached, StageDone on success.
	Stage Stage
	// Err is the structural failure that led to a fallback scene, if any.
	Err error
}

// Orchestrate converts raw model text into a scene for the roster.
//
// Field anomalies never fail a run; they are corrected and reported as
// warnings. A structural failure (no payload, unsupported format, no usable
// actors) returns an error and a result without a scene, in which case the
// caller is expected to fall back, see OrchestrateOrFallback.
//
// With an empty roster speakers are accepted as they are named.
func (o *Orchestrator) Orchestrate(ctx context.Context, text string, roster scenes.Roster) (*Result, error) {
	return o.orchestrate(ctx, text, roster, o.newRand(0), o.newCollector())
}

// OrchestrateOrFallback orchestrates the text and substitutes a fallback
// scene on structural failure. The returned result always has a scene.
func (o *Orchestrator) OrchestrateOrFallback(ctx context.Context, text string, roster scenes.Roster, fallbackActor string) *Result {
	return o.orchestrateOrFallback(ctx, text, roster, fallbackActor, o.newRand(0))
}

func (o *Orchestrator) orchestrateOrFallback(ctx context.Context, text string, roster scenes.Roster, fallbackActor string, rng *rand.Rand) *Result {
	warnings := o.newCollector()
	result, err := o.orchestrate(ctx, text, roster, rng, warnings)
	if err == nil {
		return result
	}

	warnings.Add(ctx, diagnostics.Warning{
		Kind:    diagnostics.KindFallbackScene,
		Value:   string(result.Stage),
		Message: err.Error(),
	})
	result.Scene = o.fallback(ctx, text, roster, fallbackActor, rng)
	result.Warnings = warnings.Warnings()
	result.Err = err
	o.recordScene(ctx, "fallback")
	return result
}

func (o *Orchestrator) orchestrate(ctx context.Context, text string, roster scenes.Roster, rng *rand.Rand, warnings *diagnostics.Collector) (*Result, error) {
	r := &run{
		config:   o.config,
		roster:   roster,
		rng:      rng,
		warnings: warnings,
		sceneID:  uuid.NewString(),
	}

	ctx, span := tracer.Start(ctx, "orchestrate", trace.WithAttributes(
		attribute.String("scene.id", r.sceneID),
		attribute.Int("roster.size", len(roster)),
		attribute.Int("input.length", len(text)),
	))
	defer span.End()

	steps := []struct {
		stage Stage
		fn    func(context.Context) error
	}{
		{StageDecoding, func(ctx context.Context) error { return r.decode(ctx, text) }},
		{StageValidating, r.validate},
		{StageExpanding, r.expand},
		{StageTiming, r.time},
		{StageScheduling, r.schedule},
		{StageReactionFilling, r.fillReactions},
	}
	for _, step := range steps {
		if err := r.runStage(ctx, step.stage, step.fn); err != nil {
			err = fmt.Errorf("orchestration failed while %s: %w", step.stage, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			o.recordScene(ctx, "failed")
			return &Result{Warnings: warnings.Warnings(), Stage: r.stage}, err
		}
	}
	r.stage = StageDone

	guidelines.Check(ctx, r.scene, warnings)

	span.SetAttributes(
		attribute.Int("scene.duration", r.scene.SceneDuration),
		attribute.Int("scene.speakers", len(r.scene.Timelines)),
	)
	o.recordScene(ctx, "orchestrated")

	return &Result{Scene: r.scene, Warnings: warnings.Warnings(), Stage: StageDone}, nil
}

func (o *Orchestrator) newCollector() *diagnostics.Collector {
	return diagnostics.NewCollector(diagnostics.WithWarningCallback(func(w diagnostics.Warning) {
		o.warningCounter.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", string(w.Kind))))
		if o.onWarning != nil {
			o.onWarning(w)
		}
	}))
}

func (o *Orchestrator) recordScene(ctx context.Context, outcome string) {
	o.sceneCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// newRand returns the random source of one run. Seeded orchestrators derive
// the source from the seed and the offset.
func (o *Orchestrator) newRand(offset uint64) *rand.Rand {
	if o.seed != nil {
		return rand.New(rand.NewPCG(*o.seed, *o.seed+offset))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// run holds the intermediate state of one orchestration.
type run struct {
	config   Config
	roster   scenes.Roster
	rng      *rand.Rand
	warnings *diagnostics.Collector
	sceneID  string
	stage    Stage

	payload   *payload.Payload
	turns     []timing.Turn
	moods     []string
	timelines []scenes.Timeline
	scene     *scenes.Scene
}

func (r *run) decode(ctx context.Context, text string) error {
	data, err := payload.Extract(text)
	if err != nil {
		return err
	}

	r.payload, err = payload.Decode(data, payload.WithWarnings(ctx, r.warnings))
	return err
}

func (r *run) validate(ctx context.Context) error {
	var directives []payload.Directive
	for _, d := range r.payload.Directives {
		if len(r.roster) > 0 {
			id, ok := r.roster.Resolve(d.Actor)
			if !ok {
				r.warnings.Add(ctx, diagnostics.NewUnresolvedActor(d.Actor))
				continue
			}
			d.Actor = id
		}
		directives = append(directives, d)
	}

	directives = scheduling.Split(ctx, directives, r.roster, r.warnings)
	if len(directives) == 0 {
		return ErrNoUsableActors
	}

	validator := vocabulary.NewValidator(r.warnings)
	for _, d := range directives {
		r.turns = append(r.turns, timing.Turn{
			ActorID:   d.Actor,
			Text:      d.Text,
			Animation: validator.Validate(ctx, d.Actor, vocabulary.FieldAnimation, d.Animation),
			Speed:     validator.Validate(ctx, d.Actor, vocabulary.FieldSpeed, d.Speed),
			Face: validator.Face(ctx, d.Actor, vocabulary.RawFace{
				Eyes:     d.Eyes,
				Eyebrows: d.Eyebrows,
				Mouth:    d.Mouth,
				Face:     d.Face,
				Nose:     d.Nose,
				Cheek:    d.Cheek,
				Forehead: d.Forehead,
				Jaw:      d.Jaw,
				Gaze:     d.Gaze,
				Effect:   d.Effect,
			}),
			Interrupt: d.Interrupt,
			Order:     d.Order,
			Voice:     d.Voice,
		})
		r.moods = append(r.moods, d.Expression)
	}
	return nil
}

func (r *run) expand(ctx context.Context) error {
	for i := range r.turns {
		face, ok := expressions.Expand(r.moods[i], r.turns[i].Face)
		if !ok {
			warning := diagnostics.NewUnknownMood(r.moods[i])
			warning.Actor = r.turns[i].ActorID
			r.warnings.Add(ctx, warning)
		}
		r.turns[i].Face = face
	}
	return nil
}

func (r *run) time(ctx context.Context) error {
	calculator := timing.NewCalculator(r.config.Timing, timing.WithWarnings(r.warnings))
	for _, turn := range r.turns {
		tl := calculator.BuildTimeline(ctx, turn, r.rng)
		if timing.RepairTimeline(&tl) {
			r.warnings.Add(ctx, diagnostics.Warning{
				Kind:    diagnostics.KindRangeRepaired,
				Actor:   tl.ActorID,
				Message: "text reveal ranges were repaired",
			})
		}
		r.timelines = append(r.timelines, tl)
	}
	return nil
}

func (r *run) schedule(ctx context.Context) error {
	scheduling.Schedule(r.timelines, r.config.Scheduling)

	roster := r.roster
	if len(roster) == 0 {
		roster = speakerRoster(r.timelines)
	}
	r.scene = scenes.New(roster, r.timelines)
	r.scene.ID = r.sceneID
	return nil
}

func (r *run) fillReactions(ctx context.Context) error {
	newReactionGenerator(r.config).Fill(r.scene, r.rng)
	return nil
}

func newReactionGenerator(config Config) *reactions.Generator {
	return reactions.NewGenerator(config.Reactions, config.Timing.MinSegmentDuration, config.Timing.MaxSegmentDuration)
}

func speakerRoster(timelines []scenes.Timeline) scenes.Roster {
	var ids []string
	seen := map[string]bool{}
	for _, tl := range timelines {
		if !seen[tl.ActorID] {
			seen[tl.ActorID] = true
			ids = append(ids, tl.ActorID)
		}
	}
	return scenes.NewRoster(ids...)
}
