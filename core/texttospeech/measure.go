// Package texttospeech is the boundary to speech synthesis. Synthesis itself
// happens elsewhere, this package only collects the measured speech
// durations that scenes are reconciled against.
package texttospeech

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/koscakluka/ema-stage/core/scenes"
)

// DurationMeasurer reports how long synthesized speech of text takes for an
// actor, in milliseconds.
type DurationMeasurer interface {
	MeasureDuration(ctx context.Context, actorID, text string) (int, error)
}

// MeasurerFunc adapts a function to a DurationMeasurer.
type MeasurerFunc func(ctx context.Context, actorID, text string) (int, error)

func (f MeasurerFunc) MeasureDuration(ctx context.Context, actorID, text string) (int, error) {
	return f(ctx, actorID, text)
}

// MeasureScene measures the dialogue of every speaking actor in the scene
// and returns the durations keyed by actor id. Only the first turn of an
// actor is measured.
func MeasureScene(ctx context.Context, measurer DurationMeasurer, scene *scenes.Scene, opts ...MeasureOption) (map[string]int, error) {
	options := MeasureOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	ctx, span := tracer.Start(ctx, "measure scene", trace.WithAttributes(
		attribute.String("scene.id", scene.ID),
		attribute.Int("scene.timelines", len(scene.Timelines)),
	))
	defer span.End()

	var (
		mu        sync.Mutex
		durations = map[string]int{}
	)

	g, ctx := errgroup.WithContext(ctx)
	if options.Concurrency > 0 {
		g.SetLimit(options.Concurrency)
	}

	measured := map[string]bool{}
	for _, tl := range scene.Timelines {
		if measured[tl.ActorID] || strings.TrimSpace(tl.Content) == "" {
			continue
		}
		measured[tl.ActorID] = true

		g.Go(func() error {
			duration, err := measurer.MeasureDuration(ctx, tl.ActorID, tl.Content)
			if err != nil {
				return fmt.Errorf("failed to measure speech of %s: %w", tl.ActorID, err)
			}

			mu.Lock()
			durations[tl.ActorID] = duration
			mu.Unlock()

			if options.OnMeasured != nil {
				options.OnMeasured(tl.ActorID, duration)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	logger.DebugContext(ctx, "measured scene speech", "scene", scene.ID, "actors", len(durations))
	return durations, nil
}

// Estimator approximates speech duration from the text length. It is meant
// for previews and tests where no synthesis is available.
type Estimator struct {
	// CharsPerSecond is the speaking rate.
	CharsPerSecond float64
	// Rates overrides the speaking rate per actor.
	Rates map[string]float64
}

func NewEstimator(charsPerSecond float64) *Estimator {
	return &Estimator{CharsPerSecond: charsPerSecond, Rates: map[string]float64{}}
}

func (e *Estimator) MeasureDuration(ctx context.Context, actorID, text string) (int, error) {
	rate := e.CharsPerSecond
	if r, ok := e.Rates[actorID]; ok {
		rate = r
	}
	if rate <= 0 {
		return 0, fmt.Errorf("speaking rate for %s must be positive", actorID)
	}

	chars := utf8.RuneCountInString(strings.TrimSpace(text))
	return int(math.Round(float64(chars) / rate * 1000)), nil
}
