package texttospeech

type MeasureOptions struct {
	// Concurrency limits the number of measurements in flight. Zero or less
	// means no limit.
	Concurrency int
	// OnMeasured is called for every measured timeline.
	OnMeasured func(actorID string, durationMs int)
}

type MeasureOption func(*MeasureOptions)

func WithConcurrency(limit int) MeasureOption {
	return func(o *MeasureOptions) { o.Concurrency = limit }
}

func WithMeasuredCallback(callback func(actorID string, durationMs int)) MeasureOption {
	return func(o *MeasureOptions) { o.OnMeasured = callback }
}
