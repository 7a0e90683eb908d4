package telemetry

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SpanTiming is the summary of one finished span.
type SpanTiming struct {
	Name     string
	Start    time.Time
	Duration time.Duration
	Err      string
}

// Recorder implements sdktrace.SpanProcessor and keeps a timing summary of
// every finished span.
type Recorder struct {
	mu      sync.Mutex
	timings []SpanTiming
}

var _ sdktrace.SpanProcessor = (*Recorder)(nil)

// NewRecorder returns a new Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnStart does nothing.
func (r *Recorder) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd records the span's timing.
func (r *Recorder) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	timing := SpanTiming{
		Name:     s.Name(),
		Start:    s.StartTime(),
		Duration: s.EndTime().Sub(s.StartTime()),
	}
	if s.Status().Code == codes.Error {
		timing.Err = s.Status().Description
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.timings = append(r.timings, timing)
}

// Timings returns the recorded spans ordered by start time.
func (r *Recorder) Timings() []SpanTiming {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := slices.Clone(r.timings)
	slices.SortStableFunc(out, func(a, b SpanTiming) int {
		return a.Start.Compare(b.Start)
	})
	return out
}

// ForceFlush does nothing.
func (r *Recorder) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Install registers a global tracer provider that feeds the given processors.
// The returned function shuts the provider down.
func Install(processors ...sdktrace.SpanProcessor) func(context.Context) error {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
