package timer

import (
	"math"
	"time"

	"support-kit/core/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Timer records a start and an end instant. The zero value is ready to use.
type Timer struct {
	start time.Time
	end   time.Time
	now   func() time.Time
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// New creates a timer.
func New(opts ...Option) *Timer {
	t := &Timer{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Timer) clock() time.Time {
	if t.now != nil {
		return t.now()
	}
	return time.Now()
}

// Start records the start instant and clears a previous end.
func (t *Timer) Start() {
	t.start = t.clock()
	t.end = time.Time{}
}

// End records the end instant.
func (t *Timer) End() {
	t.end = t.clock()
}

// Started reports whether Start was called.
func (t *Timer) Started() bool {
	return !t.start.IsZero()
}

// Duration returns the time between start and end. A timer that was started
// but not ended measures up to now; one never started returns 0.
func (t *Timer) Duration() time.Duration {
	if !t.Started() {
		return 0
	}
	end := t.end
	if end.IsZero() {
		end = t.clock()
	}
	return end.Sub(t.start)
}

// DurationInSeconds returns Duration in seconds, rounded to microseconds.
func (t *Timer) DurationInSeconds() float64 {
	return math.Round(t.Duration().Seconds()*1e6) / 1e6
}

// Track starts a timer and returns a func that stops it and logs the
// measurement under name.
func Track(name string, opts ...Option) func() {
	t := New(opts...)
	runID := uuid.NewString()
	log := logger.Named("timer").With(zap.String("timer", name), zap.String("run_id", runID))

	t.Start()
	log.Debug("Timer started")

	return func() {
		t.End()
		log.Info("Timer finished",
			zap.Float64("seconds", t.DurationInSeconds()),
			zap.Duration("duration", t.Duration()),
		)
	}
}
