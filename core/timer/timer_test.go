package timer_test

import (
	"testing"
	"time"

	"support-kit/core/timer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeClock returns the instants in order, repeating the last one.
func fakeClock(instants ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		now := instants[min(i, len(instants)-1)]
		i++
		return now
	}
}

var base = time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)

func TestTimer_Measures(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"100ms", 100 * time.Millisecond, 0.1},
		{"150ms", 150 * time.Millisecond, 0.15},
		{"250ms", 250 * time.Millisecond, 0.25},
		{"RoundsToMicroseconds", 1234567891 * time.Nanosecond, 1.234568},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := timer.New(timer.WithClock(fakeClock(base, base.Add(tt.elapsed))))
			tm.Start()
			tm.End()

			assert.Equal(t, tt.want, tm.DurationInSeconds())
			assert.Equal(t, tt.elapsed, tm.Duration())
		})
	}
}

func TestTimer_RealClock(t *testing.T) {
	var tm timer.Timer
	tm.Start()
	time.Sleep(20 * time.Millisecond)
	tm.End()

	assert.InDelta(t, 0.02, tm.DurationInSeconds(), 0.05)
}

func TestTimer_NotStarted(t *testing.T) {
	var tm timer.Timer
	assert.Equal(t, 0.0, tm.DurationInSeconds())

	tm.End()
	assert.Equal(t, 0.0, tm.DurationInSeconds())
	assert.False(t, tm.Started())
}

func TestTimer_EndsAutomatically(t *testing.T) {
	tm := timer.New(timer.WithClock(fakeClock(base, base.Add(time.Second))))
	tm.Start()

	assert.Equal(t, 1, int(tm.DurationInSeconds()))
}

func TestTimer_RestartClearsEnd(t *testing.T) {
	tm := timer.New(timer.WithClock(fakeClock(
		base,
		base.Add(time.Second),
		base.Add(10*time.Second),
		base.Add(12*time.Second),
	)))
	tm.Start()
	tm.End()
	require.Equal(t, 1.0, tm.DurationInSeconds())

	tm.Start()
	assert.Equal(t, 2.0, tm.DurationInSeconds())
}

func TestTrack(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	done := timer.Track("import", timer.WithClock(fakeClock(base, base.Add(1500*time.Millisecond))))
	done()

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Timer started", entries[0].Message)
	assert.Equal(t, "Timer finished", entries[1].Message)

	fields := entries[1].ContextMap()
	assert.Equal(t, "import", fields["timer"])
	assert.Equal(t, "timer", fields["component"])
	assert.Equal(t, 1.5, fields["seconds"])
	assert.Equal(t, entries[0].ContextMap()["run_id"], fields["run_id"])

	_, err := uuid.Parse(fields["run_id"].(string))
	assert.NoError(t, err)
}
