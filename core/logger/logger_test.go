package logger_test

import (
	"testing"

	"support-kit/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		debugOn bool
		infoOn  bool
	}{
		{"Debug", logger.Config{Level: "debug", Format: "console"}, true, true},
		{"Info", logger.Config{Level: "info", Format: "json"}, false, true},
		{"Warn", logger.Config{Level: "warn"}, false, false},
		{"Empty", logger.Config{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, l)

			assert.Equal(t, tt.debugOn, l.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.infoOn, l.Core().Enabled(zapcore.InfoLevel))
		})
	}
}

func TestNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	logger.Named("date").Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "date", entries[0].ContextMap()["component"])
}
