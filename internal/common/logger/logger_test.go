package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"info", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLevel(tt.in), tt.in)
	}
}

func TestZapAdapter_FieldsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core))

	log.WithFields(map[string]interface{}{"taskType": "compose-rejection-email"}).
		WithError(errors.New("boom")).
		Warn("job failed", map[string]interface{}{"jobKey": int64(42)})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, "job failed", entries[0].Message)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, "compose-rejection-email", ctx["taskType"])
		assert.Equal(t, "boom", ctx["error"])
		assert.Equal(t, int64(42), ctx["jobKey"])
	}
}

func TestZapAdapter_LevelFiltering(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewZapAdapter(zap.New(core)).With(map[string]interface{}{"component": "cli"})

	log.Debug("hidden", nil)
	log.Info("shown", nil)
	log.Error("shown too", nil)

	assert.Equal(t, 2, logs.Len())
}

func TestConstructors(t *testing.T) {
	assert.NotNil(t, NewNoOpLogger())
	assert.NotNil(t, NewTestLogger(t))
	assert.NotNil(t, NewStructured("debug", "console"))
	assert.NotNil(t, NewWithOutput("info", "json", "stderr"))
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZapAdapter(NewWithWriter("warn", "json", &buf))

	log.Info("dropped", nil)
	log.Warn("kept", map[string]interface{}{"reasonTag": "too_conceptual"})

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"reasonTag":"too_conceptual"`)
}
