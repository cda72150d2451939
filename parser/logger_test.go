package parser

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Debug("debug", "k", "v")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")
	assert.Equal(t, NopLogger{}, l.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogAdapter(slog.New(handler)).With("component", "parser")

	l.Debug("resolved reference", "ref", "#/components/schemas/Pet")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "resolved reference", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "parser", entry["component"])
	assert.Equal(t, "#/components/schemas/Pet", entry["ref"])
}

func TestNewSlogAdapterNil(t *testing.T) {
	assert.NotNil(t, NewSlogAdapter(nil).logger)
}

func TestZerologAdapter(t *testing.T) {
	tests := []struct {
		name  string
		log   func(Logger)
		level string
	}{
		{"debug", func(l Logger) { l.Debug("hello", "count", 3) }, "debug"},
		{"info", func(l Logger) { l.Info("hello", "count", 3) }, "info"},
		{"warn", func(l Logger) { l.Warn("hello", "count", 3) }, "warn"},
		{"error", func(l Logger) { l.Error("hello", "count", 3) }, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel)).With("source", "spec.json")
			tt.log(l)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "hello", entry["message"])
			assert.Equal(t, "spec.json", entry["source"])
			assert.EqualValues(t, 3, entry["count"])
		})
	}
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel))
	l.Debug("dropped")
	assert.Zero(t, buf.Len())

	l.Info("kept", "dangling")
	assert.Contains(t, buf.String(), `"message":"kept"`)
	assert.NotContains(t, buf.String(), "dangling")
}
