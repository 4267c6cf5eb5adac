package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWithWriter_JSON(t *testing.T) {
	// ARRANGE
	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig("info", "JSON", "outfitter", "1.4.0", "staging", false), &buf)

	// ACT
	Info("item bought", "item_code", 3, "character", "Ada")

	// ASSERT
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "outfitter", entry["service"])
	assert.Equal(t, "1.4.0", entry["version"])
	assert.Equal(t, "staging", entry["environment"])
	assert.Equal(t, "item bought", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, float64(3), entry["item_code"])
	assert.Equal(t, "Ada", entry["character"])
}

func TestInitLoggerWithWriter_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "warn", Format: "text", ServiceName: "outfitter"}, &buf)

	Info("hidden")
	Error("shown", "character_id", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "character_id=7")
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Level: tt.level}.LogLevel())
		})
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")

	assert.Equal(t, "req-42", GetRequestID(ctx))
	id, ok := RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-42", id)
	assert.NotNil(t, FromContext(ctx))
}

func TestFromContext_WithoutRequestID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetRequestID(ctx))
	_, ok := RequestIDFromContext(ctx)
	assert.False(t, ok)
	assert.NotNil(t, FromContext(ctx))
}

func TestGenerateRequestID_Unique(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
