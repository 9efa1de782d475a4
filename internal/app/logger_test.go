package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peetscott/edict2-browser/internal/config"
)

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, config.LogConfig{Level: "info", Format: "json"})
	logger.Info("test message", slog.Int("records", 3))

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m), "JSON handler should produce valid JSON")
	assert.Equal(t, "test message", m["msg"])
	assert.EqualValues(t, 3, m["records"])
	_, hasSource := m["source"]
	assert.False(t, hasSource, "json format should not include source")
}

func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, config.LogConfig{Level: "debug", Format: "text"})
	logger.Debug("source test")

	assert.Contains(t, buf.String(), "source=")
	assert.Contains(t, buf.String(), "source test")
}

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(io.Discard, config.LogConfig{Level: "info", Format: "json"})
	assert.Equal(t, logger.Handler(), slog.Default().Handler())
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		wantSlog slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{" error ", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+strings.TrimSpace(tt.level), func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(newHandler(&buf, config.LogConfig{Level: tt.level, Format: "text"}))

			logger.Log(context.TODO(), tt.wantSlog, "should appear")
			assert.NotZero(t, buf.Len(), "expected log output at level %v", tt.wantSlog)

			buf.Reset()
			logger.Log(context.TODO(), tt.wantSlog-1, "should be suppressed")
			assert.Zero(t, buf.Len(), "level %v should suppress %v", tt.wantSlog, tt.wantSlog-1)
		})
	}
}

func TestBuildVersion(t *testing.T) {
	assert.True(t, strings.HasPrefix(BuildVersion(), "dev"), BuildVersion())

	saved := Commit
	t.Cleanup(func() { Commit = saved })
	Commit = "abc123"
	assert.Equal(t, "dev (abc123)", BuildVersion())
}
