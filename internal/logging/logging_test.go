package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", FormatJSON)

	logger.Debug("hidden")
	logger.Info("loaded rules", "rules", 13)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded rules", entry["msg"])
	assert.Equal(t, float64(13), entry["rules"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", FormatText)

	logger.Info("hidden")
	logger.Warn("cycle detected", "container", "shiny gold")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "cycle detected")
	assert.Contains(t, buf.String(), "shiny gold")
}

func TestNop(t *testing.T) {
	logger := Nop()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
