package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/revenland/revenland/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New(&buf, "WARN"), "programs")

	logger.Info("hidden")
	logger.Warn("shown", "id", "p1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "programs", rec["component"])
	assert.Equal(t, "p1", rec["id"])
}

func TestSetupCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "revenland.log")

	logger, closer, err := Setup(&config.LoggingConfig{File: path, Level: "INFO"})
	require.NoError(t, err)
	logger.Info("starting")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"starting"`)
}
