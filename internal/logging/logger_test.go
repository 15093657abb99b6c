package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Makepad-fr/travellog/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "travellog.log")

	logger, err := New(config.LogConfig{Level: "info", File: path}, false)
	require.NoError(t, err)
	logger.Info("checklist saved")
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "checklist saved")
	assert.NotContains(t, string(b), "hidden at info level")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "chatty"}, false)
	assert.ErrorContains(t, err, "log level")
}

func TestVerboseForcesDebug(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "error"}, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestForTUIWithoutFileIsNop(t *testing.T) {
	logger, err := ForTUI(config.LogConfig{Level: "debug"}, true)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
