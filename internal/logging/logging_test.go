package logging

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/castkeep/castkeep/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), "level %q", tt.input)
	}
}

func TestSetupStdout(t *testing.T) {
	logger, closer := Setup(config.LoggingConfig{Level: "info", Format: "json", Output: "stdout"})
	require.NotNil(t, logger)
	assert.Nil(t, closer)
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "castkeep.log")
	logger, closer := Setup(config.LoggingConfig{
		Level:    "debug",
		Format:   "text",
		Output:   "file",
		FilePath: path,
		MaxSize:  1,
	})
	require.NotNil(t, logger)
	require.NotNil(t, closer)

	logger.Info("rotation target configured", "path", path)
	assert.NoError(t, closer.Close())
}
