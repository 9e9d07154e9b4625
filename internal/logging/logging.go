// Package logging wires log/slog to the configured output, with file
// rotation handled by lumberjack when logging to disk.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/castkeep/castkeep/pkg/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup builds a slog.Logger from the logging config and installs it as the
// process default. The returned closer is non-nil when logging to a file.
func Setup(cfg config.LoggingConfig) (*slog.Logger, io.Closer) {
	var out io.Writer = os.Stdout
	var closer io.Closer

	if strings.EqualFold(cfg.Output, "file") && cfg.FilePath != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		out = rotator
		closer = rotator
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, closer
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
