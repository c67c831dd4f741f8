package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pulsecoach/coachkit/internal/config"
)

// Setup initializes the logging system from the provided configuration: a
// JSON handler at the configured level, registered as the process default so
// the slog package functions work directly. An invalid level falls back to
// info with a warning rather than failing startup.
func Setup(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
		tmp := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmp.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}
