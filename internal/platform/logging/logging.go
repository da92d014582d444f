package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config captures logging configuration options.
type Config struct {
	Level   string
	Format  string
	Service string
}

// Logger wraps slog with service-scoped attributes.
type Logger struct {
	slogger *slog.Logger
}

// New creates a Logger writing to stdout using the configured level and format.
func New(cfg Config) *Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter is the injectable variant used by tests.
func NewWithWriter(cfg Config, w io.Writer) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slogger := slog.New(handler)
	if cfg.Service != "" {
		slogger = slogger.With(slog.String("service", cfg.Service))
	}
	return &Logger{slogger: slogger}
}

// Slog exposes the structured logger.
func (l *Logger) Slog() *slog.Logger {
	if l == nil || l.slogger == nil {
		return slog.Default()
	}
	return l.slogger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
