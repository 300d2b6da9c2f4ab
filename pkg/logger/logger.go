package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects the handler used by New.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// New constructs a slog logger. Output defaults to stderr so stdout stays free for menus.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}
	return slog.New(handler).With("service", "unicafe")
}

// ParseLevel maps a config string onto a slog level, defaulting to warn.
func ParseLevel(level string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
