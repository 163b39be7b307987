// Package log configures structured logging for the command line tools.
//
// Output goes through log/slog. The handler is picked with --log-fmt:
// "text" (colourised, for terminals, via tint), "json" or "logfmt".
package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
)

// Flags holds the values of the logging flags.
type Flags struct {
	Format string
	Level  string
}

// RegisterFlags installs log flags on the given FlagSet.
func RegisterFlags(fs *pflag.FlagSet, f *Flags) {
	fs.StringVar(&f.Format, "log-fmt", "text", "format for log output: text, json or logfmt")
	fs.StringVar(&f.Level, "log-level", "warn", "minimum log level: debug, info, warn or error")
}

// New builds a logger writing to w according to f.
func New(w io.Writer, f Flags) (*slog.Logger, error) {
	level, err := parseLevel(f.Level)
	if err != nil {
		return nil, err
	}
	handler, err := newHandler(w, f.Format, level)
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}

// Init builds a logger from f and installs it as the slog default.
func Init(w io.Writer, f Flags) (*slog.Logger, error) {
	logger, err := New(w, f)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

// parseLevel maps the log-level flag value to a slog.Level.
func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", level)
	}
}

// newHandler returns a slog.Handler for the given format.
func newHandler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}), nil
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case "logfmt":
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}), nil
	default:
		return nil, fmt.Errorf("invalid log-fmt %q: expected text, json or logfmt", format)
	}
}
