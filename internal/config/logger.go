package config

import (
	"fmt"
	"io"
	"log/slog"
)

// ParseLevel maps debug|info|warn|error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%s=%q (want debug|info|warn|error): %w", KeyLogLevel, s, ErrInvalidConfig)
	}

	return lvl, nil
}

// NewLogger builds a slog.Logger writing to w with the configured level and
// format.
func NewLogger(w io.Writer, lc LogConfig) (*slog.Logger, error) {
	lvl, err := ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch lc.Format {
	case FormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%s=%q: %w", KeyLogFormat, lc.Format, ErrInvalidConfig)
	}
}
