// Package logging wraps log/slog with the level/format parsing
// conventions this project's CLI flags feed into.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format is the log output format.
type Format string

const (
	// FormatJSON emits one JSON object per log line.
	FormatJSON Format = "json"
	// FormatLogfmt emits logfmt-style key=value lines.
	FormatLogfmt Format = "logfmt"
)

var (
	// ErrUnknownLevel indicates an unrecognized --log-level value.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrUnknownFormat indicates an unrecognized --log-format value.
	ErrUnknownFormat = errors.New("unknown log format")
)

// New builds a *slog.Logger from string flag values.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	fmtName, err := GetFormat(format)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-format: %w", err)
	}
	return slog.New(CreateHandler(w, lvl, fmtName)), nil
}

// CreateHandler builds a slog.Handler for the given level and format.
func CreateHandler(w io.Writer, level slog.Level, format Format) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// GetLevel parses a log level string.
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	}
	return 0, ErrUnknownLevel
}

// GetFormat parses a log format string.
func GetFormat(format string) (Format, error) {
	switch Format(strings.ToLower(format)) {
	case "", FormatLogfmt:
		return FormatLogfmt, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", ErrUnknownFormat
}
