package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

type Format string

const (
	FormatText Format = "TEXT"
	FormatJSON Format = "JSON"
)

// New builds the console logger: tint-colored text by default, JSON when asked for.
func New(w io.Writer, level slog.Level, format Format) *slog.Logger {
	if strings.EqualFold(string(format), string(FormatJSON)) {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	}))
}

// LevelFromString parses "DEBUG", "INFO", "WARN"/"WARNING" or "ERROR", default: INFO.
func LevelFromString(str string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(str)) {
	case slog.LevelDebug.String():
		return slog.LevelDebug
	case slog.LevelWarn.String(), "WARNING":
		return slog.LevelWarn
	case slog.LevelError.String():
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func FormatFromString(str string) Format {
	if strings.EqualFold(strings.TrimSpace(str), string(FormatJSON)) {
		return FormatJSON
	}
	return FormatText
}
