// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/lumberjack.v2"
)

// Options selects the level and an optional rotating log file
type Options struct {
	Level string
	File  string
}

// Init installs a JSON slog handler as the default logger.
// Output goes to stdout and, when File is set, to a size-rotated file.
func Init(opts Options) *slog.Logger {
	writers := []io.Writer{os.Stdout}
	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     14,
			LocalTime:  true,
		})
	}

	l := New(io.MultiWriter(writers...), opts.Level)
	slog.SetDefault(l)
	slog.Info("logger initialized", "level", opts.Level, "file", opts.File)
	return l
}

// New builds a JSON logger writing to w
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
