// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logger configures the process-wide slog logger.

# Setup

Init installs a JSON handler as slog's default and returns it:

	logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})

Output always goes to stdout. When File is set it is also written to a
lumberjack rotating file (50 MB per file, 3 backups, 14 days).

# Levels

ParseLevel maps "debug", "info", "warn" and "error" (any case) to slog
levels. Anything else is info.

# Tests

New builds a logger over any writer, so tests can capture output:

	var buf bytes.Buffer
	l := logger.New(&buf, "debug")
*/
package logger
