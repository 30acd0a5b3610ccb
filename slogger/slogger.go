// Package slogger provides structured logging for skillgov. It wraps
// log/slog with a colorized terminal handler and allows the logger to be
// carried on a context so every check and report shares one instance.
package slogger

import (
	"context"
	"strings"
)

// DefaultLogger is used when no logger is found on the context.
var DefaultLogger Logger = NewDevNullLogger()

// DefaultLogLevel is the level used when none is configured.
var DefaultLogLevel = LevelWarn

// Logger defines the logging interface used throughout skillgov.
// It supports structured key-value logging and is designed to be
// compatible with slog and similar libraries.
type Logger interface {
	// Debug logs a message at debug level with optional key-value pairs
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at info level with optional key-value pairs
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at warn level with optional key-value pairs
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at error level with optional key-value pairs
	Error(msg string, keysAndValues ...any)

	// With returns a new Logger with the given key-value pairs added
	With(keysAndValues ...any) Logger
}

type contextKey string

const (
	loggerKey contextKey = "skillgov.logger"
)

// WithLogger returns a new context with the given logger.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// Ctx returns the logger from the given context, falling back to
// DefaultLogger when none is present.
func Ctx(ctx context.Context) Logger {
	if ctx == nil {
		return DefaultLogger
	}
	logger, ok := ctx.Value(loggerKey).(Logger)
	if !ok {
		return DefaultLogger
	}
	return logger
}

// LevelFromString converts a string to a LogLevel.
func LevelFromString(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return DefaultLogLevel
	}
}
