// Package slogger provides structured logging for snouty. Log output goes
// to stderr so that stdout stays reserved for API response bodies.
package slogger

import "strings"

// DefaultLogger is the default logger for the application.
var DefaultLogger = NewDevNullLogger()

// Logger is the logging interface used throughout snouty. It supports
// structured logging and is designed to be compatible with common logging
// libraries like zerolog and slog.
type Logger interface {
	// Debug logs a message at debug level with optional key-value pairs
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at info level with optional key-value pairs
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at warn level with optional key-value pairs
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at error level with optional key-value pairs
	Error(msg string, keysAndValues ...any)

	// With returns a new Logger instance with the given key-value pairs added to the context
	With(keysAndValues ...any) Logger
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

// DevNullLogger implements the Logger interface but does nothing.
type DevNullLogger struct{}

// NewDevNullLogger returns a new DevNullLogger instance
func NewDevNullLogger() *DevNullLogger {
	return &DevNullLogger{}
}

func (l *DevNullLogger) Debug(msg string, keysAndValues ...any) {}
func (l *DevNullLogger) Info(msg string, keysAndValues ...any)  {}
func (l *DevNullLogger) Warn(msg string, keysAndValues ...any)  {}
func (l *DevNullLogger) Error(msg string, keysAndValues ...any) {}
func (l *DevNullLogger) With(keysAndValues ...any) Logger       { return l }
