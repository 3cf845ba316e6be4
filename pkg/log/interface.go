// Package log provides a structured logging interface for mdlp.
//
// The interface is slog-compatible so that callers can plug in log/slog,
// zerolog or a test recorder without touching the discretization code.
// The default implementation is backed by zerolog (see zerolog.go).
//
// Example usage:
//
//	logger := log.GetLoggerWithName("discretize").With(
//	    log.AttributeKey, 3,
//	)
//	logger.Debug("split accepted",
//	    log.CutKey, 12.5,
//	    log.GainKey, 0.41,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Every method takes a message and an optional list of alternating
// key/value fields. With returns a child logger carrying pre-populated
// fields.
type Logger interface {
	// Debug logs detailed diagnostic information, such as every split
	// decision taken while building a partition tree.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	//
	// Example:
	//   logger.Info("discretizer fitted",
	//       log.SamplesKey, 1000,
	//       log.IntervalsKey, 4,
	//   )
	Info(msg string, fields ...any)

	// Warn logs potentially problematic situations that do not stop the
	// operation.
	Warn(msg string, fields ...any)

	// Error logs error conditions. An error value passed under
	// ErrAttrKey is rendered with its stack details where the backend
	// supports it.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to skip building expensive fields:
	//
	//   if logger.Enabled(ctx, LevelDebug) {
	//       logger.Debug("blocks", log.BlocksKey, describe(blocks))
	//   }
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers. The package-level
// GetLogger and GetLoggerWithName delegate to the installed provider.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any) {}
func (nopLogger) Warn(string, ...any) {}
func (nopLogger) Error(string, ...any) {}
func (n nopLogger) With(...any) Logger { return n }
func (nopLogger) Enabled(context.Context, Level) bool { return false }

// NewNopLogger returns a Logger that drops every record.
func NewNopLogger() Logger {
	return nopLogger{}
}
