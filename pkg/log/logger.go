package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// ParseLevel converts "debug", "info", "warn" or "error" into a Level.
func ParseLevel(level string) (Level, error) {
	switch level {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %q", level)
	}
}

// NewCloudHandler returns a slog JSON handler in the Cloud Logging layout
// (severity/message/sourceLocation), wrapped by ErrFmtHandler.
func NewCloudHandler(w io.Writer, level Level) slog.Handler {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     slog.Level(level),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{Key: "severity", Value: attr.Value}
			case slog.MessageKey:
				attr = slog.Attr{Key: "message", Value: attr.Value}
			case slog.SourceKey:
				attr = slog.Attr{Key: "logging.googleapis.com/sourceLocation", Value: attr.Value}
			}
			return attr
		},
	}
	return WrapByErrFmtHandler(slog.NewJSONHandler(w, &ops))
}

// SetupLogger installs the Cloud Logging slog handler as both the slog
// default and the package provider.
func SetupLogger(w io.Writer, level Level) {
	logger := slog.New(NewCloudHandler(w, level))
	slog.SetDefault(logger)
	SetProvider(NewSlogProvider(logger))
}

// slogLogger adapts *slog.Logger to Logger.
type slogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps a *slog.Logger.
func NewSlogLogger(logger *slog.Logger) Logger {
	return &slogLogger{logger: logger}
}

func (l *slogLogger) Debug(msg string, fields ...any) { l.logger.Debug(msg, fields...) }
func (l *slogLogger) Info(msg string, fields ...any)  { l.logger.Info(msg, fields...) }
func (l *slogLogger) Warn(msg string, fields ...any)  { l.logger.Warn(msg, fields...) }
func (l *slogLogger) Error(msg string, fields ...any) { l.logger.Error(msg, fields...) }

func (l *slogLogger) With(fields ...any) Logger {
	return &slogLogger{logger: l.logger.With(fields...)}
}

func (l *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return l.logger.Enabled(ctx, slog.Level(level))
}

// slogProvider hands out slog-backed loggers.
type slogProvider struct {
	logger *slog.Logger
}

// NewSlogProvider returns a LoggerProvider backed by logger. SetLevel is
// a no-op because the level lives in the slog handler.
func NewSlogProvider(logger *slog.Logger) LoggerProvider {
	return &slogProvider{logger: logger}
}

func (p *slogProvider) GetLogger() Logger {
	return NewSlogLogger(p.logger)
}

func (p *slogProvider) GetLoggerWithName(name string) Logger {
	return NewSlogLogger(p.logger.With(ComponentKey, name))
}

func (p *slogProvider) SetLevel(Level) {}
