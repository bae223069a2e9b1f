// Package logger provides context-aware structured logging on zap.
//
// The sign-up TUI owns the terminal, so logs are written to a file. Until
// Setup is called (or when no file is configured) logging is a no-op.
package logger

import (
	"context"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment logs at debug level in console format.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment logs at info level as JSON.
	ProductionEnvironment = "production"
)

var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Setup initializes the default logger for the environment, writing to path.
// An empty path keeps the no-op logger. level overrides the environment's
// default level when non-empty.
func Setup(environment, path, level string) error {
	if path == "" {
		defaultLogger = zap.NewNop()
		return nil
	}

	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return errors.Wrapf(err, "parse log level %q", level)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	l, err := cfg.Build()
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	defaultLogger = l
	return nil
}

// Sync flushes the default logger.
func Sync() error {
	return defaultLogger.Sync()
}

type key struct{}

// Get returns the logger stored in ctx, or the default logger.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}
	return defaultLogger
}

// WithLogger returns a context carrying l.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields returns a context whose logger carries the given fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Debug logs at debug level.
func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

// Info logs at info level.
func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs at warn level.
func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs at error level.
func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}
