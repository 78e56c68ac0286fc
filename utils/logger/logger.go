package logger

import (
	"context"

	utilsContext "github.com/browbeat/event-marketplace/utils/context"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	// wrapperLogger skips one frame so the package-level helpers report
	// their caller rather than this file.
	wrapperLogger *zap.Logger
)

// Init initializes the global Zap logger. Production uses the JSON encoder,
// every other environment gets the colored console encoder.
func Init(environment string) error {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := config.Build()
	if err != nil {
		return err
	}
	Set(l.With(zap.String("service", "event-marketplace")))

	return nil
}

// Set replaces the global logger, mainly so tests can install zap.NewNop().
func Set(l *zap.Logger) {
	globalLogger = l
	wrapperLogger = l.WithOptions(zap.AddCallerSkip(1))
}

// Get returns the global logger
func Get() *zap.Logger {
	if globalLogger == nil {
		l, _ := zap.NewProduction()
		Set(l)
	}
	return globalLogger
}

func wrapped() *zap.Logger {
	Get()
	return wrapperLogger
}

// FromContext returns the global logger tagged with the request id carried
// by ctx, if any.
func FromContext(ctx context.Context) *zap.Logger {
	l := Get()
	if id := utilsContext.GetRequestID(ctx); id != "" {
		l = l.With(zap.String("request_id", id))
	}
	return l
}

// Close flushes the logger
func Close() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

func Info(msg string, fields ...zap.Field) {
	wrapped().Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	wrapped().Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	wrapped().Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	wrapped().Warn(msg, fields...)
}

// Fatal logs at fatal level and exits
func Fatal(msg string, fields ...zap.Field) {
	wrapped().Fatal(msg, fields...)
}
