package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines an interface for swapquote logger.
type Logger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, fields ...zap.Field)

	// Info logs a message at InfoLevel.
	Info(msg string, fields ...zap.Field)

	// Warn logs a message at WarnLevel.
	Warn(msg string, fields ...zap.Field)

	// Error logs a message at ErrorLevel.
	Error(msg string, fields ...zap.Field)
}

type logger struct {
	zap *zap.Logger
}

var _ Logger = &logger{}

// NewLogger creates a new logger.
// If fileName is non-empty, it pipes logs to file and stdout.
// if isProduction is true, uses production configs.
func NewLogger(isProduction bool, fileName string, logLevel string) (Logger, error) {
	var config zap.Config
	if isProduction {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	config.OutputPaths = []string{"stdout"}
	if fileName != "" {
		config.OutputPaths = append(config.OutputPaths, fileName)
	}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &logger{
		zap: zapLogger,
	}, nil
}

// NewNoOpLogger creates a no-op logger for use in tests.
func NewNoOpLogger() Logger {
	return &logger{
		zap: zap.NewNop(),
	}
}

// Debug implements Logger.
func (l *logger) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(msg, fields...)
}

// Info implements Logger.
func (l *logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

// Warn implements Logger.
func (l *logger) Warn(msg string, fields ...zap.Field) {
	l.zap.Warn(msg, fields...)
}

// Error implements Logger.
func (l *logger) Error(msg string, fields ...zap.Field) {
	l.zap.Error(msg, fields...)
}
