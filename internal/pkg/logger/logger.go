package logger

import (
	"os"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}

type zapLogger struct {
	logger *zap.Logger
}

var (
	loggerInstance *zapLogger
	once           sync.Once
)

// New creates a new singleton instance of the zap-backed logger.
// The LOG_LEVEL environment variable selects the minimum level (default info).
func New() Logger {
	once.Do(func() {
		level := zapcore.InfoLevel
		switch os.Getenv("LOG_LEVEL") {
		case "debug":
			level = zapcore.DebugLevel
		case "warn":
			level = zapcore.WarnLevel
		case "error":
			level = zapcore.ErrorLevel
		}

		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		l, err := cfg.Build(zap.AddCallerSkip(1))
		if err != nil {
			// Fall back to a no-op logger rather than failing startup
			l = zap.NewNop()
		}
		loggerInstance = &zapLogger{logger: l}
	})
	return loggerInstance
}

// NewTest creates a Logger that writes through testing.T.
func NewTest(t testing.TB) Logger {
	return &zapLogger{logger: zaptest.NewLogger(t)}
}

// NewNop creates a Logger that discards everything (useful for tests).
func NewNop() Logger {
	return &zapLogger{logger: zap.NewNop()}
}

// Error logs an error message with the error attached as a field.
func (l *zapLogger) Error(msg string, err error) {
	l.logger.Error(msg, zap.Error(err))
}

// Warn logs a warning message.
func (l *zapLogger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Info logs an informational message.
func (l *zapLogger) Info(msg string) {
	l.logger.Info(msg)
}

// Debug logs a debug message.
func (l *zapLogger) Debug(msg string) {
	l.logger.Debug(msg)
}
