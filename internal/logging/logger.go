// Package logging wraps zap for the scribe CLI.
package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap logger
type Logger struct {
	*zap.Logger
}

// NewLogger builds a production logger at the given level
func NewLogger(level string) (*Logger, error) {
	config := zap.NewProductionConfig()

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{logger}, nil
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return &Logger{zap.NewNop()}
}

// ForOperation returns a logger tagged with the operation name and a fresh
// operation id, so all lines from one CLI invocation correlate
func (l *Logger) ForOperation(name string) *zap.Logger {
	return l.With(
		zap.String("operation", name),
		zap.String("operation_id", uuid.NewString()),
	)
}
