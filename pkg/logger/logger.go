// Package logger предоставляет контекстно-зависимый logger на базе zap.
package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment определяет режим работы логгера.
type Environment string

// Поддерживаемые режимы работы.
const (
	Development Environment = "development"
	Production  Environment = "production"
)

// RequestID - имя поля идентификатора запроса в логах.
const RequestID = "request_id"

// Logger оборачивает zap.Logger и принимает контекст в каждом вызове.
type Logger struct {
	l *zap.Logger
}

// NewLogger создает новый logger для указанного окружения и уровня.
func NewLogger(env Environment, level string) (*Logger, error) {
	var cfg zap.Config
	if env == Production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building zap logger: %w", err)
	}

	return &Logger{l: zapLogger}, nil
}

// With возвращает копию логгера с добавленными полями.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{l: l.l.With(fields...)}
}

// WithRequestID создает копию логгера с добавленным полем RequestID.
func (l *Logger) WithRequestID(ctx context.Context) *Logger {
	if id, ok := GetRequestID(ctx); ok {
		return l.With(zap.String(RequestID, id))
	}
	return l
}

// Debug записывает сообщение уровня debug.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Debug(msg, addRequestID(ctx, fields)...)
}

// Info записывает сообщение уровня info.
func (l *Logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Info(msg, addRequestID(ctx, fields)...)
}

// Warn записывает сообщение уровня warn.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Warn(msg, addRequestID(ctx, fields)...)
}

// Error записывает сообщение уровня error.
func (l *Logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Error(msg, addRequestID(ctx, fields)...)
}

// Fatal записывает сообщение уровня fatal и завершает процесс.
func (l *Logger) Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Fatal(msg, addRequestID(ctx, fields)...)
}

// Sync сбрасывает буферизированные записи.
func (l *Logger) Sync() error {
	if err := l.l.Sync(); err != nil {
		return fmt.Errorf("syncing logger: %w", err)
	}
	return nil
}
