package log

import (
	"context"
	"log"
	"sync"

	"go.uber.org/zap"
)

// Logger is the logging contract used across modules. The context is
// accepted so call sites stay compatible with trace-aware implementations.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
}

type zapLogger struct {
	base *zap.SugaredLogger
}

var (
	global Logger
	once   sync.Once
)

func SetupLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		log.Fatalf("error setup logger: %v", err)
	}
	return logger
}

func Init(l *zap.Logger) {
	once.Do(func() {
		global = &zapLogger{base: l.Sugar()}
	})
}

func GetLogger() Logger {
	if global == nil {
		Init(SetupLogger())
	}
	return global
}

func (l *zapLogger) Debug(_ context.Context, msg string, fields ...interface{}) {
	l.base.Debugw(msg, normalize(fields)...)
}

func (l *zapLogger) Info(_ context.Context, msg string, fields ...interface{}) {
	l.base.Infow(msg, normalize(fields)...)
}

func (l *zapLogger) Warn(_ context.Context, msg string, fields ...interface{}) {
	l.base.Warnw(msg, normalize(fields)...)
}

func (l *zapLogger) Error(_ context.Context, msg string, fields ...interface{}) {
	l.base.Errorw(msg, normalize(fields)...)
}

// normalize lets call sites pass a single value (usually an error) without
// a key, which zap's sugared logger would otherwise reject.
func normalize(fields []interface{}) []interface{} {
	if len(fields) == 1 {
		return []interface{}{"detail", fields[0]}
	}
	return fields
}
