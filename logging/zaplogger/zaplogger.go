// Package zaplogger adapts a go.uber.org/zap logger to logging.Logger.
package zaplogger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/awslabs/record-go/logging"
)

type contextFieldsKey struct{}

// Logger emits record log entries through a zap.SugaredLogger.
type Logger struct {
	sugar *zap.SugaredLogger
}

var (
	_ logging.Logger        = (*Logger)(nil)
	_ logging.ContextLogger = (*Logger)(nil)
)

// New wraps l.
func New(l *zap.Logger) *Logger {
	return &Logger{sugar: l.Sugar()}
}

// Logf logs a formatted entry. Warn maps to zap's warn level, every other
// classification to debug.
func (l *Logger) Logf(level logging.Classification, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	switch level {
	case logging.Warn:
		l.sugar.Warn(msg)
	default:
		l.sugar.Debug(msg)
	}
}

// WithContext returns a logger carrying the key/value pairs stored on ctx by
// ContextWithFields.
func (l *Logger) WithContext(ctx context.Context) logging.Logger {
	fields, ok := ctx.Value(contextFieldsKey{}).([]interface{})
	if !ok || len(fields) == 0 {
		return l
	}
	return &Logger{sugar: l.sugar.With(fields...)}
}

// ContextWithFields returns a context whose loggers are annotated with the
// given alternating key/value pairs.
func ContextWithFields(ctx context.Context, keysAndValues ...interface{}) context.Context {
	prev, _ := ctx.Value(contextFieldsKey{}).([]interface{})
	fields := make([]interface{}, 0, len(prev)+len(keysAndValues))
	fields = append(fields, prev...)
	fields = append(fields, keysAndValues...)
	return context.WithValue(ctx, contextFieldsKey{}, fields)
}
