// Package logruslogger adapts a github.com/sirupsen/logrus logger to
// logging.Logger.
package logruslogger

import (
	"github.com/sirupsen/logrus"

	"github.com/awslabs/record-go/logging"
)

// Logger emits record log entries through a logrus entry.
type Logger struct {
	entry *logrus.Entry
}

var _ logging.Logger = (*Logger)(nil)

// New wraps l. Entries carry a component=record field.
func New(l *logrus.Logger) *Logger {
	return &Logger{entry: l.WithField("component", "record")}
}

// WithFields returns a logger that adds fields to every entry.
func (l *Logger) WithFields(fields logrus.Fields) *Logger {
	return &Logger{entry: l.entry.WithFields(fields)}
}

// Logf logs a formatted entry at the logrus level matching level.
func (l *Logger) Logf(level logging.Classification, format string, v ...interface{}) {
	switch level {
	case logging.Warn:
		l.entry.Warnf(format, v...)
	default:
		l.entry.Debugf(format, v...)
	}
}
