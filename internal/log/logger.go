// Package log wraps logrus behind a small fielded-logging facade.
// Output goes to stderr so interactive views on stdout stay intact.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var std = newBackend()

// Field is one structured key/value pair attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field; shorthand for call sites.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logging is the interface handed to components that log with context.
type Logging interface {
	With(fields ...Field) Logging
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

// Logger implements Logging on top of a logrus entry.
type Logger struct {
	entry *logrus.Entry
}

func newBackend() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// NewLogger returns a Logger writing to the shared backend.
func NewLogger() *Logger {
	return &Logger{entry: logrus.NewEntry(std)}
}

// SetDebug switches debug-level output on or off.
func SetDebug(debug bool) {
	if debug {
		std.SetLevel(logrus.DebugLevel)
	} else {
		std.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects all log output, mainly for tests.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func toLogrus(fields []Field) logrus.Fields {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return lf
}

// With returns a Logger carrying the given fields on every line.
func (l *Logger) With(fields ...Field) Logging {
	return &Logger{entry: l.entry.WithFields(toLogrus(fields))}
}

func (l *Logger) Debug(args ...interface{}) { l.entry.Debug(args...) }

func (l *Logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }

func (l *Logger) Info(args ...interface{}) { l.entry.Info(args...) }

func (l *Logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }

func (l *Logger) Warn(args ...interface{}) { l.entry.Warn(args...) }

func (l *Logger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }

func (l *Logger) Error(args ...interface{}) { l.entry.Error(args...) }

func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// LogWithFields starts a log line with structured fields attached.
func LogWithFields(fields ...Field) Logging {
	return NewLogger().With(fields...)
}

// Package-level helpers for call sites without context to carry.

func Debug(args ...interface{}) { std.Debug(args...) }

func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }

func Info(args ...interface{}) { std.Info(args...) }

func Infof(format string, args ...interface{}) { std.Infof(format, args...) }

func Warn(args ...interface{}) { std.Warn(args...) }

func Warnf(format string, args ...interface{}) { std.Warnf(format, args...) }

func Error(args ...interface{}) { std.Error(args...) }

func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }
