// Package log provides structured logging for Filey, backed by logrus.
// Debug output is gated globally so interactive sessions stay quiet unless
// --debug is passed.
package log

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var (
	isDebug atomic.Bool
	std     = NewLogger()
)

// Field is a single structured logging field.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field for use with With and LogWithFields.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus logger.
type Logger struct {
	l *logrus.Logger
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput redirects the logger's output, mainly for tests.
func WithOutput(w io.Writer) Option {
	return func(lg *Logger) {
		lg.l.SetOutput(w)
	}
}

// NewLogger creates a logger writing to stderr.
func NewLogger(opts ...Option) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:          true,
		FullTimestamp:          true,
		TimestampFormat:        "2006-01-02 15:04:05",
		DisableLevelTruncation: true,
	})

	lg := &Logger{l: l}
	for _, opt := range opts {
		opt(lg)
	}
	return lg
}

// SetDebug toggles debug logging for all loggers.
func SetDebug(debug bool) {
	isDebug.Store(debug)
}

// SetOutput redirects the package-level logger.
func SetOutput(w io.Writer) {
	std.l.SetOutput(w)
}

func (lg *Logger) Info(args ...interface{})  { lg.l.Info(args...) }
func (lg *Logger) Warn(args ...interface{})  { lg.l.Warn(args...) }
func (lg *Logger) Error(args ...interface{}) { lg.l.Error(args...) }

func (lg *Logger) Infof(format string, args ...interface{})  { lg.l.Infof(format, args...) }
func (lg *Logger) Warnf(format string, args ...interface{})  { lg.l.Warnf(format, args...) }
func (lg *Logger) Errorf(format string, args ...interface{}) { lg.l.Errorf(format, args...) }

// Debug logs only when debug mode is on.
func (lg *Logger) Debug(args ...interface{}) {
	if isDebug.Load() {
		lg.l.Debug(args...)
	}
}

// Debugf logs a formatted message only when debug mode is on.
func (lg *Logger) Debugf(format string, args ...interface{}) {
	if isDebug.Load() {
		lg.l.Debugf(format, args...)
	}
}

// With attaches structured fields to the next logging call.
func (lg *Logger) With(fields ...Field) *logrus.Entry {
	return lg.l.WithFields(toLogrus(fields))
}

func toLogrus(fields []Field) logrus.Fields {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return lf
}

// Package-level helpers delegating to the default logger.

func Info(args ...interface{})                  { std.Info(args...) }
func Warn(args ...interface{})                  { std.Warn(args...) }
func Error(args ...interface{})                 { std.Error(args...) }
func Infof(format string, args ...interface{})  { std.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { std.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }
func Debug(args ...interface{})                 { std.Debug(args...) }
func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }

// LogWithFields attaches fields to the default logger.
func LogWithFields(fields ...Field) *logrus.Entry {
	return std.With(fields...)
}
