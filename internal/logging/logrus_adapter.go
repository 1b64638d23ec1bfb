package logging

import (
	"github.com/sirupsen/logrus"
)

// LogrusAdapter implements Logger on top of logrus. The zero value is not
// usable; construct one with NewLogrusAdapter, NewDefault or FromLogrus.
type LogrusAdapter struct {
	backend *logrus.Logger
	entry   *logrus.Entry
}

// NewLogrusAdapter builds a Logger writing at the given level ("debug",
// "info", "warn", "error") and format ("text" or "json"). An unknown level
// falls back to info, an unknown format to text.
func NewLogrusAdapter(level, format string) Logger {
	backend := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	backend.SetLevel(parsed)

	if format == "json" {
		backend.SetFormatter(&logrus.JSONFormatter{})
	} else {
		backend.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return FromLogrus(backend)
}

// NewDefault returns a Logger with the out-of-the-box settings: info level,
// text format.
func NewDefault() Logger {
	return NewLogrusAdapter("info", "text")
}

// FromLogrus wraps an already configured logrus logger. A nil argument gets
// a fresh logger so the adapter is always safe to call.
func FromLogrus(backend *logrus.Logger) Logger {
	if backend == nil {
		backend = logrus.New()
	}
	return &LogrusAdapter{
		backend: backend,
		entry:   logrus.NewEntry(backend),
	}
}

// Underlying exposes the wrapped logrus logger for code that configures the
// backend directly, such as command setup.
func (l *LogrusAdapter) Underlying() *logrus.Logger {
	return l.backend
}

func (l *LogrusAdapter) Debug(msg string, fields ...Field) {
	l.entry.WithFields(toLogrusFields(fields)).Debug(msg)
}

func (l *LogrusAdapter) Info(msg string, fields ...Field) {
	l.entry.WithFields(toLogrusFields(fields)).Info(msg)
}

func (l *LogrusAdapter) Warn(msg string, fields ...Field) {
	l.entry.WithFields(toLogrusFields(fields)).Warn(msg)
}

func (l *LogrusAdapter) Error(msg string, fields ...Field) {
	l.entry.WithFields(toLogrusFields(fields)).Error(msg)
}

func (l *LogrusAdapter) WithError(err error) Logger {
	return &LogrusAdapter{backend: l.backend, entry: l.entry.WithError(err)}
}

func (l *LogrusAdapter) WithField(key string, value interface{}) Logger {
	return &LogrusAdapter{backend: l.backend, entry: l.entry.WithField(key, value)}
}

func (l *LogrusAdapter) WithFields(fields ...Field) Logger {
	return &LogrusAdapter{backend: l.backend, entry: l.entry.WithFields(toLogrusFields(fields))}
}

func (l *LogrusAdapter) Fatal(msg string, fields ...Field) {
	l.entry.WithFields(toLogrusFields(fields)).Fatal(msg)
}

func (l *LogrusAdapter) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}

func toLogrusFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
