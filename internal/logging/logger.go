// Package logging provides the structured logging abstraction used across
// the application. Packages depend on the Logger interface rather than a
// concrete logging framework, which keeps them testable with the in-memory
// mock and leaves the backend swappable.
package logging

// Logger is the structured logger every package accepts.
type Logger interface {
	// Debug logs a debug-level message with optional fields.
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields.
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields.
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields.
	Error(msg string, fields ...Field)

	// WithError returns a logger with an error attached to every entry.
	WithError(err error) Logger

	// WithField returns a logger with one extra field on every entry.
	WithField(key string, value interface{}) Logger

	// WithFields returns a logger with extra fields on every entry.
	WithFields(fields ...Field) Logger

	// Fatal logs at fatal level and exits the program.
	Fatal(msg string, fields ...Field)

	// Fatalf logs a formatted message at fatal level and exits the program.
	Fatalf(format string, args ...interface{})
}

// Field is one key-value pair of log context.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field at a call site.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
