package logging

import "fmt"

// MockLogger records entries in memory for assertions in tests. Fatal and
// Fatalf record instead of exiting.
type MockLogger struct {
	Entries []LogEntry

	boundErr    error
	boundFields []Field
}

// LogEntry is one recorded log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.Entries = append(m.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(append([]Field{}, m.boundFields...), fields...),
		Error:   m.boundErr,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("FATAL", msg, fields) }

func (m *MockLogger) Fatalf(format string, args ...interface{}) {
	m.record("FATAL", fmt.Sprintf(format, args...), nil)
}

// WithError returns a view of the mock that stamps err on recorded entries.
// Entries still land in the parent's Entries slice.
func (m *MockLogger) WithError(err error) Logger {
	return &boundMock{parent: m.root(), err: err, fields: m.boundFields}
}

// WithField returns a view with one extra field bound.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a view with extra fields bound.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	return &boundMock{
		parent: m.root(),
		err:    m.boundErr,
		fields: append(append([]Field{}, m.boundFields...), fields...),
	}
}

func (m *MockLogger) root() *MockLogger { return m }

// HasEntry reports whether an entry with the given level and message was
// recorded.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, e := range m.Entries {
		if e.Level == level && e.Message == message {
			return true
		}
	}
	return false
}

// GetEntriesByLevel returns the recorded entries at one level.
func (m *MockLogger) GetEntriesByLevel(level string) []LogEntry {
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Clear drops all recorded entries.
func (m *MockLogger) Clear() {
	m.Entries = nil
}

// boundMock carries fields and an error bound by With* calls while writing
// entries back to the originating MockLogger.
type boundMock struct {
	parent *MockLogger
	err    error
	fields []Field
}

func (b *boundMock) record(level, msg string, fields []Field) {
	b.parent.Entries = append(b.parent.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(append([]Field{}, b.fields...), fields...),
		Error:   b.err,
	})
}

func (b *boundMock) Debug(msg string, fields ...Field) { b.record("DEBUG", msg, fields) }
func (b *boundMock) Info(msg string, fields ...Field)  { b.record("INFO", msg, fields) }
func (b *boundMock) Warn(msg string, fields ...Field)  { b.record("WARN", msg, fields) }
func (b *boundMock) Error(msg string, fields ...Field) { b.record("ERROR", msg, fields) }
func (b *boundMock) Fatal(msg string, fields ...Field) { b.record("FATAL", msg, fields) }

func (b *boundMock) Fatalf(format string, args ...interface{}) {
	b.record("FATAL", fmt.Sprintf(format, args...), nil)
}

func (b *boundMock) WithError(err error) Logger {
	return &boundMock{parent: b.parent, err: err, fields: b.fields}
}

func (b *boundMock) WithField(key string, value interface{}) Logger {
	return b.WithFields(Field{Key: key, Value: value})
}

func (b *boundMock) WithFields(fields ...Field) Logger {
	return &boundMock{
		parent: b.parent,
		err:    b.err,
		fields: append(append([]Field{}, b.fields...), fields...),
	}
}
