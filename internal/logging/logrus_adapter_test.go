package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter_LevelAndFormat(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
		expectJSON  bool
	}{
		{name: "debug text", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info json", level: "info", format: "json", expectLevel: logrus.InfoLevel, expectJSON: true},
		{name: "warn text", level: "warn", format: "text", expectLevel: logrus.WarnLevel},
		{name: "error json", level: "error", format: "json", expectLevel: logrus.ErrorLevel, expectJSON: true},
		{name: "unknown level falls back to info", level: "chatty", format: "text", expectLevel: logrus.InfoLevel},
		{name: "unknown format falls back to text", level: "info", format: "xml", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok)

			assert.Equal(t, tt.expectLevel, adapter.backend.Level)
			if tt.expectJSON {
				assert.IsType(t, &logrus.JSONFormatter{}, adapter.backend.Formatter)
			} else {
				assert.IsType(t, &logrus.TextFormatter{}, adapter.backend.Formatter)
			}
		})
	}
}

func TestLogrusAdapter_FieldsReachOutput(t *testing.T) {
	backend := logrus.New()
	backend.SetLevel(logrus.DebugLevel)
	backend.SetFormatter(&logrus.JSONFormatter{})
	var buf bytes.Buffer
	backend.SetOut(&buf)

	logger := FromLogrus(backend)
	logger.WithField(FieldCategory, "groceries").Info("categorized", F(FieldCount, 2))

	out := buf.String()
	assert.Contains(t, out, `"category":"groceries"`)
	assert.Contains(t, out, `"count":2`)
	assert.Contains(t, out, "categorized")
}

func TestLogrusAdapter_WithErrorChains(t *testing.T) {
	backend := logrus.New()
	backend.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	var buf bytes.Buffer
	backend.SetOut(&buf)

	FromLogrus(backend).WithError(errors.New("boom")).Error("load failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestFromLogrus_NilBackend(t *testing.T) {
	logger := FromLogrus(nil)
	require.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Debug("ok") })
}

func TestNewDefault(t *testing.T) {
	adapter, ok := NewDefault().(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.InfoLevel, adapter.backend.Level)
	assert.NotNil(t, adapter.Underlying())
}
