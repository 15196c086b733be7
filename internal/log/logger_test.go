package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.Info("info message")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	l.Warn("warn message")
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "warn message")
	buf.Reset()

	l.Error("error message")
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), "error message")
	buf.Reset()

	l.Infof("formatted %s", "message")
	assert.Contains(t, buf.String(), "formatted message")
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	SetDebug(false)
	l.Debug("debug message")
	assert.Empty(t, buf.String())
	buf.Reset()

	SetDebug(true)
	l.Debug("debug message")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "debug message")
	buf.Reset()

	l.Debugf("formatted %s", "debug")
	assert.Contains(t, buf.String(), "formatted debug")

	SetDebug(false)
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.With(F("path", "/tmp/a"), F("count", 3)).Info("scan finished")
	output := buf.String()
	assert.Contains(t, output, "scan finished")
	assert.Contains(t, output, "path=/tmp/a")
	assert.Contains(t, output, "count=3")
}
