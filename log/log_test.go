package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a Logger that writes JSON into buf.
func newTestLogger(buf *bytes.Buffer, level slog.Level) *Logger {
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level})
	return NewWithHandler(h)
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "raw: %s", buf.String())
	return entry
}

func TestLogger_ModuleChain(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelDebug)
	l.Module("h2c").With("curve", "bn254").Info("mapped")

	entry := decode(t, &buf)
	assert.Equal(t, "h2c", entry["module"])
	assert.Equal(t, "bn254", entry["curve"])
	assert.Equal(t, "mapped", entry["msg"])
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		level  slog.Level
		logFn  func(l *Logger)
		expect bool
	}{
		{slog.LevelInfo, func(l *Logger) { l.Debug("nope") }, false},
		{slog.LevelInfo, func(l *Logger) { l.Info("yes") }, true},
		{slog.LevelInfo, func(l *Logger) { l.Warn("yes") }, true},
		{slog.LevelInfo, func(l *Logger) { l.Error("yes") }, true},
		{slog.LevelWarn, func(l *Logger) { l.Info("nope") }, false},
		{slog.LevelWarn, func(l *Logger) { l.Warn("yes") }, true},
		{slog.LevelDebug, func(l *Logger) { l.Debug("yes") }, true},
	}

	for i, tt := range tests {
		var buf bytes.Buffer
		l := newTestLogger(&buf, tt.level)
		tt.logFn(l)
		assert.Equal(t, tt.expect, buf.Len() > 0, "test %d: level=%v buf=%s", i, tt.level, buf.String())
	}
}

func TestLogger_WithLevel(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, slog.LevelInfo).Module("h2c")

	quiet := base.WithLevel(slog.LevelWarn)
	quiet.Info("dropped")
	assert.Zero(t, buf.Len())
	assert.False(t, quiet.Enabled(slog.LevelInfo))

	verbose := base.WithLevel(slog.LevelDebug)
	require.True(t, verbose.Enabled(slog.LevelDebug))
	verbose.With("iterations", 3).Debug("root found")

	entry := decode(t, &buf)
	assert.Equal(t, "h2c", entry["module"])
	assert.Equal(t, "DEBUG", entry["level"])
	// slog renders numbers as float64 in JSON.
	assert.Equal(t, float64(3), entry["iterations"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownLevel))
	assert.Contains(t, err.Error(), `"loud"`)
}

func TestDefaultLogger(t *testing.T) {
	require.NotNil(t, Default())

	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelDebug)
	SetDefault(l)
	defer SetDefault(New(slog.LevelInfo))

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")

	out := buf.String()
	for _, msg := range []string{`"d"`, `"i"`, `"w"`, `"e"`} {
		assert.True(t, strings.Contains(out, msg), "missing message %s in output", msg)
	}

	// SetDefault(nil) is a no-op.
	SetDefault(nil)
	assert.Same(t, l, Default())
}
