package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newZerologTestLogger(t *testing.T) (*ZerologLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	zl := zerolog.New(&buf).Level(zerolog.DebugLevel)
	return NewZerologLogger(zl), &buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var m map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &m))
	return m
}

func TestZerologLogger_LevelsAndFields(t *testing.T) {
	log, buf := newZerologTestLogger(t)
	ctx := context.Background()

	log.Info(ctx, "hello", "count", 3)
	m := lastLine(t, buf)
	assert.Equal(t, "info", m["level"])
	assert.Equal(t, "hello", m["message"])
	assert.Equal(t, float64(3), m["count"])

	log.Warn(ctx, "careful", "reason", "x")
	m = lastLine(t, buf)
	assert.Equal(t, "warn", m["level"])
	assert.Equal(t, "x", m["reason"])

	log.Error(ctx, "boom")
	m = lastLine(t, buf)
	assert.Equal(t, "error", m["level"])
}

func TestZerologLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newZerologTestLogger(t)
	child := log.With("component", "gateway")

	child.Info(context.Background(), "request done")
	m := lastLine(t, buf)
	assert.Equal(t, "gateway", m["component"])
	assert.Equal(t, "request done", m["message"])
}

func TestPairs(t *testing.T) {
	m := pairs([]any{"a", 1, "b", "two"})
	assert.Equal(t, map[string]any{"a": 1, "b": "two"}, m)

	// trailing key without a value is kept
	m = pairs([]any{"a", 1, "orphan"})
	assert.Equal(t, map[string]any{"a": 1, "orphan": nil}, m)

	// non-string key is stringified, not dropped
	m = pairs([]any{42, "v"})
	assert.Equal(t, map[string]any{"42": "v"}, m)
}
