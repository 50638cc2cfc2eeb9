package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	l, buf := newBufLogger(slog.LevelDebug)
	ctx := context.Background()

	l.Debug(ctx, "d")
	l.Info(ctx, "i")
	l.Warn(ctx, "w")
	l.Error(ctx, "e")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
}

func TestSlogLogger_WithAddsFields(t *testing.T) {
	l, buf := newBufLogger(slog.LevelInfo)

	child := l.With("component", "store")
	require.NotNil(t, child)
	child.Info(context.Background(), "hello")

	assert.Contains(t, buf.String(), "component=store")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewDefault(t *testing.T) {
	require.NotNil(t, NewDefault())
}
