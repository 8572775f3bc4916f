package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextFormatWritesLevelsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "text", "debug")
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=dbg", "a=1",
		"level=INFO", "msg=inf", "b=2",
		"level=WARN", "msg=wrn", "c=3",
		"level=ERROR", "msg=err", "d=4",
	} {
		assert.Contains(t, out, want)
	}
}

func TestNew_LevelFiltersLowerRecords(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "text", "warn")

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_JSONIsDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "", "info")

	log.Info(context.Background(), "hello", "k", "v")

	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "text", "info").With("req_id", "123")

	log.Info(context.Background(), "hello")

	assert.Contains(t, buf.String(), "req_id=123")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	log := Discard()
	log.Info(context.TODO(), "nothing")
	log.With("a", 1).Error(context.TODO(), "still nothing")
}
