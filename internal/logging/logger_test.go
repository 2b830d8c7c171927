package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_ErrorIncludesContextFields(t *testing.T) {
	out := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: "debug", Output: out})

	ctx := log.WithRequestID(context.Background(), "req-123")
	log.Error(ctx, "dashboard", "boom", errors.New("db down"), map[string]any{"view": "stats"})

	assert.Contains(t, out.String(), `"request_id":"req-123"`)
	assert.Contains(t, out.String(), `"module":"dashboard"`)
	assert.Contains(t, out.String(), `"error":"db down"`)

	entries := log.Buffer().Errors()
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0].Message)
	assert.Equal(t, "db down", entries[0].Error)
	assert.Equal(t, "stats", entries[0].Data["view"])
}

func TestLogger_BelowLevelIsNotBuffered(t *testing.T) {
	out := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: "warn", Output: out})

	log.Info(context.Background(), "m", "hidden", nil)
	log.Warn(context.Background(), "m", "shown", nil)

	entries := log.Buffer().Entries("")
	require.Len(t, entries, 1)
	assert.Equal(t, LevelWarn, entries[0].Level)
	assert.NotContains(t, out.String(), "hidden")
}

func TestLogger_BufferSizeOption(t *testing.T) {
	log := New(Options{ServiceName: "test", Output: &bytes.Buffer{}, BufferSize: 2})
	for _, msg := range []string{"a", "b", "c"} {
		log.Info(context.Background(), "m", msg, nil)
	}

	entries := log.Buffer().Entries("")
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Message)
}

func TestLogger_WithOperation(t *testing.T) {
	log := New(Options{ServiceName: "test", Level: "debug", Output: &bytes.Buffer{}})
	boom := errors.New("boom")

	err := log.WithOperation(context.Background(), "orders", "load", func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)

	err = log.WithOperation(context.Background(), "orders", "load", func(context.Context) error { return nil })
	assert.NoError(t, err)

	errs := log.Buffer().Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "load failed", errs[0].Message)
	assert.Equal(t, 4, log.Buffer().Len())
}

func TestLogger_RequestLogsSkipBuffer(t *testing.T) {
	out := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Output: out})

	log.LogRequest(context.Background(), "GET", "/v1/dashboard/stats", 200, 0, nil)

	assert.Contains(t, out.String(), `"uri":"/v1/dashboard/stats"`)
	assert.Equal(t, 0, log.Buffer().Len())
}

func TestParseLevelDefaults(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("invalid"))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(" DEBUG "))
}

func TestLogger_DefaultsToInfo(t *testing.T) {
	log := New(Options{ServiceName: "test", Output: &bytes.Buffer{}})

	log.Debug(context.Background(), "m", "noise", nil)
	assert.Equal(t, 0, log.Buffer().Len())

	log.Info(context.Background(), "m", "kept", nil)
	assert.Equal(t, 1, log.Buffer().Len())

	nop := Nop()
	nop.Debug(context.Background(), "m", "noise", nil)
	assert.Equal(t, 0, nop.Buffer().Len())
}
