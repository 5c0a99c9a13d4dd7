package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hydroini/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates text logger by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "msg=hello")
	})

	t.Run("json formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("includes command attribute", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatJSON),
			logger.WithCommand("validate"),
			logger.WithAttr(slog.String("version", "dev")),
		)
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "validate", entry["command"])
		assert.Equal(t, "dev", entry["version"])
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithVerbose(true))
		log.Debug("details")
		assert.Contains(t, buf.String(), "details")

		quiet := &bytes.Buffer{}
		log = logger.New(logger.WithOutput(quiet), logger.WithVerbose(false))
		log.Debug("details")
		assert.Empty(t, quiet.String())
	})

	t.Run("adds scope from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithJSONFormatter())

		ctx := logger.ContextWithFile(context.Background(), "flow.ini")
		ctx = logger.ContextWithSection(ctx, "Structure")
		log.With("id", "weir_1").InfoContext(ctx, "validated")

		entry := decode(t, buf)
		assert.Equal(t, "flow.ini", entry["file"])
		assert.Equal(t, "Structure", entry["section"])
		assert.Equal(t, "weir_1", entry["id"])
	})

	t.Run("new file clears section", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithJSONFormatter())

		ctx := logger.ContextWithSection(logger.ContextWithFile(context.Background(), "a.ini"), "Lateral")
		ctx = logger.ContextWithFile(ctx, "b.ini")
		log.InfoContext(ctx, "validated")

		entry := decode(t, buf)
		assert.Equal(t, "b.ini", entry["file"])
		assert.NotContains(t, entry, "section")

		file, ok := logger.FileFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "b.ini", file)
	})

	t.Run("no scope without context values", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithJSONFormatter())
		log.Info("plain")

		entry := decode(t, buf)
		assert.NotContains(t, entry, "file")
		_, ok := logger.FileFromContext(context.Background())
		assert.False(t, ok)
	})
}

func TestSetAsDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithJSONFormatter())
	prev := slog.Default()
	logger.SetAsDefault(log)
	t.Cleanup(func() { slog.SetDefault(prev) })

	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"", slog.LevelInfo, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logger.ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, logger.ErrInvalidLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := logger.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)

	f, err = logger.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatText, f)

	_, err = logger.ParseFormat("xml")
	assert.ErrorIs(t, err, logger.ErrInvalidFormat)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.Discard().Error("dropped")
	})
}
