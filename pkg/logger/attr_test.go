package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hydroini/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("section", slog.String("header", "Lateral"), slog.Int("line", 12))
	require.Equal(t, "section", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "header", g[0].Key)
	assert.Equal(t, "line", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
		want any
	}{
		{logger.RecordType("Weir"), "record_type", "Weir"},
		{logger.Section("Structure"), "section", "Structure"},
		{logger.Field("crestLevel"), "field", "crestLevel"},
		{logger.Rule("location"), "rule", "location"},
		{logger.Violations(3), "violations", int64(3)},
		{logger.File("model/structures.ini"), "file", "model/structures.ini"},
		{logger.Component("watcher"), "component", "watcher"},
		{logger.Duration(time.Second), "duration", time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}
