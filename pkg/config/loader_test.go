package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hydroini/pkg/config"
)

type defaultsConfig struct {
	Level    string        `env:"HYDROINI_DEFAULTS_LEVEL" envDefault:"info"`
	Debounce time.Duration `env:"HYDROINI_DEFAULTS_DEBOUNCE" envDefault:"200ms"`
	NoColor  bool          `env:"HYDROINI_DEFAULTS_NO_COLOR" envDefault:"false"`
}

type successConfig struct {
	Level    string        `env:"HYDROINI_SUCCESS_LEVEL" envDefault:"info"`
	Debounce time.Duration `env:"HYDROINI_SUCCESS_DEBOUNCE" envDefault:"200ms"`
	NoColor  bool          `env:"HYDROINI_SUCCESS_NO_COLOR"`
}

type singletonConfig struct {
	Format string `env:"HYDROINI_SINGLETON_FORMAT" envDefault:"text"`
}

type firstConfig struct {
	Value string `env:"HYDROINI_FIRST" envDefault:"one"`
}

type secondConfig struct {
	Value string `env:"HYDROINI_SECOND" envDefault:"two"`
}

type requiredConfig struct {
	Metrics string `env:"HYDROINI_REQUIRED_METRICS,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("HYDROINI_SUCCESS_LEVEL", "debug")
	t.Setenv("HYDROINI_SUCCESS_DEBOUNCE", "1s")
	t.Setenv("HYDROINI_SUCCESS_NO_COLOR", "true")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, time.Second, cfg.Debounce)
	assert.True(t, cfg.NoColor)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("HYDROINI_DEFAULTS_LEVEL")
	os.Unsetenv("HYDROINI_DEFAULTS_DEBOUNCE")
	os.Unsetenv("HYDROINI_DEFAULTS_NO_COLOR")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, 200*time.Millisecond, cfg.Debounce)
	assert.False(t, cfg.NoColor)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("HYDROINI_REQUIRED_METRICS")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("HYDROINI_REQUIRED_METRICS", "metrics.prom")
	require.NoError(t, config.Load(&cfg), "a failed load is retried")
	assert.Equal(t, "metrics.prom", cfg.Metrics)
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("HYDROINI_SINGLETON_FORMAT", "json")

	var first singletonConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("HYDROINI_SINGLETON_FORMAT", "text")

	var second singletonConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "json", second.Format, "cached value is returned")

	var reloaded singletonConfig
	require.NoError(t, config.ForceReload(&reloaded))
	assert.Equal(t, "text", reloaded.Format)
}

func TestLoad_DifferentTypes(t *testing.T) {
	t.Setenv("HYDROINI_FIRST", "first")
	t.Setenv("HYDROINI_SECOND", "second")

	var a firstConfig
	require.NoError(t, config.Load(&a))

	var b secondConfig
	require.NoError(t, config.Load(&b))

	assert.Equal(t, "first", a.Value)
	assert.Equal(t, "second", b.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *successConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.ForceReload(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("HYDROINI_REQUIRED_METRICS")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
}
