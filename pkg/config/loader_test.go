package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/config"
)

type defaultsConfig struct {
	Lang    string `env:"DEFAULTS_LANG" envDefault:"en"`
	Width   int    `env:"DEFAULTS_WIDTH" envDefault:"20"`
	Verbose bool   `env:"DEFAULTS_VERBOSE" envDefault:"false"`
}

type prefixedConfig struct {
	Lang string `env:"LANG_CODE" envDefault:"en"`
}

type requiredConfig struct {
	Path string `env:"REQUIRED_CATALOG_PATH,required"`
}

type fileConfig struct {
	Char string `env:"FILE_PAD_CHAR" envDefault:" "`
}

type cachedConfig struct {
	Value string `env:"CACHED_VALUE" envDefault:"initial"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.Reset()
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "en", cfg.Lang)
		assert.Equal(t, 20, cfg.Width)
		assert.False(t, cfg.Verbose)
	})

	t.Run("prefix", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEXTKIT_LANG_CODE", "fr")
		var cfg prefixedConfig
		require.NoError(t, config.Load(&cfg, config.WithPrefix("TEXTKIT_")))
		assert.Equal(t, "fr", cfg.Lang)
	})

	t.Run("required missing", func(t *testing.T) {
		config.Reset()
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[defaultsConfig](nil), config.ErrNilPointer)
	})

	t.Run("env file", func(t *testing.T) {
		config.Reset()
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("FILE_PAD_CHAR=.\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("FILE_PAD_CHAR") })

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path)))
		assert.Equal(t, ".", cfg.Char)
	})

	t.Run("missing env file", func(t *testing.T) {
		var cfg fileConfig
		err := config.Load(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "nope.env")))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("cached", func(t *testing.T) {
		config.Reset()
		var first cachedConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "initial", first.Value)

		t.Setenv("CACHED_VALUE", "changed")
		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "initial", second.Value)

		config.Reset()
		var third cachedConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "changed", third.Value)
	})
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
