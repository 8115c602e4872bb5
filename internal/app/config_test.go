package app_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/internal/app"
	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()

		cfg, err := app.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, "rulekit", cfg.Name)
		assert.Equal(t, ":8080", cfg.HTTP.Addr)
	})

	t.Run("env file", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("APP_ENV", "")
		t.Setenv("HTTP_ADDR", "")
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("APP_ENV=production\nHTTP_ADDR=127.0.0.1:9000\n"), 0o600))

		cfg, err := app.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	})

	t.Run("invalid values are reported together", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("APP_ENV", "moon")
		t.Setenv("LOG_FORMAT", "xml")
		t.Setenv("HTTP_ADDR", "nowhere")

		_, err := app.LoadConfig()
		require.ErrorIs(t, err, config.ErrInvalidConfig)

		report, ok := validator.AsReport(err)
		require.True(t, ok)
		assert.Equal(t, []validator.ID{
			validator.Key("APP_ENV"),
			validator.Key("LOG_FORMAT"),
			validator.Key("HTTP_ADDR"),
		}, report.IDs())
		assert.Equal(t, []string{"must be a host:port address"}, report.Get("HTTP_ADDR"))
	})

	t.Run("missing env file", func(t *testing.T) {
		config.ResetCache()
		_, err := app.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		assert.True(t, errors.Is(err, config.ErrLoadingEnvFile))
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("production logs json", func(t *testing.T) {
		var buf bytes.Buffer
		log := app.NewLogger(app.Config{Env: "production", Name: "rulekit"}, &buf)
		log.Debug("hidden")
		log.Info("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
		assert.Contains(t, buf.String(), `"service":"rulekit"`)
	})

	t.Run("overrides", func(t *testing.T) {
		var buf bytes.Buffer
		log := app.NewLogger(app.Config{Env: "production", LogLevel: "debug", LogFormat: "text"}, &buf)
		log.Debug("visible")

		assert.Contains(t, buf.String(), "msg=visible")
		assert.Contains(t, buf.String(), "env=production")
	})
}
