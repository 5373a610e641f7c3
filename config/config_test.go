package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ypickup/pickup-web/config"
	"github.com/ypickup/pickup-web/pickup"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/pickup")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.HTTPAddr)
		assert.Equal(t, 7*time.Second, cfg.PollInterval)
		assert.Equal(t, 2*time.Minute, cfg.ViewIdleTTL)
		assert.Equal(t, pickup.StartFuture, cfg.StartPolicy)
		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
		assert.False(t, cfg.CookieSecure)

		loc, err := cfg.Location()
		require.NoError(t, err)
		assert.Equal(t, time.Local, loc)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/pickup")
		t.Setenv("POLL_INTERVAL", "15s")
		t.Setenv("START_POLICY", "any")
		t.Setenv("DISPLAY_TIMEZONE", "America/New_York")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("COOKIE_SECURE", "true")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, 15*time.Second, cfg.PollInterval)
		assert.Equal(t, pickup.StartAny, cfg.StartPolicy)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.True(t, cfg.CookieSecure)

		loc, err := cfg.Location()
		require.NoError(t, err)
		assert.Equal(t, "America/New_York", loc.String())
	})

	t.Run("database url is required", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")

		_, err := config.Load()

		assert.Error(t, err)
	})

	t.Run("unknown start policy", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/pickup")
		t.Setenv("START_POLICY", "whenever")

		_, err := config.Load()

		assert.ErrorContains(t, err, "START_POLICY")
	})

	t.Run("unknown timezone", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/pickup")
		t.Setenv("DISPLAY_TIMEZONE", "Mars/Olympus")

		_, err := config.Load()

		assert.ErrorContains(t, err, "DISPLAY_TIMEZONE")
	})
}
