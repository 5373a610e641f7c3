package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ypickup/pickup-web/pickup"
)

type Config struct {
	HTTPAddr    string     `env:"HTTP_ADDR" envDefault:":9090"`
	DatabaseURL string     `env:"DATABASE_URL,required,notEmpty"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	AssetsDir   string     `env:"ASSETS_DIR"`

	BackendURL       string        `env:"BACKEND_URL" envDefault:"http://localhost:8000/api/"`
	BackendTimeout   time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
	ExternalLoginURL string        `env:"EXTERNAL_LOGIN_URL"`
	SearchCacheTTL   time.Duration `env:"SEARCH_CACHE_TTL" envDefault:"30s"`

	PollInterval  time.Duration `env:"POLL_INTERVAL" envDefault:"7s"`
	PollJitter    time.Duration `env:"POLL_JITTER" envDefault:"1s"`
	ViewIdleTTL   time.Duration `env:"VIEW_IDLE_TTL" envDefault:"2m"`
	GamesCacheTTL time.Duration `env:"GAMES_CACHE_TTL" envDefault:"30s"`

	StartPolicy     pickup.StartPolicy `env:"START_POLICY" envDefault:"future"`
	DisplayTimezone string             `env:"DISPLAY_TIMEZONE"`

	GeocodeAPIKey string `env:"GEOCODE_API_KEY"`
	GeocodeURL    string `env:"GEOCODE_URL"`

	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL" envDefault:"336h"`
	CookieSecure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c Config) validate() error {
	switch c.StartPolicy {
	case pickup.StartFuture, pickup.StartAny:
	default:
		return fmt.Errorf("START_POLICY must be %q or %q, got %q", pickup.StartFuture, pickup.StartAny, c.StartPolicy)
	}

	if c.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL must be positive, got %s", c.PollInterval)
	}

	if c.PollJitter < 0 {
		return fmt.Errorf("POLL_JITTER cannot be negative, got %s", c.PollJitter)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Location is the zone game times are entered and shown in. Empty means the
// server's local zone.
func (c Config) Location() (*time.Location, error) {
	if c.DisplayTimezone == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("loading DISPLAY_TIMEZONE: %w", err)
	}

	return loc, nil
}
