package main

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ypickup/pickup-web/api"
	"github.com/ypickup/pickup-web/backend"
	"github.com/ypickup/pickup-web/config"
	"github.com/ypickup/pickup-web/geocode"
	"github.com/ypickup/pickup-web/session"
	"github.com/ypickup/pickup-web/watch"
	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed database/setup.sql
var setupSQL string

func main() {
	logger := slog.Default().With("component", "main")

	err := godotenv.Load()

	if err != nil {
		logger.Warn("no .env file loaded", "err", err)
	}

	cfg, err := config.Load()

	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	slog.SetLogLoggerLevel(cfg.LogLevel)

	loc, err := cfg.Location()

	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("connecting to PostgreSQL database")
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)

	if err != nil {
		logger.Error("Unable to connect to database", "err", err)
		os.Exit(1)
	}

	defer pool.Close()

	_, err = pool.Exec(ctx, setupSQL)
	if err != nil {
		logger.Error("failed to initialize tables", "err", err)
		os.Exit(1)
	} else {
		logger.Info("initialized database tables")
	}

	views := watch.NewRegistry(ctx, watch.RegistryConfig{
		Interval: cfg.PollInterval,
		Jitter:   cfg.PollJitter,
		IdleTTL:  cfg.ViewIdleTTL,
		WarmTTL:  cfg.GamesCacheTTL,
		Location: loc,
	}, slog.Default().With("component", "watch"))
	defer views.Close()

	sessions := session.NewManager(session.NewRepository(pool), session.Config{
		IdleTTL: cfg.SessionIdleTTL,
		Secure:  cfg.CookieSecure,
	})
	sessions.OnLogout(views.Drop)

	go purgeSessions(ctx, sessions, logger)

	clients := backend.NewConnector(backend.Config{
		BaseURL:          cfg.BackendURL,
		ExternalLoginURL: cfg.ExternalLoginURL,
		Timeout:          cfg.BackendTimeout,
		SearchTTL:        cfg.SearchCacheTTL,
	})

	geocoder := geocode.NewClient(cfg.GeocodeAPIKey, cfg.GeocodeURL)

	if !geocoder.Enabled() {
		logger.Warn("GEOCODE_API_KEY not set, location search is disabled")
	}

	tmpl, err := api.LoadTemplates(loc)

	if err != nil {
		logger.Error("failed to parse templates", "err", err)
		os.Exit(1)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)

	if cfg.AssetsDir != "" {
		r.Static("/assets", cfg.AssetsDir)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.Use(session.Guard(sessions))
	r.Use(api.BackendAuth(clients))

	// PUBLIC PAGES

	loginHandler := api.NewLoginHandler(clients, sessions)

	loginHandler.Register(r.Group(""))

	// SIGNED IN PAGES

	protected := r.Group("")
	protected.Use(session.RequireAuth())

	gameHandler := api.NewGameHandler(views, sessions, api.GameConfig{
		PollInterval: cfg.PollInterval,
		StartPolicy:  cfg.StartPolicy,
		Location:     loc,
	})

	gameHandler.Register(protected.Group("/games"))

	profileHandler := api.NewProfileHandler(sessions, loc)

	profileHandler.Register(protected)

	locationHandler := api.NewLocationHandler(geocoder)

	locationHandler.Register(protected.Group("/location"))

	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && c.Request.URL.Path == "/" {
			c.Redirect(http.StatusFound, "/games")
			return
		}
		c.Redirect(http.StatusFound, session.LoginPath)
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "err", err)
		}
	}()

	logger.Info("listening", "addr", cfg.HTTPAddr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// purgeSessions deletes idle sessions once an hour until ctx is done.
func purgeSessions(ctx context.Context, sessions *session.Manager, logger *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.PurgeIdle(ctx)
			if err != nil {
				logger.Error("failed to purge idle sessions", "err", err)
				continue
			}
			if n > 0 {
				logger.Info("purged idle sessions", "count", n)
			}
		}
	}
}
