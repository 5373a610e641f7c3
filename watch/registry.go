package watch

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/ypickup/pickup-web/backend"
)

type stopper interface {
	Stop()
}

type RegistryConfig struct {
	Interval time.Duration
	Jitter   time.Duration
	// IdleTTL is how long a view keeps polling after its last page load.
	IdleTTL time.Duration
	// SweepInterval is how often idle views are evicted. Defaults to IdleTTL/2.
	SweepInterval time.Duration
	// WarmTTL bounds how long fetched games seed new lists. Zero disables it.
	WarmTTL  time.Duration
	Location *time.Location
}

// Registry owns the live views, one per session and screen. A view that is
// not requested for IdleTTL is evicted and stops polling.
type Registry struct {
	ctx    context.Context
	opts   Options
	views  *cache.Cache
	logger *slog.Logger

	mu sync.Mutex
}

func NewRegistry(ctx context.Context, cfg RegistryConfig, logger *slog.Logger) *Registry {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 2 * time.Minute
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = cfg.IdleTTL / 2
	}

	opts := Options{
		Interval: cfg.Interval,
		Jitter:   cfg.Jitter,
		Location: cfg.Location,
		Logger:   logger,
	}
	if cfg.WarmTTL > 0 {
		opts.Warm = cache.New(cfg.WarmTTL, cfg.WarmTTL)
	}
	opts = opts.withDefaults()

	views := cache.New(cfg.IdleTTL, cfg.SweepInterval)
	views.OnEvicted(func(key string, v any) {
		if s, ok := v.(stopper); ok {
			s.Stop()
		}
		opts.Logger.Debug("view stopped", "key", key)
	})

	return &Registry{
		ctx:    ctx,
		opts:   opts,
		views:  views,
		logger: opts.Logger,
	}
}

// GameList returns the session's list view, primed and polling.
func (r *Registry) GameList(ctx context.Context, sessionID string, api backend.API) *GameList {
	v := r.lookup(sessionID+"/games", func() stopper {
		return NewGameList(api, r.opts)
	}).(*GameList)

	v.Prime(ctx, r.ctx)

	return v
}

// GameDetail returns the session's view of one game, primed and polling.
func (r *Registry) GameDetail(ctx context.Context, sessionID string, gameID int, api backend.API) *GameDetail {
	key := sessionID + "/game/" + strconv.Itoa(gameID)

	v := r.lookup(key, func() stopper {
		return NewGameDetail(api, gameID, r.opts)
	}).(*GameDetail)

	v.Prime(ctx, r.ctx)

	return v
}

// Forget drops one game's view for the session.
func (r *Registry) Forget(sessionID string, gameID int) {
	r.views.Delete(sessionID + "/game/" + strconv.Itoa(gameID))
}

func (r *Registry) lookup(key string, create func() stopper) stopper {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.views.Get(key); ok {
		r.views.SetDefault(key, v)
		return v.(stopper)
	}

	// An expired view may still be stored until the next sweep. Delete
	// runs the eviction hook so it stops before being replaced.
	r.views.Delete(key)

	v := create()
	r.views.SetDefault(key, v)

	return v
}

// Drop stops every view of the session.
func (r *Registry) Drop(sessionID string) {
	prefix := sessionID + "/"

	r.mu.Lock()
	defer r.mu.Unlock()

	// Items skips expired entries.
	r.views.DeleteExpired()

	for key := range r.views.Items() {
		if strings.HasPrefix(key, prefix) {
			r.views.Delete(key)
		}
	}
}

func (r *Registry) Len() int {
	return r.views.ItemCount()
}

// Close stops all views.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.views.DeleteExpired()

	for key := range r.views.Items() {
		r.views.Delete(key)
	}
}
