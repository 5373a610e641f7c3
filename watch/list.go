package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/ypickup/pickup-web/backend"
	"github.com/ypickup/pickup-web/pickup"
)

const warmGamesKey = "games"

type Options struct {
	Interval time.Duration
	Jitter   time.Duration
	// Location is used for date filters and displayed times.
	Location *time.Location
	// Warm, when set, seeds new lists with the last fetched games.
	Warm   *cache.Cache
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = 7 * time.Second
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

type GameItem struct {
	Game    pickup.Game
	Actions pickup.ActionSet
	Badge   pickup.Badge
	Icon    string
	Start   string
}

// NewGameItem pairs g with what userID may do with it.
func NewGameItem(g pickup.Game, userID int, loc *time.Location) GameItem {
	return GameItem{
		Game:    g,
		Actions: pickup.Actions(g, userID),
		Badge:   pickup.StatusBadge(g.CurrentState),
		Icon:    pickup.SportIcon(g.Sport.Name),
		Start:   pickup.FormatStart(g.StartTime.In(loc)),
	}
}

type ListView struct {
	Items            []GameItem
	Total            int
	Filter           pickup.Filter
	ParticipantQuery string
	Suggestions      []pickup.User
	Profile          *pickup.Profile
	Loaded           bool
	Err              error
	FetchedAt        time.Time
}

// GameList is the polled browse screen of one session.
type GameList struct {
	api    backend.API
	opts   Options
	games  *Poller[[]pickup.Game]
	guard  inflight
	once   sync.Once
	logger *slog.Logger

	mu               sync.Mutex
	profile          *pickup.Profile
	filter           pickup.Filter
	participantQuery string
	suggestions      []pickup.User
}

func NewGameList(api backend.API, opts Options) *GameList {
	opts = opts.withDefaults()

	l := &GameList{
		api:    api,
		opts:   opts,
		logger: opts.Logger.With("view", "games"),
	}

	l.games = NewPoller(l.fetch, opts.Interval, opts.Jitter)

	if opts.Warm != nil {
		if v, ok := opts.Warm.Get(warmGamesKey); ok {
			if games, ok := v.([]pickup.Game); ok {
				l.games.Seed(games)
			}
		}

		l.games.OnFetch(func(games []pickup.Game) {
			opts.Warm.SetDefault(warmGamesKey, games)
		})
	}

	return l
}

func (l *GameList) fetch(ctx context.Context) ([]pickup.Game, error) {
	l.loadProfile(ctx)

	games, err := l.api.Games(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching games: %w", err)
	}

	return games, nil
}

// loadProfile fetches the viewer once. Failures leave the viewer unknown
// and are retried on the next poll.
func (l *GameList) loadProfile(ctx context.Context) {
	l.mu.Lock()
	known := l.profile != nil
	l.mu.Unlock()

	if known {
		return
	}

	p, err := l.api.Profile(ctx)
	if err != nil {
		l.logger.Debug("profile unavailable", "error", err)
		return
	}

	l.mu.Lock()
	l.profile = &p
	l.mu.Unlock()
}

// Prime runs the first fetch with the caller's context and starts polling
// under ctx. Only the first call does anything; later callers wait for it.
func (l *GameList) Prime(reqCtx, ctx context.Context) {
	l.once.Do(func() {
		l.games.Refresh(reqCtx)
		l.games.Start(ctx)
	})
}

func (l *GameList) Refresh(ctx context.Context) error {
	return l.games.Refresh(ctx)
}

func (l *GameList) Stop() {
	l.games.Stop()
}

func (l *GameList) userID() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.profile == nil {
		return 0
	}
	return l.profile.ID
}

func (l *GameList) View() ListView {
	snap := l.games.Snapshot()

	l.mu.Lock()
	defer l.mu.Unlock()

	userID := 0
	if l.profile != nil {
		userID = l.profile.ID
	}

	visible := pickup.Apply(snap.Value, l.filter, l.opts.Location)
	items := make([]GameItem, 0, len(visible))
	for _, g := range visible {
		item := NewGameItem(g, userID, l.opts.Location)
		if l.profile == nil {
			// Without the viewer no role can be resolved, so nothing is offered.
			item.Actions = pickup.ActionSet{}
		}
		items = append(items, item)
	}

	return ListView{
		Items:            items,
		Total:            len(snap.Value),
		Filter:           l.filter,
		ParticipantQuery: l.participantQuery,
		Suggestions:      l.suggestions,
		Profile:          l.profile,
		Loaded:           snap.Loaded,
		Err:              snap.Err,
		FetchedAt:        snap.FetchedAt,
	}
}

// SetFilter replaces the text and date predicates. The pinned participant
// is kept.
func (l *GameList) SetFilter(f pickup.Filter) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f.UserID = l.filter.UserID
	l.filter = f
}

// SearchParticipants updates the typeahead. An empty query clears the
// suggestions and unpins the participant filter.
func (l *GameList) SearchParticipants(ctx context.Context, query string) ([]pickup.User, error) {
	query = strings.TrimSpace(query)

	l.mu.Lock()
	l.participantQuery = query
	if query == "" {
		l.suggestions = nil
		l.filter.UserID = 0
		l.mu.Unlock()
		return nil, nil
	}
	l.mu.Unlock()

	users, err := l.api.SearchUsers(ctx, query)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.participantQuery != query {
		return users, err
	}

	if err != nil {
		l.suggestions = nil
		return nil, fmt.Errorf("searching users: %w", err)
	}

	l.suggestions = users

	return users, nil
}

func (l *GameList) PinParticipant(u pickup.User) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.filter.UserID = u.ID
	l.participantQuery = u.DisplayName()
	l.suggestions = nil
}

func (l *GameList) Join(ctx context.Context, gameID int) error {
	return l.Do(ctx, ActionJoin, gameID)
}

func (l *GameList) Leave(ctx context.Context, gameID int) error {
	return l.Do(ctx, ActionLeave, gameID)
}

func (l *GameList) Cancel(ctx context.Context, gameID int) error {
	return l.Do(ctx, ActionCancel, gameID)
}

func (l *GameList) Delete(ctx context.Context, gameID int) error {
	return l.Do(ctx, ActionDelete, gameID)
}

// Do sends the action and re-fetches the list whatever the outcome. The
// displayed games only ever change through a fetch.
func (l *GameList) Do(ctx context.Context, a Action, gameID int) error {
	if !l.guard.acquire(gameID) {
		return &ActionError{Action: a, Err: ErrActionInFlight}
	}
	defer l.guard.release(gameID)

	l.loadProfile(ctx)
	if l.userID() == 0 {
		return &ActionError{Action: a, Err: ErrProfileUnavailable}
	}

	if g, ok := l.find(gameID); ok {
		if err := a.Allowed(pickup.Actions(g, l.userID())); err != nil {
			return &ActionError{Action: a, Err: err}
		}
	}

	err := perform(ctx, l.api, a, gameID)

	if rerr := l.games.Refresh(ctx); rerr != nil && !errors.Is(rerr, ErrStopped) {
		l.logger.Warn("refresh after action failed", "action", a, "game_id", gameID, "error", rerr)
	}

	if err != nil {
		l.logger.Info("action rejected", "action", a, "game_id", gameID, "error", err)
		return &ActionError{Action: a, Err: err}
	}

	return nil
}

func (l *GameList) find(gameID int) (pickup.Game, bool) {
	for _, g := range l.games.Snapshot().Value {
		if g.ID == gameID {
			return g, true
		}
	}
	return pickup.Game{}, false
}
