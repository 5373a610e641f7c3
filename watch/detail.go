package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/ypickup/pickup-web/backend"
	"github.com/ypickup/pickup-web/pickup"
	"golang.org/x/sync/errgroup"
)

type Detail struct {
	Game    pickup.Game
	Profile pickup.Profile
	// Comments is only fetched for the creator and participants.
	Comments        []pickup.Comment
	CommentsVisible bool
}

type DetailView struct {
	Detail
	Actions pickup.ActionSet
	Badge   pickup.Badge
	Icon    string
	Start   string
	Loaded  bool
	Err     error
	// Gone is set once the game was deleted from this view.
	Gone bool
}

// GameDetail is the polled detail screen of one game for one session.
type GameDetail struct {
	id     int
	api    backend.API
	opts   Options
	poller *Poller[Detail]
	guard  inflight
	once   sync.Once
	logger *slog.Logger

	mu   sync.Mutex
	gone bool
}

func NewGameDetail(api backend.API, gameID int, opts Options) *GameDetail {
	opts = opts.withDefaults()

	d := &GameDetail{
		id:     gameID,
		api:    api,
		opts:   opts,
		logger: opts.Logger.With("view", "game", "game_id", gameID),
	}

	d.poller = NewPoller(d.fetch, opts.Interval, opts.Jitter)

	return d
}

func (d *GameDetail) fetch(ctx context.Context) (Detail, error) {
	var out Detail

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		game, err := d.api.Game(gctx, d.id)
		if errors.Is(err, backend.ErrNotFound) {
			return fmt.Errorf("fetching game %d: %w", d.id, pickup.ErrGameNotFound)
		}
		if err != nil {
			return fmt.Errorf("fetching game %d: %w", d.id, err)
		}
		out.Game = game
		return nil
	})

	g.Go(func() error {
		profile, err := d.api.Profile(gctx)
		if err != nil {
			return fmt.Errorf("fetching profile: %w", err)
		}
		out.Profile = profile
		return nil
	})

	if err := g.Wait(); err != nil {
		return Detail{}, err
	}

	userID := out.Profile.ID
	if !pickup.IsCreator(out.Game, userID) && !pickup.HasParticipant(out.Game, userID) {
		return out, nil
	}

	out.CommentsVisible = true

	comments, err := d.api.Comments(ctx, d.id)
	if err != nil {
		// Keep the comments already shown.
		d.logger.Warn("comments unavailable", "error", err)
		comments = d.poller.Snapshot().Value.Comments
	}
	out.Comments = comments

	return out, nil
}

func (d *GameDetail) Prime(reqCtx, ctx context.Context) {
	d.once.Do(func() {
		d.poller.Refresh(reqCtx)
		d.poller.Start(ctx)
	})
}

func (d *GameDetail) Refresh(ctx context.Context) error {
	return d.poller.Refresh(ctx)
}

func (d *GameDetail) Stop() {
	d.poller.Stop()
}

func (d *GameDetail) View() DetailView {
	snap := d.poller.Snapshot()

	d.mu.Lock()
	gone := d.gone
	d.mu.Unlock()

	v := DetailView{
		Detail: snap.Value,
		Loaded: snap.Loaded,
		Err:    snap.Err,
		Gone:   gone,
	}

	if snap.Loaded {
		g := snap.Value.Game
		v.Actions = pickup.Actions(g, snap.Value.Profile.ID)
		v.Badge = pickup.StatusBadge(g.CurrentState)
		v.Icon = pickup.SportIcon(g.Sport.Name)
		v.Start = pickup.FormatStart(g.StartTime.In(d.opts.Location))
	}

	return v
}

// Do sends the action. A successful delete stops the view; anything else
// re-fetches the game.
func (d *GameDetail) Do(ctx context.Context, a Action) error {
	if !d.guard.acquire(d.id) {
		return &ActionError{Action: a, Err: ErrActionInFlight}
	}
	defer d.guard.release(d.id)

	if snap := d.poller.Snapshot(); snap.Loaded {
		set := pickup.Actions(snap.Value.Game, snap.Value.Profile.ID)
		if err := a.Allowed(set); err != nil {
			return &ActionError{Action: a, Err: err}
		}
	}

	err := perform(ctx, d.api, a, d.id)

	if err == nil && a == ActionDelete {
		d.mu.Lock()
		d.gone = true
		d.mu.Unlock()
		d.poller.Stop()
		return nil
	}

	if rerr := d.poller.Refresh(ctx); rerr != nil && !errors.Is(rerr, ErrStopped) {
		d.logger.Warn("refresh after action failed", "action", a, "error", rerr)
	}

	if err != nil {
		d.logger.Info("action rejected", "action", a, "error", err)
		return &ActionError{Action: a, Err: err}
	}

	return nil
}

// PostComment sends text and appends the stored comment to the view.
func (d *GameDetail) PostComment(ctx context.Context, text string) (pickup.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return pickup.Comment{}, ErrEmptyComment
	}

	if snap := d.poller.Snapshot(); snap.Loaded && !pickup.Actions(snap.Value.Game, snap.Value.Profile.ID).CanComment {
		return pickup.Comment{}, pickup.ErrNotAllowed
	}

	c, err := d.api.PostComment(ctx, d.id, text)
	if err != nil {
		return pickup.Comment{}, fmt.Errorf("posting comment: %w", err)
	}

	d.poller.Update(func(cur Detail) Detail {
		cur.Comments = append(append([]pickup.Comment(nil), cur.Comments...), c)
		return cur
	})

	return c, nil
}
