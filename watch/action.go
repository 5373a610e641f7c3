package watch

import (
	"context"
	"fmt"
	"sync"

	"github.com/ypickup/pickup-web/backend"
	"github.com/ypickup/pickup-web/pickup"
)

type Action int

const (
	ActionJoin Action = iota
	ActionLeave
	ActionCancel
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionJoin:
		return "join"
	case ActionLeave:
		return "leave"
	case ActionCancel:
		return "cancel"
	case ActionDelete:
		return "delete"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

func (a Action) FailureMessage() string {
	switch a {
	case ActionJoin:
		return "Failed to join."
	case ActionLeave:
		return "Failed to leave."
	case ActionCancel:
		return "Failed to cancel the game."
	case ActionDelete:
		return "Failed to delete the game."
	default:
		return "Action failed."
	}
}

// Allowed reports whether the action is offered to the holder of set.
func (a Action) Allowed(set pickup.ActionSet) error {
	switch a {
	case ActionJoin:
		if set.Role != pickup.RoleEligible {
			return pickup.ErrNotAllowed
		}
		if !set.CanJoin {
			return pickup.ErrInvalidGameState
		}
	case ActionLeave:
		if !set.CanLeave {
			return pickup.ErrNotAllowed
		}
	case ActionCancel:
		if set.Role != pickup.RoleCreator {
			return pickup.ErrNotAllowed
		}
		if !set.CanCancel {
			return pickup.ErrInvalidGameState
		}
	case ActionDelete:
		if !set.CanDelete {
			return pickup.ErrNotAllowed
		}
	}
	return nil
}

func perform(ctx context.Context, api backend.API, a Action, gameID int) error {
	switch a {
	case ActionJoin:
		return api.JoinGame(ctx, gameID)
	case ActionLeave:
		return api.LeaveGame(ctx, gameID)
	case ActionCancel:
		return api.CancelGame(ctx, gameID)
	case ActionDelete:
		return api.DeleteGame(ctx, gameID)
	default:
		return fmt.Errorf("unknown action %d", int(a))
	}
}

// inflight rejects a second action on a game while one is pending.
type inflight struct {
	mu   sync.Mutex
	busy map[int]bool
}

func (f *inflight) acquire(gameID int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.busy == nil {
		f.busy = make(map[int]bool)
	}
	if f.busy[gameID] {
		return false
	}
	f.busy[gameID] = true

	return true
}

func (f *inflight) release(gameID int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.busy, gameID)
}
