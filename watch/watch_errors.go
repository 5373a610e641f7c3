package watch

import "errors"

var ErrStopped = errors.New("view stopped")

var ErrActionInFlight = errors.New("an action on this game is already pending")

var ErrEmptyComment = errors.New("comment is empty")

var ErrProfileUnavailable = errors.New("viewer profile unavailable")

// ActionError carries the message shown to the user when a game action fails.
type ActionError struct {
	Action Action
	Err    error
}

func (e *ActionError) Error() string {
	return e.Action.FailureMessage() + " " + e.Err.Error()
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
