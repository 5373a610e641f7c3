package session

import "errors"

var ErrSessionNotFound = errors.New("session not found")

var ErrEmptyToken = errors.New("token cannot be empty")
