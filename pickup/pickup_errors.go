package pickup

import (
	"errors"
	"sort"
	"strings"
)

var ErrGameNotFound = errors.New("game not found")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

var ErrInvalidGameState = errors.New("invalid game state")

// ValidationErrors maps a form field to the message shown next to it.
// The empty key holds form-wide messages.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			parts = append(parts, v[k])
			continue
		}
		parts = append(parts, k+": "+v[k])
	}

	return strings.Join(parts, "; ")
}

func (v ValidationErrors) Has(field string) bool {
	_, ok := v[field]
	return ok
}
