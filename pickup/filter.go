package pickup

import (
	"strings"
	"time"
)

// Filter holds the independent list predicates. Zero values are inactive.
type Filter struct {
	Name     string
	Sport    string
	Location string
	// Date is a calendar day in time.DateOnly form.
	Date   string
	UserID int
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Apply returns the games passing every active predicate, in their original
// order. The input slice is never modified. Dates are compared in loc; nil
// means the game's own offset.
func Apply(games []Game, f Filter, loc *time.Location) []Game {
	out := make([]Game, 0, len(games))

	for _, g := range games {
		if f.Match(g, loc) {
			out = append(out, g)
		}
	}

	return out
}

func (f Filter) Match(g Game, loc *time.Location) bool {
	if !containsFold(g.Name, f.Name) {
		return false
	}

	if !containsFold(g.Sport.Name, f.Sport) {
		return false
	}

	if !containsFold(g.Location, f.Location) {
		return false
	}

	if f.Date != "" {
		start := g.StartTime
		if loc != nil {
			start = start.In(loc)
		}
		if start.Format(time.DateOnly) != f.Date {
			return false
		}
	}

	if f.UserID != 0 && !IsCreator(g, f.UserID) && !HasParticipant(g, f.UserID) {
		return false
	}

	return true
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
