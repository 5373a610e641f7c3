package pickup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ypickup/pickup-web/pickup"
)

func intPtr(n int) *int { return &n }

func participants(ids ...int) []pickup.Participant {
	out := make([]pickup.Participant, 0, len(ids))
	for i, id := range ids {
		out = append(out, pickup.Participant{ID: i + 1, User: pickup.User{ID: id}})
	}
	return out
}

func TestIsFull(t *testing.T) {
	tests := []struct {
		name string
		game pickup.Game
		want bool
	}{
		{"unlimited", pickup.Game{Participants: participants(1, 2, 3)}, false},
		{"below capacity", pickup.Game{Capacity: intPtr(3), Participants: participants(1, 2)}, false},
		{"at capacity", pickup.Game{Capacity: intPtr(2), Participants: participants(1, 2)}, true},
		{"over capacity", pickup.Game{Capacity: intPtr(1), Participants: participants(1, 2)}, true},
		{"empty roster", pickup.Game{Capacity: intPtr(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickup.IsFull(tt.game))
		})
	}
}

func TestResolveRole(t *testing.T) {
	creator := pickup.User{ID: 1}

	t.Run("creator", func(t *testing.T) {
		g := pickup.Game{Creator: creator, Capacity: intPtr(1), Participants: participants(5)}
		assert.Equal(t, pickup.RoleCreator, pickup.ResolveRole(g, 1))
	})

	t.Run("joined", func(t *testing.T) {
		g := pickup.Game{Creator: creator, Participants: participants(2)}
		assert.Equal(t, pickup.RoleJoined, pickup.ResolveRole(g, 2))
	})

	t.Run("joined in a full game can still leave", func(t *testing.T) {
		g := pickup.Game{Creator: creator, Capacity: intPtr(1), Participants: participants(2)}
		set := pickup.Actions(g, 2)
		assert.Equal(t, pickup.RoleJoined, set.Role)
		assert.True(t, set.CanLeave)
	})

	t.Run("full and not joined", func(t *testing.T) {
		g := pickup.Game{
			Creator:      creator,
			Capacity:     intPtr(10),
			Participants: participants(2, 3, 4, 5, 6, 7, 8, 9, 10, 11),
			CurrentState: pickup.StateOpen,
		}
		set := pickup.Actions(g, 42)
		assert.Equal(t, pickup.RoleFull, set.Role)
		assert.True(t, set.ShowFull)
		assert.False(t, set.ShowJoin)
		assert.False(t, set.CanJoin)
	})

	t.Run("eligible", func(t *testing.T) {
		g := pickup.Game{Creator: creator, Participants: participants(2)}
		assert.Equal(t, pickup.RoleEligible, pickup.ResolveRole(g, 3))
	})
}

func TestActions_ExactlyOneAffordance(t *testing.T) {
	states := []pickup.State{pickup.StateOpen, pickup.StateInProgress, pickup.StateCancelled, pickup.StateCompleted}
	capacities := []*int{nil, intPtr(1), intPtr(2)}
	rosters := [][]int{nil, {2}, {2, 3}}

	for _, st := range states {
		for _, capacity := range capacities {
			for _, roster := range rosters {
				g := pickup.Game{
					Creator:      pickup.User{ID: 1},
					CurrentState: st,
					Capacity:     capacity,
					Participants: participants(roster...),
				}

				for _, viewer := range []int{1, 2, 9} {
					set := pickup.Actions(g, viewer)
					shown := 0
					for _, on := range []bool{set.Role == pickup.RoleCreator, set.CanLeave, set.ShowJoin, set.ShowFull} {
						if on {
							shown++
						}
					}
					require.Equal(t, 1, shown, "game %+v viewer %d", g, viewer)
				}
			}
		}
	}
}

func TestActions_JoinOnlyWhenOpen(t *testing.T) {
	for _, st := range []pickup.State{pickup.StateOpen, pickup.StateInProgress, pickup.StateCancelled, pickup.StateCompleted} {
		g := pickup.Game{Creator: pickup.User{ID: 1}, CurrentState: st}
		set := pickup.Actions(g, 2)

		assert.True(t, set.ShowJoin)
		assert.Equal(t, st == pickup.StateOpen, set.CanJoin, "state %s", st)
	}
}

func TestActions_Creator(t *testing.T) {
	g := pickup.Game{Creator: pickup.User{ID: 1}, CurrentState: pickup.StateOpen}
	set := pickup.Actions(g, 1)

	assert.True(t, set.CanEdit)
	assert.True(t, set.CanDelete)
	assert.True(t, set.CanCancel)
	assert.True(t, set.CanComment)

	g.CurrentState = pickup.StateCompleted
	assert.False(t, pickup.Actions(g, 1).CanCancel)
}
