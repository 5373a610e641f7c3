package pickup

import "slices"

// Role is how the viewing user relates to a game. Exactly one role holds
// for any (game, user) pair.
type Role int

const (
	RoleEligible Role = iota
	RoleJoined
	RoleFull
	RoleCreator
)

func (r Role) String() string {
	switch r {
	case RoleCreator:
		return "creator"
	case RoleJoined:
		return "joined"
	case RoleFull:
		return "full"
	default:
		return "eligible"
	}
}

func IsFull(g Game) bool {
	return g.Capacity != nil && len(g.Participants) >= *g.Capacity
}

func IsCreator(g Game, userID int) bool {
	return g.Creator.ID == userID
}

func HasParticipant(g Game, userID int) bool {
	return slices.ContainsFunc(g.Participants, func(p Participant) bool {
		return p.User.ID == userID
	})
}

// ResolveRole derives the role from already fetched data. A joined
// participant of a full game stays RoleJoined so leaving remains possible.
func ResolveRole(g Game, userID int) Role {
	switch {
	case IsCreator(g, userID):
		return RoleCreator
	case HasParticipant(g, userID):
		return RoleJoined
	case IsFull(g):
		return RoleFull
	default:
		return RoleEligible
	}
}

type ActionSet struct {
	Role       Role
	CanEdit    bool
	CanCancel  bool
	CanDelete  bool
	CanLeave   bool
	ShowJoin   bool
	CanJoin    bool
	ShowFull   bool
	CanComment bool
}

func Actions(g Game, userID int) ActionSet {
	role := ResolveRole(g, userID)
	set := ActionSet{Role: role}

	switch role {
	case RoleCreator:
		set.CanEdit = true
		set.CanDelete = true
		set.CanCancel = g.CurrentState != StateCompleted
		set.CanComment = true
	case RoleJoined:
		set.CanLeave = true
		set.CanComment = true
	case RoleFull:
		set.ShowFull = true
	case RoleEligible:
		set.ShowJoin = true
		set.CanJoin = g.CurrentState == StateOpen
	}

	return set
}
