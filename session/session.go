package session

import "time"

// Session is the browser's persisted login state. The token is unexported so
// only the Manager can change it.
type Session struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	token     string
}

// Token satisfies backend.Credentials. A nil session is anonymous.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.token
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// New builds a session value, mainly for tests and repositories outside
// this package.
func New(id, token string, createdAt, updatedAt time.Time) *Session {
	return &Session{ID: id, token: token, CreatedAt: createdAt, UpdatedAt: updatedAt}
}
