package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_session.go -package=mocks . SessionRepository

type SessionRepository interface {
	GetSession(ctx context.Context, id string) (*Session, error)
	InsertSession(ctx context.Context, s *Session) error
	SetToken(ctx context.Context, id, token string, updatedAt time.Time) error
	Touch(ctx context.Context, id string, updatedAt time.Time) error
	DeleteSession(ctx context.Context, id string) error
	DeleteIdleSessions(ctx context.Context, before time.Time) (int64, error)
}

type Config struct {
	CookieName string
	// IdleTTL is how long an untouched session stays valid.
	IdleTTL time.Duration
	Secure  bool
}

// Manager is the only place a session's token is set or cleared.
type Manager struct {
	repo   SessionRepository
	cfg    Config
	logger *slog.Logger
	now    func() time.Time

	mu       sync.Mutex
	onLogout []func(sessionID string)
}

func NewManager(repo SessionRepository, cfg Config) *Manager {
	if cfg.CookieName == "" {
		cfg.CookieName = "pickup_session"
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 14 * 24 * time.Hour
	}

	return &Manager{
		repo:   repo,
		cfg:    cfg,
		logger: slog.Default().With("component", "session"),
		now:    time.Now,
	}
}

// OnLogout registers fn to run whenever a session loses its token.
func (m *Manager) OnLogout(fn func(sessionID string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onLogout = append(m.onLogout, fn)
}

func (m *Manager) Load(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}

	s, err := m.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	now := m.now()

	if now.Sub(s.UpdatedAt) > m.cfg.IdleTTL {
		if err := m.repo.DeleteSession(ctx, id); err != nil {
			m.logger.Warn("failed to delete idle session", "err", err)
		}
		m.fireLogout(id)
		return nil, ErrSessionNotFound
	}

	if now.Sub(s.UpdatedAt) > time.Minute {
		if err := m.repo.Touch(ctx, id, now); err != nil {
			m.logger.Warn("failed to touch session", "err", err)
		} else {
			s.UpdatedAt = now
		}
	}

	return s, nil
}

// Login stores token on s, creating a new session when s is not persisted
// yet. The returned session replaces s.
func (m *Manager) Login(ctx context.Context, s *Session, token string) (*Session, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	now := m.now()

	if s != nil && s.ID != "" {
		err := m.repo.SetToken(ctx, s.ID, token, now)

		if err == nil {
			if s.token != "" && s.token != token {
				m.fireLogout(s.ID)
			}
			return &Session{ID: s.ID, token: token, CreatedAt: s.CreatedAt, UpdatedAt: now}, nil
		}

		if !errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
	}

	created := &Session{
		ID:        uuid.NewString(),
		token:     token,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.repo.InsertSession(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	return created, nil
}

func (m *Manager) Logout(ctx context.Context, s *Session) error {
	if s == nil || s.ID == "" {
		return nil
	}

	m.fireLogout(s.ID)

	return m.repo.DeleteSession(ctx, s.ID)
}

// PurgeIdle removes sessions nobody used within the idle TTL.
func (m *Manager) PurgeIdle(ctx context.Context) (int64, error) {
	return m.repo.DeleteIdleSessions(ctx, m.now().Add(-m.cfg.IdleTTL))
}

func (m *Manager) fireLogout(id string) {
	m.mu.Lock()
	hooks := append([]func(string){}, m.onLogout...)
	m.mu.Unlock()

	for _, fn := range hooks {
		fn(id)
	}
}
