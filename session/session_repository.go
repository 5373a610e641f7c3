package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetSession(ctx context.Context, id string) (*Session, error) {
	sql := `
			SELECT id, token, created_at, updated_at
			FROM pickup_web.sessions
			WHERE id=$1;
		`

	var s Session
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&s.ID,
		&s.token,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch session with id %v: %w", id, err)
	}

	return &s, nil
}

func (r *Repository) InsertSession(ctx context.Context, s *Session) error {
	sql := `
			INSERT INTO pickup_web.sessions(id, token, created_at, updated_at)
			VALUES ($1, $2, $3, $4);
		`

	_, err := r.pool.Exec(ctx, sql, s.ID, s.token, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

func (r *Repository) SetToken(ctx context.Context, id, token string, updatedAt time.Time) error {
	sql := `
            UPDATE pickup_web.sessions
            SET token=$1, updated_at=$2
            WHERE id=$3;
        `

	tag, err := r.pool.Exec(ctx, sql, token, updatedAt, id)

	if err != nil {
		return fmt.Errorf("failed to update session '%v' token: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *Repository) Touch(ctx context.Context, id string, updatedAt time.Time) error {
	sql := `
            UPDATE pickup_web.sessions
            SET updated_at=$1
            WHERE id=$2;
        `

	if _, err := r.pool.Exec(ctx, sql, updatedAt, id); err != nil {
		return fmt.Errorf("failed to touch session '%v': %w", id, err)
	}

	return nil
}

func (r *Repository) DeleteSession(ctx context.Context, id string) error {
	sql := `DELETE FROM pickup_web.sessions WHERE id=$1;`

	if _, err := r.pool.Exec(ctx, sql, id); err != nil {
		return fmt.Errorf("failed to delete session '%v': %w", id, err)
	}

	return nil
}

func (r *Repository) DeleteIdleSessions(ctx context.Context, before time.Time) (int64, error) {
	sql := `DELETE FROM pickup_web.sessions WHERE updated_at < $1;`

	tag, err := r.pool.Exec(ctx, sql, before)

	if err != nil {
		return 0, fmt.Errorf("failed to delete idle sessions: %w", err)
	}

	return tag.RowsAffected(), nil
}
