package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mockview/mockview/internal/domain"
)

// sessionColumns must match the Scan order in scanSession.
const sessionColumns = `id, user_id, role, difficulty, status, started_at, ended_at, created_at, updated_at`

// SessionRepo implements domain.SessionRepository backed by PostgreSQL.
// All lookups are scoped by user so one user cannot observe another's
// sessions.
type SessionRepo struct {
	db *DB
}

var _ domain.SessionRepository = (*SessionRepo)(nil)

// NewSessionRepo creates a SessionRepo from the shared DB connection.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

func scanSession(row pgx.Row) (*domain.Session, error) {
	var session domain.Session
	err := row.Scan(
		&session.ID, &session.UserID, &session.Role, &session.Difficulty,
		&session.Status, &session.StartedAt, &session.EndedAt,
		&session.CreatedAt, &session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepo) Create(ctx context.Context, userID uuid.UUID, role, difficulty string) (*domain.Session, error) {
	session, err := scanSession(r.db.Pool.QueryRow(ctx, `
		INSERT INTO sessions (user_id, role, difficulty, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING `+sessionColumns,
		userID, role, difficulty, domain.SessionCreated))
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

func (r *SessionRepo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error) {
	session, err := scanSession(r.db.Pool.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE id = $1 AND user_id = $2`,
		sessionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

func (r *SessionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}
	return sessions, nil
}

func (r *SessionRepo) UpdateStatus(ctx context.Context, userID, sessionID uuid.UUID, status domain.SessionStatus, startedAt, endedAt *time.Time) (*domain.Session, error) {
	session, err := scanSession(r.db.Pool.QueryRow(ctx, `
		UPDATE sessions
		SET status = $1,
			started_at = COALESCE($2, started_at),
			ended_at = COALESCE($3, ended_at),
			updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING `+sessionColumns,
		status, startedAt, endedAt, sessionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to update session status: %w", err)
	}
	return session, nil
}

func (r *SessionRepo) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `
		DELETE FROM sessions
		WHERE id = $1 AND user_id = $2`,
		sessionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
