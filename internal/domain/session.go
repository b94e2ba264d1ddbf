package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionStatus is the lifecycle state of an interview session.
type SessionStatus string

const (
	SessionCreated   SessionStatus = "created"
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

// Session is one mock-interview run for a user.
type Session struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Role       string
	Difficulty string
	Status     SessionStatus
	StartedAt  *time.Time
	EndedAt    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, userID uuid.UUID, role, difficulty string) (*Session, error)
	// GetByID is scoped to the owning user: a session belonging to another
	// user reports ErrSessionNotFound rather than leaking its existence.
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Session, error)
	UpdateStatus(ctx context.Context, userID, sessionID uuid.UUID, status SessionStatus, startedAt, endedAt *time.Time) (*Session, error)
	Delete(ctx context.Context, userID, sessionID uuid.UUID) error
}
