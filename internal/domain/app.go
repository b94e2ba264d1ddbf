package domain

import (
	"context"

	"github.com/google/uuid"
)

// AppService is the application layer consumed by the HTTP handlers.
type AppService interface {
	Register(ctx context.Context, email, name, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*User, error)

	CreateSession(ctx context.Context, userID uuid.UUID, role, difficulty string) (*Session, error)
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error)
	ListSessions(ctx context.Context, userID uuid.UUID) ([]*Session, error)
	StartSession(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error)
	CompleteSession(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error)
	DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error

	AppendTranscript(ctx context.Context, userID, sessionID uuid.UUID, speaker Speaker, text, timestamp string) (*TranscriptEntry, *SentimentAnalysis, error)
	GetTranscript(ctx context.Context, userID, sessionID uuid.UUID) ([]*TranscriptEntry, error)

	InterviewerReply(ctx context.Context, userID, sessionID uuid.UUID) (*TranscriptEntry, error)
	SessionAnalysisSummary(ctx context.Context, userID, sessionID uuid.UUID) (*SessionSummary, error)
}
