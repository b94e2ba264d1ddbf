package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Speaker identifies who produced a transcript entry.
type Speaker string

const (
	SpeakerInterviewer Speaker = "interviewer"
	SpeakerCandidate   Speaker = "candidate"
)

// TranscriptEntry is one utterance within a session. Timestamp is the
// client-supplied opaque marker carried through into analysis results.
type TranscriptEntry struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Speaker   Speaker
	Text      string
	Timestamp string
	CreatedAt time.Time
}

type TranscriptRepository interface {
	Append(ctx context.Context, sessionID uuid.UUID, speaker Speaker, text, timestamp string) (*TranscriptEntry, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*TranscriptEntry, error)
	DeleteBySession(ctx context.Context, sessionID uuid.UUID) error
}
