package domain

import (
	"context"

	"github.com/google/uuid"

	"github.com/mockview/mockview/internal/analysis"
)

// SentimentSample is the sentiment slice of a recorded history sample.
type SentimentSample struct {
	Sentiment  float64 `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

// ScoreSample is one point of a session's analysis history. Each analyze
// kind fills its own section; sections the request did not produce stay nil
// and are skipped by the summaries.
type ScoreSample struct {
	Timestamp string                 `json:"timestamp"`
	Score     *SentimentSample       `json:"score,omitempty"`
	Voice     *analysis.VoiceResult  `json:"voice,omitempty"`
	Facial    *analysis.FacialResult `json:"facial,omitempty"`
}

// ScoreStore keeps a capped per-session history of analysis scores.
type ScoreStore interface {
	Append(ctx context.Context, sessionID uuid.UUID, sample ScoreSample) error
	History(ctx context.Context, sessionID uuid.UUID) ([]ScoreSample, error)
	Reset(ctx context.Context, sessionID uuid.UUID) error
}

// SentimentAnalysis is a scored transcript chunk with its opaque timestamp.
type SentimentAnalysis struct {
	Timestamp string               `json:"timestamp"`
	Score     analysis.ScoreResult `json:"score"`
}

// SessionSummary aggregates a session's analysis history, one summary per
// analysis kind.
type SessionSummary struct {
	SessionID string                    `json:"session_id"`
	Sentiment analysis.SentimentSummary `json:"sentiment"`
	Voice     analysis.VoiceSummary     `json:"voice"`
	Facial    analysis.FacialSummary    `json:"facial"`
}

// AnalysisService is the backend's view of the analysis microservice.
type AnalysisService interface {
	AnalyzeSentiment(ctx context.Context, sessionID uuid.UUID, text, timestamp string) (*SentimentAnalysis, error)
	SessionSummary(ctx context.Context, sessionID uuid.UUID) (*SessionSummary, error)
}

// InterviewerService produces the AI interviewer's next line for a session.
type InterviewerService interface {
	Respond(ctx context.Context, session *Session, transcript []*TranscriptEntry) (string, error)
}

// LiveBroadcaster pushes analysis results to live listeners of a session.
type LiveBroadcaster interface {
	Broadcast(sessionID uuid.UUID, payload any)
}
