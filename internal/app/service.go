package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"

	"github.com/mockview/mockview/internal/domain"
	"github.com/mockview/mockview/internal/logging"
)

// Service is the application layer, the only component that references
// multiple domain components. It orchestrates all use cases.
type Service struct {
	users       domain.UserRepository
	sessions    domain.SessionRepository
	transcripts domain.TranscriptRepository
	analysis    domain.AnalysisService
	interviewer domain.InterviewerService
	broadcaster domain.LiveBroadcaster
	clock       clockwork.Clock
	bcryptCost  int

	// collapses concurrent summary requests for the same session
	summaryGroup singleflight.Group
}

var _ domain.AppService = (*Service)(nil)

// NewService creates the application layer service. analysis, interviewer
// and broadcaster may be nil in tests; the corresponding features degrade
// to no-ops.
func NewService(
	users domain.UserRepository,
	sessions domain.SessionRepository,
	transcripts domain.TranscriptRepository,
	analysis domain.AnalysisService,
	interviewer domain.InterviewerService,
	broadcaster domain.LiveBroadcaster,
	clock clockwork.Clock,
	bcryptCost int,
) *Service {
	return &Service{
		users:       users,
		sessions:    sessions,
		transcripts: transcripts,
		analysis:    analysis,
		interviewer: interviewer,
		broadcaster: broadcaster,
		clock:       clock,
		bcryptCost:  bcryptCost,
	}
}

// --- Auth ---

func (s *Service) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	return s.users.Create(ctx, email, name, string(hash))
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// --- Sessions ---

func (s *Service) CreateSession(ctx context.Context, userID uuid.UUID, role, difficulty string) (*domain.Session, error) {
	return s.sessions.Create(ctx, userID, role, difficulty)
}

func (s *Service) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, userID, sessionID)
}

func (s *Service) ListSessions(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error) {
	return s.sessions.ListByUser(ctx, userID)
}

func (s *Service) StartSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == domain.SessionCompleted {
		return nil, domain.ErrSessionCompleted
	}
	if session.Status == domain.SessionActive {
		return session, nil
	}

	now := s.clock.Now().UTC()
	return s.sessions.UpdateStatus(ctx, userID, sessionID, domain.SessionActive, &now, nil)
}

func (s *Service) CompleteSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == domain.SessionCompleted {
		return nil, domain.ErrSessionCompleted
	}

	now := s.clock.Now().UTC()
	return s.sessions.UpdateStatus(ctx, userID, sessionID, domain.SessionCompleted, nil, &now)
}

func (s *Service) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	if _, err := s.sessions.GetByID(ctx, userID, sessionID); err != nil {
		return err
	}
	if err := s.transcripts.DeleteBySession(ctx, sessionID); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, userID, sessionID)
}

// --- Transcript ---

// AppendTranscript stores an utterance. Candidate entries are additionally
// scored through the analysis service; a scoring failure never fails the
// append, it only drops the live update.
func (s *Service) AppendTranscript(ctx context.Context, userID, sessionID uuid.UUID, speaker domain.Speaker, text, timestamp string) (*domain.TranscriptEntry, *domain.SentimentAnalysis, error) {
	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Status == domain.SessionCompleted {
		return nil, nil, domain.ErrSessionCompleted
	}

	entry, err := s.transcripts.Append(ctx, sessionID, speaker, text, timestamp)
	if err != nil {
		return nil, nil, err
	}

	if speaker != domain.SpeakerCandidate || s.analysis == nil {
		return entry, nil, nil
	}

	result, err := s.analysis.AnalyzeSentiment(ctx, sessionID, text, timestamp)
	if err != nil {
		logging.WithSession(sessionID.String()).Warn("sentiment analysis failed for transcript entry",
			"entry_id", entry.ID, "error", err)
		return entry, nil, nil
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(sessionID, result)
	}
	return entry, result, nil
}

func (s *Service) GetTranscript(ctx context.Context, userID, sessionID uuid.UUID) ([]*domain.TranscriptEntry, error) {
	if _, err := s.sessions.GetByID(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	return s.transcripts.ListBySession(ctx, sessionID)
}

// --- Interviewer ---

func (s *Service) InterviewerReply(ctx context.Context, userID, sessionID uuid.UUID) (*domain.TranscriptEntry, error) {
	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == domain.SessionCompleted {
		return nil, domain.ErrSessionCompleted
	}

	transcript, err := s.transcripts.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	reply, err := s.interviewer.Respond(ctx, session, transcript)
	if err != nil {
		return nil, err
	}

	timestamp := s.clock.Now().UTC().Format(time.RFC3339)
	return s.transcripts.Append(ctx, sessionID, domain.SpeakerInterviewer, reply, timestamp)
}

// --- Analysis ---

func (s *Service) SessionAnalysisSummary(ctx context.Context, userID, sessionID uuid.UUID) (*domain.SessionSummary, error) {
	if _, err := s.sessions.GetByID(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	result, err, _ := s.summaryGroup.Do(sessionID.String(), func() (any, error) {
		return s.analysis.SessionSummary(ctx, sessionID)
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.SessionSummary), nil
}
