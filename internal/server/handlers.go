package server

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mockview/mockview/internal/domain"
	apperrors "github.com/mockview/mockview/internal/errors"
)

// bindAndValidate decodes the JSON body into req and runs struct validation.
func (s *Server) bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return apperrors.ValidationError(err.Error())
	}
	return nil
}

// mapDomainError translates domain sentinel errors into structured HTTP
// errors. Unknown errors pass through for the middleware to treat as
// internal.
func mapDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperrors.UnauthorizedError(err.Error())
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrTranscriptNotFound):
		return apperrors.NotFoundError(err.Error())
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrSessionCompleted):
		return apperrors.ConflictError(err.Error())
	default:
		return err
	}
}

// --- Response shapes ---

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

type sessionResponse struct {
	ID         string     `json:"id"`
	Role       string     `json:"role"`
	Difficulty string     `json:"difficulty"`
	Status     string     `json:"status"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toSessionResponse(session *domain.Session) sessionResponse {
	return sessionResponse{
		ID:         session.ID.String(),
		Role:       session.Role,
		Difficulty: session.Difficulty,
		Status:     string(session.Status),
		StartedAt:  session.StartedAt,
		EndedAt:    session.EndedAt,
		CreatedAt:  session.CreatedAt,
	}
}

type transcriptEntryResponse struct {
	ID        string    `json:"id"`
	Speaker   string    `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp string    `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}

func toTranscriptEntryResponse(entry *domain.TranscriptEntry) transcriptEntryResponse {
	return transcriptEntryResponse{
		ID:        entry.ID.String(),
		Speaker:   string(entry.Speaker),
		Text:      entry.Text,
		Timestamp: entry.Timestamp,
		CreatedAt: entry.CreatedAt,
	}
}
