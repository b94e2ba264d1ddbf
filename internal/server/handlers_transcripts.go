package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mockview/mockview/internal/domain"
)

type appendTranscriptRequest struct {
	Speaker   string `json:"speaker" validate:"required,oneof=interviewer candidate"`
	Text      string `json:"text" validate:"required,min=1"`
	Timestamp string `json:"timestamp"`
}

type appendTranscriptResponse struct {
	Entry    transcriptEntryResponse   `json:"entry"`
	Analysis *domain.SentimentAnalysis `json:"analysis,omitempty"`
}

func (s *Server) handleAppendTranscript(c echo.Context) error {
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	var req appendTranscriptRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	entry, result, err := s.app.AppendTranscript(
		c.Request().Context(), currentUserID(c), sessionID,
		domain.Speaker(req.Speaker), req.Text, req.Timestamp)
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusCreated, appendTranscriptResponse{
		Entry:    toTranscriptEntryResponse(entry),
		Analysis: result,
	})
}

func (s *Server) handleGetTranscript(c echo.Context) error {
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	entries, err := s.app.GetTranscript(c.Request().Context(), currentUserID(c), sessionID)
	if err != nil {
		return mapDomainError(err)
	}

	out := make([]transcriptEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toTranscriptEntryResponse(entry))
	}
	return c.JSON(http.StatusOK, out)
}
