package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleInterviewerRespond(c echo.Context) error {
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	entry, err := s.app.InterviewerReply(c.Request().Context(), currentUserID(c), sessionID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, toTranscriptEntryResponse(entry))
}

func (s *Server) handleAnalysisSummary(c echo.Context) error {
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	summary, err := s.app.SessionAnalysisSummary(c.Request().Context(), currentUserID(c), sessionID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
