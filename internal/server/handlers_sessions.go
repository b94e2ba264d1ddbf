package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mockview/mockview/internal/domain"
	apperrors "github.com/mockview/mockview/internal/errors"
)

type createSessionRequest struct {
	Role       string `json:"role" validate:"required,min=1"`
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

type updateSessionRequest struct {
	Action string `json:"action" validate:"required,oneof=start complete"`
}

func (s *Server) handleCreateSession(c echo.Context) error {
	var req createSessionRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := s.app.CreateSession(c.Request().Context(), currentUserID(c), req.Role, req.Difficulty)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, toSessionResponse(session))
}

func (s *Server) handleListSessions(c echo.Context) error {
	sessions, err := s.app.ListSessions(c.Request().Context(), currentUserID(c))
	if err != nil {
		return mapDomainError(err)
	}

	out := make([]sessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, toSessionResponse(session))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetSession(c echo.Context) error {
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	session, err := s.app.GetSession(c.Request().Context(), currentUserID(c), sessionID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

func (s *Server) handleUpdateSession(c echo.Context) error {
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	var req updateSessionRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	var session *domain.Session
	switch req.Action {
	case "start":
		session, err = s.app.StartSession(c.Request().Context(), currentUserID(c), sessionID)
	case "complete":
		session, err = s.app.CompleteSession(c.Request().Context(), currentUserID(c), sessionID)
	default:
		return apperrors.ValidationError("unknown action")
	}
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

func (s *Server) handleDeleteSession(c echo.Context) error {
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	if err := s.app.DeleteSession(c.Request().Context(), currentUserID(c), sessionID); err != nil {
		return mapDomainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
