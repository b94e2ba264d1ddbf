package server

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/mockview/mockview/internal/errors"
)

const userIDContextKey = "user_id"

// requireAuth validates the bearer token and stores the user ID in the
// request context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return apperrors.UnauthorizedError("missing bearer token")
		}

		claims, err := s.jwt.ValidateToken(token)
		if err != nil {
			return apperrors.UnauthorizedError("invalid or expired token")
		}

		c.Set(userIDContextKey, claims.UserID)
		return next(c)
	}
}

// currentUserID reads the authenticated user from the request context.
func currentUserID(c echo.Context) uuid.UUID {
	userID, _ := c.Get(userIDContextKey).(uuid.UUID)
	return userID
}

// sessionIDParam parses the :id route parameter.
func sessionIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ValidationError("invalid session id")
	}
	return id, nil
}
