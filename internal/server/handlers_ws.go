package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	apperrors "github.com/mockview/mockview/internal/errors"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // same-origin is enforced by the deployment, not here
	},
}

// handleWebSocket upgrades a live-feed connection for a session. The JWT
// arrives as a ?token= query parameter and the session must belong to the
// authenticated user.
func (s *Server) handleWebSocket(c echo.Context) error {
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	claims, err := s.jwt.ValidateToken(c.QueryParam("token"))
	if err != nil {
		return apperrors.UnauthorizedError("invalid or expired token")
	}

	if _, err := s.app.GetSession(c.Request().Context(), claims.UserID, sessionID); err != nil {
		return mapDomainError(err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return fmt.Errorf("failed to upgrade WebSocket: %w", err)
	}

	if err := s.hub.Register(sessionID, conn); err != nil {
		slog.Warn("failed to register live-feed client", "session_id", sessionID, "error", err)
		return nil
	}

	// Read pump, blocks until the connection closes.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.hub.Unregister(sessionID, conn)

	return nil
}
