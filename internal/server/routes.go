package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth
	s.echo.POST("/api/auth/register", s.handleRegister)
	s.echo.POST("/api/auth/login", s.handleLogin)
	s.echo.GET("/api/auth/me", s.handleMe, s.requireAuth)

	// Sessions
	s.echo.POST("/api/sessions", s.handleCreateSession, s.requireAuth)
	s.echo.GET("/api/sessions", s.handleListSessions, s.requireAuth)
	s.echo.GET("/api/sessions/:id", s.handleGetSession, s.requireAuth)
	s.echo.PATCH("/api/sessions/:id", s.handleUpdateSession, s.requireAuth)
	s.echo.DELETE("/api/sessions/:id", s.handleDeleteSession, s.requireAuth)

	// Transcript
	s.echo.POST("/api/sessions/:id/transcript", s.handleAppendTranscript, s.requireAuth)
	s.echo.GET("/api/sessions/:id/transcript", s.handleGetTranscript, s.requireAuth)

	// Interviewer + analysis
	s.echo.POST("/api/sessions/:id/respond", s.handleInterviewerRespond, s.requireAuth)
	s.echo.GET("/api/sessions/:id/analysis/summary", s.handleAnalysisSummary, s.requireAuth)

	// Live feed (token passed as query parameter; browsers cannot set
	// headers on WebSocket dials)
	s.echo.GET("/ws/sessions/:id", s.handleWebSocket)
}
