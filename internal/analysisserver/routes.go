package analysisserver

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	s.echo.POST("/analyze/sentiment", s.handleSentiment)
	s.echo.POST("/analyze/voice", s.handleVoice)
	s.echo.POST("/analyze/facial", s.handleFacial)
	s.echo.POST("/analyze/comprehensive", s.handleComprehensive)

	s.echo.GET("/sessions/:id/summary", s.handleSummary)
	s.echo.DELETE("/sessions/:id/history", s.handleResetHistory)
}
