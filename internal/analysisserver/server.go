// Package analysisserver provides the analysis microservice HTTP API.
//
// Stateless scoring endpoints (sentiment, voice, facial, comprehensive)
// over the analysis engine, plus per-session summaries backed by the Redis
// score history. The engine itself never fails; handler errors are always
// input errors.
package analysisserver

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mockview/mockview/internal/analysis"
	"github.com/mockview/mockview/internal/config"
	"github.com/mockview/mockview/internal/domain"
	apperrors "github.com/mockview/mockview/internal/errors"
)

// healthChecker is the minimal dependency the health endpoint needs.
type healthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo   *echo.Echo
	config *config.AnalysisConfig
	scores domain.ScoreStore
	facial *analysis.FacialAnalyzer
	redis  healthChecker
}

func NewServer(cfg *config.AnalysisConfig, scores domain.ScoreStore, redis healthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:   e,
		config: cfg,
		scores: scores,
		facial: analysis.NewFacialAnalyzer(rand.New(rand.NewSource(time.Now().UnixNano()))),
		redis:  redis,
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	slog.Info("starting analysis server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
