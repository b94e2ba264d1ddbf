package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mockview/mockview/internal/config"
	"github.com/mockview/mockview/internal/domain"
	apperrors "github.com/mockview/mockview/internal/errors"
	"github.com/mockview/mockview/internal/websocket"
)

// healthChecker is the minimal dependency the readiness probe needs.
type healthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	app       domain.AppService
	hub       *websocket.Hub
	jwt       *JWTService
	validate  *validator.Validate
	postgres  healthChecker
	redis     healthChecker
	startTime time.Time
}

func NewServer(cfg *config.Config, app domain.AppService, hub *websocket.Hub, postgres, redis healthChecker, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		app:       app,
		hub:       hub,
		jwt:       NewJWTService(cfg.JWTSecret, cfg.JWTExpiry, clock),
		validate:  validator.New(),
		postgres:  postgres,
		redis:     redis,
		startTime: clock.Now(),
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	slog.Info("starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
