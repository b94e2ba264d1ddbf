package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/mockview/mockview/internal/errors"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := s.app.Register(c.Request().Context(), req.Email, req.Name, req.Password)
	if err != nil {
		return mapDomainError(err)
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return apperrors.InternalError("failed to issue token", err)
	}

	return c.JSON(http.StatusCreated, authResponse{User: toUserResponse(user), Token: token})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := s.app.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return mapDomainError(err)
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return apperrors.InternalError("failed to issue token", err)
	}

	return c.JSON(http.StatusOK, authResponse{User: toUserResponse(user), Token: token})
}

func (s *Server) handleMe(c echo.Context) error {
	user, err := s.app.GetUser(c.Request().Context(), currentUserID(c))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
