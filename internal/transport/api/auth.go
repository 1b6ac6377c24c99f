package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"rb-admin-console/internal/service/session"
	"rb-admin-console/internal/transport/middleware"
)

type AuthAPI struct {
	sessions *session.Service
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func NewAuthAPI(sessions *session.Service) *AuthAPI {
	return &AuthAPI{sessions: sessions}
}

func (a *AuthAPI) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	token, err := a.sessions.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	case errors.Is(err, session.ErrLoginUnavailable):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "login is not configured"})
	case err != nil:
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "login failed"})
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// Me возвращает оператора текущей сессии; без токена - пустой объект
func (a *AuthAPI) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":          middleware.UserFrom(c),
		"authenticated": middleware.TokenFrom(c) != "",
	})
}
