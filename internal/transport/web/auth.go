package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"rb-admin-console/internal/service/session"
	"rb-admin-console/internal/transport/middleware"
)

// LoginPage отображает страницу входа
func (h *Handler) LoginPage(c echo.Context) error {
	if !h.sessions.Enabled() {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return h.render(c, http.StatusOK, "login", "Sign in", "", map[string]any{"email": ""}, "", "")
}

// Login обрабатывает форму входа
func (h *Handler) Login(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	body := map[string]any{"email": email}

	token, err := h.sessions.Login(c.Request().Context(), email, password)
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return h.render(c, http.StatusUnauthorized, "login", "Sign in", "", body, "Invalid email or password", "")
	case errors.Is(err, session.ErrLoginUnavailable):
		return c.Redirect(http.StatusSeeOther, "/")
	case err != nil:
		log.Error().Err(err).Str("request_id", middleware.RequestIDFrom(c)).Msg("login failed")
		return h.render(c, http.StatusBadGateway, "login", "Sign in", "", body, "Sign in is temporarily unavailable", "")
	}

	h.auth.SetCookie(c, token)
	log.Info().Str("email", email).Msg("operator signed in")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout удаляет cookie и хранилища сессии
func (h *Handler) Logout(c echo.Context) error {
	h.workspace.Forget(middleware.TokenFrom(c))
	h.auth.ClearCookie(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}
