package middleware

import (
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// RecoveryMiddleware восстанавливается после паник
func RecoveryMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("stack", string(debug.Stack())).
					Str("path", c.Request().URL.Path).
					Str("request_id", RequestIDFrom(c)).
					Msg("panic recovered")

				if strings.HasPrefix(c.Request().URL.Path, "/api/") {
					err = c.JSON(http.StatusInternalServerError, map[string]string{
						"error": "internal server error",
					})
					return
				}
				err = c.String(http.StatusInternalServerError, "Internal server error")
			}
		}()

		return next(c)
	}
}

// Recovery возвращает middleware для восстановления
func Recovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RecoveryMiddleware(next)
	}
}
