package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Служебные пути, которые опрашиваются часто и не попадают в лог запросов
var quietPaths = map[string]bool{
	"/metrics": true,
	"/healthz": true,
}

// LoggerMiddleware пишет одно событие на запрос. Уровень зависит от ответа:
// ошибка обработчика или 5xx - error, 4xx - warn, остальное - info.
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if quietPaths[c.Request().URL.Path] {
			return next(c)
		}
		start := time.Now()

		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = http.StatusInternalServerError
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}

		var logEvent *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			logEvent = log.Error()
		case status >= http.StatusBadRequest:
			logEvent = log.Warn()
		default:
			logEvent = log.Info()
		}
		if err != nil {
			logEvent = logEvent.Err(err)
		}

		logEvent.Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Str("resource", c.Param("resource")).
			Int("status", status).
			Str("ip", c.RealIP()).
			Dur("latency", time.Since(start)).
			Str("user_agent", c.Request().UserAgent()).
			Str("user", UserFrom(c)).
			Str("request_id", RequestIDFrom(c)).
			Msg("request")

		return err
	}
}

// RequestLogger возвращает middleware для логирования
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return LoggerMiddleware(next)
	}
}
