package api

import (
	"github.com/labstack/echo/v4"

	"rb-admin-console/internal/collection"
	"rb-admin-console/internal/service/session"
	"rb-admin-console/internal/transport/middleware"
)

// SetupRoutes настраивает маршруты API
func SetupRoutes(
	e *echo.Group,
	workspace *collection.Workspace,
	sessions *session.Service,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Публичные маршруты (без аутентификации)
	authAPI := NewAuthAPI(sessions)
	e.POST("/auth/login", authAPI.Login)

	// Токен необязателен: без него коллекции бэкенда пусты, seed-ресурсы доступны
	optional := e.Group("")
	optional.Use(authMiddleware.OptionalAuth)

	resourceAPI := NewResourceAPI(workspace)
	optional.GET("/resources", resourceAPI.List)
	optional.GET("/resources/:resource", resourceAPI.Records)
	optional.GET("/resources/:resource/:id", resourceAPI.Get)

	// Пользователь
	optional.GET("/me", authAPI.Me)
}
