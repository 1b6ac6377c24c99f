package web

import (
	"github.com/labstack/echo/v4"

	"rb-admin-console/internal/transport/middleware"
)

func SetupRoutes(
	e *echo.Group,
	handler *Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Публичные маршруты
	e.GET("/login", handler.LoginPage)
	e.POST("/login", handler.Login)

	// Защищенные маршруты
	protected := e.Group("")
	protected.Use(authMiddleware.CookieAuth)
	{
		protected.GET("/", handler.Dashboard)
		protected.POST("/logout", handler.Logout)
		protected.GET("/logout", handler.Logout)
		protected.POST("/theme", handler.SetTheme)

		protected.GET("/models/:resource", handler.ListPage)
		protected.POST("/models/:resource", handler.Save)
		protected.POST("/models/:resource/refresh", handler.Refresh)
		protected.GET("/models/:resource/:id", handler.DetailPage)
		protected.POST("/models/:resource/:id", handler.Save)
		protected.GET("/models/:resource/:id/delete", handler.ConfirmDelete)
		protected.POST("/models/:resource/:id/delete", handler.Delete)

		protected.GET("/stats/openai", handler.OpenAIStats)
		protected.GET("/stats/helpdesk-tags", handler.HelpdeskTagStats)
		protected.GET("/stats/support-messages", handler.SupportMessageStats)

		protected.GET("/playground", handler.PlaygroundPage)
		protected.POST("/playground/extract", handler.Extract)
		protected.POST("/playground/classify", handler.Classify)

		protected.GET("/journal", handler.JournalPage)
	}
}
