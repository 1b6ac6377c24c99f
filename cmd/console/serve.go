package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"rb-admin-console/config"
	"rb-admin-console/internal/backend"
	"rb-admin-console/internal/collection"
	"rb-admin-console/internal/domain"
	"rb-admin-console/internal/repository"
	repoInterface "rb-admin-console/internal/repository/interface"
	"rb-admin-console/internal/repository/postgres"
	"rb-admin-console/internal/service/session"
	"rb-admin-console/internal/transport/api"
	"rb-admin-console/internal/transport/middleware"
	"rb-admin-console/internal/transport/web"
	"rb-admin-console/internal/web/templates"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the admin console HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	// Журнал мутаций: Postgres, если задан DSN, иначе в лог и в память
	journal, closeJournal, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer closeJournal()

	metrics := backend.NewMetrics(prometheus.DefaultRegisterer)
	client := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout, metrics)
	if cfg.Offline() {
		log.Warn().Msg("BACKEND_URL is not set, all resources are served from seed data")
	}

	renderer, err := templates.New()
	if err != nil {
		return err
	}

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret, cfg.TokenCookie, false, cfg.Offline())
	sessions := session.NewService(client, authMiddleware, cfg.AdminEmail, cfg.AdminPasswordHash)
	if !sessions.Enabled() {
		log.Warn().Msg("no login method configured, console pages are open")
		authMiddleware = middleware.NewAuthMiddleware(cfg.JWTSecret, cfg.TokenCookie, true, cfg.Offline())
	}

	workspace := collection.NewWorkspace(domain.DefaultRegistry(), client, journal, metrics, cfg.SessionIdle)
	workspace.SetMaxSessions(cfg.SessionMax)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go workspace.Run(ctx)

	// Создаем Echo сервер
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recovery())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": "ok", "offline": cfg.Offline()})
	})

	// API
	apiGroup := e.Group("/api")
	apiGroup.Use(echomw.CORS())
	api.SetupRoutes(apiGroup, workspace, sessions, authMiddleware)

	// Веб-интерфейс
	webHandler := web.NewHandler(workspace, client, journal, renderer, sessions, authMiddleware, templates.ResolveTheme(cfg.Theme))
	web.SetupRoutes(e.Group(""), webHandler, authMiddleware)

	// Graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.BackendURL).Msg("console started")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func openJournal(cfg *config.Config) (repoInterface.JournalRepository, func(), error) {
	if cfg.DatabaseDSN == "" {
		return repository.NewMemoryJournal(0), func() {}, nil
	}

	// Подключаемся к БД
	db, err := sqlx.Connect("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Выполняем миграции
	if err := postgres.RunMigrations(db.DB); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return postgres.NewJournalRepository(db), func() { db.Close() }, nil
}
