package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"rb-admin-console/config"
)

var rootCmd = &cobra.Command{
	Use:           "console",
	Short:         "Payment support admin console",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(checkTemplatesCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

// loadConfig читает конфигурацию и настраивает глобальный логгер
func loadConfig() *config.Config {
	cfg := config.Load()
	setupLogger(cfg.LogLevel, cfg.LogFormat)
	return cfg
}

func setupLogger(level, format string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
