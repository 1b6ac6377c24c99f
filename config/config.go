package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	BaseURL        string
	BackendURL     string
	BackendTimeout time.Duration
	TokenCookie    string
	SessionIdle    time.Duration
	SessionMax     int

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	DatabaseDSN string

	Theme     string
	LogLevel  string
	LogFormat string
}

// Offline сообщает, что бэкенд не настроен и все ресурсы обслуживаются из seed-данных
func (c *Config) Offline() bool {
	return c.BackendURL == ""
}

func Load() *Config {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	viper.AutomaticEnv()

	if file := viper.GetString("CONFIG_FILE"); file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Str("file", file).Msg("failed to read config file")
		}
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:8080"),
		BackendURL:        strings.TrimRight(getEnv("BACKEND_URL", ""), "/"),
		BackendTimeout:    time.Duration(getEnvInt("BACKEND_TIMEOUT_SEC", 0)) * time.Second,
		TokenCookie:       getEnv("TOKEN_COOKIE", "rb_admin_token"),
		SessionIdle:       time.Duration(getEnvInt("SESSION_IDLE_MIN", 60)) * time.Minute,
		SessionMax:        getEnvInt("SESSION_MAX", 1000),
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@localhost"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		DatabaseDSN:       getEnv("DATABASE_DSN", ""),
		Theme:             getEnv("THEME", "light"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := viper.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if !viper.IsSet(key) || viper.GetString(key) == "" {
		return defaultValue
	}
	return viper.GetInt(key)
}
