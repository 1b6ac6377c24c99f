// Package session - вход оператора: через бэкенд или по локальной учетной записи.
package session

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"rb-admin-console/internal/backend"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginUnavailable   = errors.New("login is not configured")
)

// TokenIssuer выпускает токен сессии для офлайн-входа
type TokenIssuer interface {
	GenerateJWT(email string) (string, error)
}

// Remote - вход через бэкенд
type Remote interface {
	Configured() bool
	Login(ctx context.Context, email, password string) (string, error)
}

// Service выбирает способ входа по конфигурации
type Service struct {
	remote        Remote
	issuer        TokenIssuer
	adminEmail    string
	adminPassHash string
}

func NewService(remote Remote, issuer TokenIssuer, adminEmail, adminPassHash string) *Service {
	return &Service{
		remote:        remote,
		issuer:        issuer,
		adminEmail:    adminEmail,
		adminPassHash: adminPassHash,
	}
}

// Enabled сообщает, что войти вообще можно
func (s *Service) Enabled() bool {
	return (s.remote != nil && s.remote.Configured()) || s.offline()
}

func (s *Service) offline() bool {
	return s.adminEmail != "" && s.adminPassHash != ""
}

// Login возвращает токен сессии
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	if s.remote != nil && s.remote.Configured() {
		token, err := s.remote.Login(ctx, email, password)
		if errors.Is(err, backend.ErrUnauthenticated) || backend.IsStatus(err, 400) || backend.IsStatus(err, 403) {
			return "", ErrInvalidCredentials
		}
		if err != nil {
			log.Warn().Err(err).Str("email", email).Msg("backend login failed")
			return "", err
		}
		return token, nil
	}

	if !s.offline() {
		return "", ErrLoginUnavailable
	}
	if !strings.EqualFold(email, s.adminEmail) || !CheckPassword(password, s.adminPassHash) {
		return "", ErrInvalidCredentials
	}
	return s.issuer.GenerateJWT(s.adminEmail)
}

// HashPassword хеширует пароль
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword проверяет пароль
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
