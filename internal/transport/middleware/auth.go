package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"rb-admin-console/internal/backend"
)

const (
	// Issuer - издатель токенов, выпущенных самой консолью в офлайн-режиме
	Issuer = "rb-admin-console"

	tokenKey = "token"
	userKey  = "user"

	sessionTTL = 24 * time.Hour
)

var (
	errForeignSignature = errors.New("token is not signed by the console")
	errForeignToken     = errors.New("token is not issued by the console")
)

// AuthMiddleware - middleware для аутентификации по cookie с токеном.
// С бэкендом его токены не проверяются: бэкенд сам ответит 401, и страница покажет пустое состояние.
// Без бэкенда принимаются только токены, подписанные консолью.
type AuthMiddleware struct {
	jwtSecret  []byte
	cookieName string
	disabled   bool
	offline    bool
}

// NewAuthMiddleware создает новый middleware. disabled - вход не требуется (нет ни бэкенда, ни офлайн-админа).
// offline - бэкенда нет, чужие токены отклоняются.
func NewAuthMiddleware(jwtSecret, cookieName string, disabled, offline bool) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret:  []byte(jwtSecret),
		cookieName: cookieName,
		disabled:   disabled,
		offline:    offline,
	}
}

func (m *AuthMiddleware) CookieName() string {
	return m.cookieName
}

// CookieAuth требует токен в cookie; без него браузер уходит на /login
func (m *AuthMiddleware) CookieAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.disabled {
			return next(c)
		}
		token := backend.TokenFromCookieHeader(c.Request().Header.Get("Cookie"), m.cookieName)
		user, err := m.inspect(token)
		if token == "" || err != nil {
			if err != nil {
				log.Debug().Err(err).Str("request_id", RequestIDFrom(c)).Msg("session rejected")
				m.ClearCookie(c)
			}
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		c.Set(tokenKey, token)
		c.Set(userKey, user)
		return next(c)
	}
}

// OptionalAuth берет токен из Authorization или cookie и никогда не отклоняет запрос.
// Без токена JSON API отдает то же пустое состояние, что и страницы.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c.Request())
		if token == "" {
			token = backend.TokenFromCookieHeader(c.Request().Header.Get("Cookie"), m.cookieName)
		}
		if user, err := m.inspect(token); token != "" && err == nil {
			c.Set(tokenKey, token)
			c.Set(userKey, user)
		}
		return next(c)
	}
}

// inspect проверяет срок действия токена.
// Токены консоли проверяются по подписи, чужие разбираются без проверки.
// В офлайн-режиме чужие токены некому проверить, поэтому они отклоняются.
func (m *AuthMiddleware) inspect(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	claims := jwt.MapClaims{}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		if m.offline {
			return "", errForeignToken
		}
		// не JWT: непрозрачный токен бэкенда
		return "", nil
	}

	iss, _ := claims.GetIssuer()
	switch {
	case iss == Issuer || m.offline:
		if _, err := m.validateJWT(token); err != nil {
			return "", err
		}
		if iss != Issuer {
			return "", errForeignToken
		}
	default:
		if exp, _ := parsed.Claims.GetExpirationTime(); exp != nil && exp.Before(time.Now()) {
			return "", jwt.ErrTokenExpired
		}
	}

	for _, key := range []string{"email", "sub", "user_id"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v, nil
		}
	}
	return "", nil
}

// GenerateJWT выпускает токен сессии для офлайн-входа
func (m *AuthMiddleware) GenerateJWT(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   Issuer,
		"sub":   email,
		"email": email,
		"exp":   now.Add(sessionTTL).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.jwtSecret)
}

// validateJWT проверяет JWT токен
func (m *AuthMiddleware) validateJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errForeignSignature
		}
		return m.jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, echo.ErrUnauthorized
}

// SetCookie сохраняет токен сессии
func (m *AuthMiddleware) SetCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionTTL),
	})
}

// ClearCookie удаляет токен сессии
func (m *AuthMiddleware) ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// TokenFrom возвращает токен сессии текущего запроса
func TokenFrom(c echo.Context) string {
	token, _ := c.Get(tokenKey).(string)
	return token
}

// UserFrom возвращает имя оператора из токена, если оно там есть
func UserFrom(c echo.Context) string {
	user, _ := c.Get(userKey).(string)
	return user
}

// Вспомогательная функция для извлечения токена из заголовка
func extractToken(r *http.Request) string {
	bearToken := r.Header.Get("Authorization")
	parts := strings.Split(bearToken, " ")
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}
