package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated - бэкенд ответил 401. Страницы показывают пустое состояние.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrUnexpectedShape - тело ответа не похоже ни на массив, ни на {data}, ни на {items}
	ErrUnexpectedShape = errors.New("unexpected response shape")
	// ErrNotConfigured - адрес бэкенда не задан
	ErrNotConfigured = errors.New("backend is not configured")
)

// StatusError - ответ бэкенда с кодом вне 2xx (кроме 401)
type StatusError struct {
	Code     int
	Method   string
	Endpoint string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s %s returned status %d", e.Method, e.Endpoint, e.Code)
}

// IsStatus проверяет, что err - StatusError с указанным кодом
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
