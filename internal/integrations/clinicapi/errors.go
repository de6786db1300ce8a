package clinicapi

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса и т.п.)
	ErrInternal = errors.New("clinicapi client: internal error")

	// ErrUnavailable возвращается, когда бэкенд клиники недоступен
	ErrUnavailable = errors.New("clinicapi client: backend unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("clinicapi client: invalid response")

	// ErrUnauthorized возвращается, когда запрос отклонен и после обновления токена
	ErrUnauthorized = errors.New("clinicapi client: unauthorized")

	// ErrRefreshFailed возвращается, когда обновить токен не удалось
	ErrRefreshFailed = errors.New("clinicapi client: token refresh failed")

	// ErrForbidden возвращается при недостатке прав
	ErrForbidden = errors.New("clinicapi client: forbidden")

	// ErrNotFound возвращается, когда ресурс не найден
	ErrNotFound = errors.New("clinicapi client: not found")

	// ErrBadRequest возвращается, когда бэкенд отклонил тело запроса
	ErrBadRequest = errors.New("clinicapi client: bad request")

	// ErrConflict возвращается при конфликте (например, блок уже занят)
	ErrConflict = errors.New("clinicapi client: conflict")
)

// TransportError ошибка сетевого взаимодействия с бэкендом
// Передается вызывающему коду без изменений и без повторов
type TransportError struct {
	Op         string
	StatusCode int // 0, если ответ не получен
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	if e.Body == "" {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: status %d: %v: %s", e.Op, e.StatusCode, e.Err, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
