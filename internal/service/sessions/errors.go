package sessions

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidCredentials возвращается, когда бэкенд отклонил email или пароль
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken возвращается, когда из токена нельзя определить роль пользователя
	ErrInvalidToken = errors.New("access token has no usable role claim")

	// ErrSessionNotFound возвращается, когда сессия не найдена или завершена
	ErrSessionNotFound = errors.New("session not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
