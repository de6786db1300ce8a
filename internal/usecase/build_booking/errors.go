package build_booking

import "errors"

var (
	// ErrInvalidResponse возвращается, когда бэкенд подтвердил бронирование без идентификатора визита
	ErrInvalidResponse = errors.New("build_booking: invalid booking response")
)
