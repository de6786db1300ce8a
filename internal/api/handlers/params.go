package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
)

var (
	// ErrMissingParam возвращается, когда обязательный параметр не передан
	ErrMissingParam = errors.New("missing parameter")

	// ErrInvalidParam возвращается, когда параметр не удалось разобрать
	ErrInvalidParam = errors.New("invalid parameter")
)

// PathID извлекает положительный числовой ID из пути
func PathID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok || raw == "" {
		return 0, ErrMissingParam
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidParam
	}
	return id, nil
}

// QueryDate извлекает дату YYYY-MM-DD из query параметров
func QueryDate(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, ErrMissingParam
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, ErrInvalidParam
	}
	return date, nil
}
