package sessions

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
)

// roleClaim имя claim с ролью пользователя
const roleClaim = "role"

// readClaims извлекает роль и ID пользователя из access-токена
// Подпись не проверяется: токен выдан и проверяется бэкендом клиники
func readClaims(accessToken string) (domain.Role, int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0, fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)
	}

	rawRole, ok := claims[roleClaim].(string)
	if !ok {
		return "", 0, fmt.Errorf("%w: role claim is missing", ErrInvalidToken)
	}

	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return role, userIDFromClaims(claims), nil
}

// userIDFromClaims читает ID пользователя из sub или userId; 0, если его нет
func userIDFromClaims(claims jwt.MapClaims) int64 {
	if subject, err := claims.GetSubject(); err == nil && subject != "" {
		if id, err := strconv.ParseInt(subject, 10, 64); err == nil {
			return id
		}
	}

	if id, ok := claims["userId"].(float64); ok {
		return int64(id)
	}

	return 0
}
