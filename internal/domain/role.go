package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownRole returned when a role claim is not one of the known roles
var ErrUnknownRole = errors.New("unknown role")

// Role closed set of user roles, decided once at authentication time
type Role string

const (
	RoleGuest        Role = "guest"
	RolePatient      Role = "patient"
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
	RoleAdmin        Role = "admin"
)

// ParseRole maps a role claim to a Role by exact match.
// Guest is never issued by the backend and cannot be parsed.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RolePatient, RoleDoctor, RoleReceptionist, RoleAdmin:
		return Role(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, value)
	}
}

func (r Role) String() string {
	return string(r)
}

// In returns true if r is one of the given roles
func (r Role) In(roles ...Role) bool {
	for _, role := range roles {
		if r == role {
			return true
		}
	}
	return false
}
