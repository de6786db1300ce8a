package domain

import "time"

// Credentials access/refresh token pair issued by the clinic backend
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// IsEmpty returns true if no access token is present
func (c Credentials) IsEmpty() bool {
	return c.AccessToken == ""
}

// Session authenticated gateway session.
// Role is decided once at login and never re-derived.
type Session struct {
	ID          string
	UserID      int64
	Role        Role
	Credentials Credentials
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
