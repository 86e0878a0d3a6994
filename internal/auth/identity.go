// Package auth issues and verifies bearer tokens and carries the
// authenticated session through request contexts.
package auth

import "strings"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleBroker Role = "broker"
	RoleClient Role = "client"
)

// ParseRole normalizes r and reports whether it is a known role.
func ParseRole(r string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(r)))
	switch role {
	case RoleAdmin, RoleBroker, RoleClient:
		return role, true
	default:
		return "", false
	}
}

// Identity is what a verified token proves about its bearer.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

func (i Identity) complete() bool {
	return i.UserID != "" && i.Email != "" && i.Role != ""
}
