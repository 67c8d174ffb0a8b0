package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the access level attached to an identity. Call sites that only need
// to know whether a caller is privileged should use IsElevated rather than
// comparing values, so new roles can be added without touching them.
type Role string

const (
	RoleStandard Role = "standard"
	RoleElevated Role = "elevated"
)

// ParseRole converts user input into a Role. An empty string defaults to
// RoleStandard; anything outside the known set is rejected.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoleStandard:
		return RoleStandard, nil
	case RoleElevated:
		return RoleElevated, nil
	default:
		return "", NewValidationError(fmt.Sprintf("role must be one of: %s %s", RoleStandard, RoleElevated))
	}
}

// IsElevated reports whether the role may manage identities and the catalog.
func (r Role) IsElevated() bool {
	return r == RoleElevated
}

// Identity models a stored login principal.
type Identity struct {
	ID         string    `json:"id"`
	LoginKey   string    `json:"email"`
	SecretHash string    `json:"-"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}
