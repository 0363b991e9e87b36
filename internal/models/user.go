package models

import (
	"errors"
	"fmt"
	"strings"
)

// Role selects which dashboard a signed-in user sees.
type Role string

const (
	RoleDonor    Role = "donor"
	RoleReceiver Role = "receiver"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole accepts "donor" or "receiver" in any case.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleDonor:
		return RoleDonor, nil
	case RoleReceiver:
		return RoleReceiver, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// User is the session produced by a successful sign-in.
type User struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}
