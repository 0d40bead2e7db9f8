package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AllowedRoles is the closed set of capability labels a token may carry.
// A role outside this set makes the whole roles claim untrustworthy.
var AllowedRoles = []string{RoleAdmin, RoleUser}

var ErrUsernameTaken = errors.New("username already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a registered principal. Username is stored in normalized
// (trimmed, lower-cased) form; the store is the source of truth for that.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NormalizeUsername applies the creation-time normalization rule. Lookups
// use the same rule so "AdaLovelace " and "adalovelace" collide.
func NormalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// IsAllowedRole reports whether role belongs to the closed role set.
func IsAllowedRole(role string) bool {
	for _, r := range AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}
