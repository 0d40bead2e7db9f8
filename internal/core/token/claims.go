package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config carries the shared signing settings. It is built once at startup
// and passed by value into Issuer and Validator; nothing mutates it afterwards.
type Config struct {
	Secret       string
	Issuer       string
	Audience     string
	ExpiresIn    time.Duration
	AllowedRoles []string
}

// Claims is the typed claim set embedded in every access token. Downstream
// code only ever sees this struct, never the raw token or a loose claim map.
type Claims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasAnyRole reports whether the claim set carries at least one of the
// required roles. An empty required list means no role is needed.
func (c *Claims) HasAnyRole(required ...string) bool {
	if len(required) == 0 {
		return true
	}
	for _, want := range required {
		for _, have := range c.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
