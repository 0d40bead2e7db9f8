package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/warehousehq/warehouse-api/internal/core/domain"
)

// Issuer builds and signs access tokens for authenticated users.
type Issuer struct {
	cfg Config
	now func() time.Time
}

// NewIssuer returns an Issuer for the given signing configuration.
func NewIssuer(cfg Config) *Issuer {
	return &Issuer{cfg: cfg, now: time.Now}
}

// NewIssuerWithClock is NewIssuer with an injectable clock, for tests that
// need to mint tokens at a fixed instant.
func NewIssuerWithClock(cfg Config, now func() time.Time) *Issuer {
	return &Issuer{cfg: cfg, now: now}
}

// Issue signs an HS256 token carrying the user's identity and role. The
// roles claim is a sequence; the issuer currently emits exactly one entry.
func (i *Issuer) Issue(user *domain.User) (string, error) {
	now := i.now().UTC()
	claims := Claims{
		Username: user.Username,
		Roles:    []string{user.Role},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    i.cfg.Issuer,
			Audience:  jwt.ClaimStrings{i.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.cfg.ExpiresIn)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
