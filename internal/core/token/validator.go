package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Validation failure reasons, one per chain stage. These are internal
// diagnostics: the HTTP layer must never expose them directly.
const (
	ReasonMalformedToken   = "malformed_token"
	ReasonInvalidSignature = "invalid_signature"
	ReasonExpiredToken     = "expired_token"
	ReasonInvalidIssuer    = "invalid_issuer"
	ReasonInvalidAudience  = "invalid_audience"
	ReasonInvalidRoles     = "invalid_roles"
)

// ValidationError reports which stage of the validation chain rejected a token.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "token validation failed: " + e.Reason
}

// Validator applies a fixed-order chain of checks to a raw token:
// structure/signature, expiry, issuer, audience, role allow-list. Signature
// is verified before any claim is trusted; after that each check is
// independent and the chain stops at the first failure.
type Validator struct {
	cfg    Config
	parser *jwt.Parser
	now    func() time.Time
}

// NewValidator returns a Validator for the given signing configuration.
func NewValidator(cfg Config) *Validator {
	return NewValidatorWithClock(cfg, time.Now)
}

// NewValidatorWithClock is NewValidator with an injectable clock.
func NewValidatorWithClock(cfg Config, now func() time.Time) *Validator {
	// Claims validation is disabled in the parser so the chain below owns
	// both the ordering and the failure reasons.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	return &Validator{cfg: cfg, parser: parser, now: now}
}

// Validate runs the chain and returns the typed claim set on success, or a
// *ValidationError naming the failed stage.
func (v *Validator) Validate(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := v.parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return []byte(v.cfg.Secret), nil
	})
	if err != nil || !parsed.Valid {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, &ValidationError{Reason: ReasonMalformedToken}
		}
		return nil, &ValidationError{Reason: ReasonInvalidSignature}
	}

	now := v.now()
	if claims.ExpiresAt == nil || !now.Before(claims.ExpiresAt.Time) {
		return nil, &ValidationError{Reason: ReasonExpiredToken}
	}
	if claims.IssuedAt != nil && now.Before(claims.IssuedAt.Time) {
		return nil, &ValidationError{Reason: ReasonExpiredToken}
	}

	if claims.Issuer != v.cfg.Issuer {
		return nil, &ValidationError{Reason: ReasonInvalidIssuer}
	}

	if !containsAudience(claims.Audience, v.cfg.Audience) {
		return nil, &ValidationError{Reason: ReasonInvalidAudience}
	}

	// An empty roles claim is structurally valid; it just grants nothing.
	for _, role := range claims.Roles {
		if !containsRole(v.cfg.AllowedRoles, role) {
			return nil, &ValidationError{Reason: ReasonInvalidRoles}
		}
	}

	return claims, nil
}

func containsAudience(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}

func containsRole(allowed []string, role string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
