package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/warehousehq/warehouse-api/internal/core/domain"
)

func testGate(cfg Config, at time.Time) *Gate {
	return NewGate(NewValidatorWithClock(cfg, fixedClock(at)))
}

func TestGateAllowsMatchingRole(t *testing.T) {
	cfg := testConfig()
	raw := issueAt(t, cfg, testUser(), baseTime)
	gate := testGate(cfg, baseTime.Add(time.Minute))

	claims, denial := gate.Authorize(raw, domain.RoleAdmin, domain.RoleUser)
	if denial != nil {
		t.Fatalf("unexpected denial: %+v", denial)
	}
	if claims == nil || claims.Username != "adalovelace" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestGateAllowsWhenNoRoleRequired(t *testing.T) {
	cfg := testConfig()
	raw := issueAt(t, cfg, testUser(), baseTime)
	gate := testGate(cfg, baseTime.Add(time.Minute))

	if _, denial := gate.Authorize(raw); denial != nil {
		t.Fatalf("unexpected denial: %+v", denial)
	}
}

func TestGateMissingToken(t *testing.T) {
	gate := testGate(testConfig(), baseTime)

	claims, denial := gate.Authorize("", domain.RoleUser)
	if claims != nil {
		t.Fatalf("claims leaked on denial: %+v", claims)
	}
	if denial == nil || denial.Kind != DenialUnauthenticated {
		t.Fatalf("denial = %+v", denial)
	}
	if denial.Message != MsgInvalidOrExpiredToken {
		t.Errorf("message = %q", denial.Message)
	}
}

func TestGateInvalidToken(t *testing.T) {
	cfg := testConfig()
	gate := testGate(cfg, baseTime.Add(time.Minute))

	expired := issueAt(t, cfg, testUser(), baseTime.Add(-time.Hour))

	for name, raw := range map[string]string{
		"garbage": "not.a.token",
		"expired": expired,
	} {
		claims, denial := gate.Authorize(raw, domain.RoleUser)
		if claims != nil {
			t.Fatalf("%s: claims leaked on denial", name)
		}
		if denial == nil || denial.Kind != DenialUnauthenticated || denial.Message != MsgInvalidOrExpiredToken {
			t.Fatalf("%s: denial = %+v", name, denial)
		}
	}
}

func TestGateUnknownRoleIsUnauthenticated(t *testing.T) {
	cfg := testConfig()
	raw := signClaims(t, cfg.Secret, Claims{
		Username: "adalovelace",
		Roles:    []string{"guest"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "usr_x",
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(baseTime),
			ExpiresAt: jwt.NewNumericDate(baseTime.Add(cfg.ExpiresIn)),
		},
	})

	gate := testGate(cfg, baseTime.Add(time.Minute))
	_, denial := gate.Authorize(raw, domain.RoleUser)
	if denial == nil || denial.Kind != DenialUnauthenticated {
		t.Fatalf("denial = %+v", denial)
	}
	if denial.Message != MsgInvalidRoles {
		t.Errorf("message = %q, want %q", denial.Message, MsgInvalidRoles)
	}
}

func TestGateInsufficientRoleIsForbidden(t *testing.T) {
	cfg := testConfig()
	raw := issueAt(t, cfg, testUser(), baseTime)

	gate := testGate(cfg, baseTime.Add(time.Minute))
	claims, denial := gate.Authorize(raw, domain.RoleAdmin)
	if claims != nil {
		t.Fatalf("claims leaked on denial")
	}
	if denial == nil || denial.Kind != DenialForbidden {
		t.Fatalf("denial = %+v", denial)
	}
	if denial.Message != MsgInsufficientRole {
		t.Errorf("message = %q, want %q", denial.Message, MsgInsufficientRole)
	}
}

func TestGateEmptyRolesIsForbidden(t *testing.T) {
	// A token with no roles authenticates fine but grants no capability.
	cfg := testConfig()
	raw := signClaims(t, cfg.Secret, Claims{
		Username: "adalovelace",
		Roles:    []string{},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "usr_x",
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(baseTime),
			ExpiresAt: jwt.NewNumericDate(baseTime.Add(cfg.ExpiresIn)),
		},
	})

	gate := testGate(cfg, baseTime.Add(time.Minute))
	_, denial := gate.Authorize(raw, domain.RoleAdmin, domain.RoleUser)
	if denial == nil || denial.Kind != DenialForbidden {
		t.Fatalf("denial = %+v", denial)
	}
	if denial.Message != MsgInsufficientRole {
		t.Errorf("message = %q", denial.Message)
	}
}

func TestHasAnyRole(t *testing.T) {
	claims := &Claims{Roles: []string{domain.RoleUser}}

	if !claims.HasAnyRole() {
		t.Error("empty requirement should always pass")
	}
	if !claims.HasAnyRole(domain.RoleAdmin, domain.RoleUser) {
		t.Error("expected user role to satisfy any-of check")
	}
	if claims.HasAnyRole(domain.RoleAdmin) {
		t.Error("user role should not satisfy admin requirement")
	}

	empty := &Claims{}
	if empty.HasAnyRole(domain.RoleUser) {
		t.Error("empty roles should satisfy nothing")
	}
}
