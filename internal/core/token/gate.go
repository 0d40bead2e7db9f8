package token

import "errors"

// DenialKind distinguishes the two user-visible refusal classes.
type DenialKind string

const (
	DenialUnauthenticated DenialKind = "unauthenticated"
	DenialForbidden       DenialKind = "forbidden"
)

// The only three messages a caller is ever shown for a denied request.
const (
	MsgInvalidOrExpiredToken = "Invalid or expired token"
	MsgInvalidRoles          = "Token contains invalid roles"
	MsgInsufficientRole      = "Insufficient permissions"
)

// Denial is the typed outcome of a refused authorization attempt. It never
// carries partial identity information.
type Denial struct {
	Kind    DenialKind
	Message string
}

func (d *Denial) Error() string {
	return d.Message
}

// Gate turns validator outcomes plus a required-role check into an allow
// decision or a Denial. Anything that undermines trust in the token itself
// (missing, malformed, forged, expired, wrong issuer/audience, unknown role
// label) is Unauthenticated; only a trusted token whose role set lacks the
// needed capability is Forbidden.
type Gate struct {
	validator *Validator
}

// NewGate wraps a Validator with the denial policy.
func NewGate(validator *Validator) *Gate {
	return &Gate{validator: validator}
}

// Authorize validates raw and checks that the claims carry at least one of
// the required roles. A nil Denial means the request is allowed and the
// returned claims identify the caller.
func (g *Gate) Authorize(raw string, required ...string) (*Claims, *Denial) {
	if raw == "" {
		return nil, &Denial{Kind: DenialUnauthenticated, Message: MsgInvalidOrExpiredToken}
	}

	claims, err := g.validator.Validate(raw)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) && ve.Reason == ReasonInvalidRoles {
			// The roles claim itself is untrustworthy: an authentication
			// failure, not an authorization one.
			return nil, &Denial{Kind: DenialUnauthenticated, Message: MsgInvalidRoles}
		}
		return nil, &Denial{Kind: DenialUnauthenticated, Message: MsgInvalidOrExpiredToken}
	}

	if !claims.HasAnyRole(required...) {
		return nil, &Denial{Kind: DenialForbidden, Message: MsgInsufficientRole}
	}

	return claims, nil
}
