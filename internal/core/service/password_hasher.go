package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher wraps bcrypt with a tunable work factor. Digests are
// self-salted, so Hash is never deterministic and digests are only ever
// checked through Verify.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher clamps cost into bcrypt's supported range.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash produces a salted one-way digest of plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify recomputes and compares in constant time. A malformed digest is
// reported as a plain mismatch: callers cannot tell "corrupt hash" apart
// from "wrong password" through the return value or an error type.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
