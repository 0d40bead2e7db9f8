package service

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/warehousehq/warehouse-api/internal/core/domain"
	"github.com/warehousehq/warehouse-api/internal/core/ports"
	"github.com/warehousehq/warehouse-api/internal/core/token"
)

// AuthService implements registration and token issuance.
type AuthService struct {
	users     ports.UserRepository
	hasher    *PasswordHasher
	issuer    *token.Issuer
	expiresIn time.Duration
	log       zerolog.Logger
}

// NewAuthService wires the credential store, the password hasher, and the
// token issuer into the two boundary operations.
func NewAuthService(users ports.UserRepository, hasher *PasswordHasher, issuer *token.Issuer, expiresIn time.Duration, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:     users,
		hasher:    hasher,
		issuer:    issuer,
		expiresIn: expiresIn,
		log:       log,
	}
}

// Register creates a new principal with the fixed "user" role. The store
// owns username normalization and the uniqueness check.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           newUserID(),
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// IssueToken verifies the credential pair and signs an access token. An
// unknown username and a wrong password are indistinguishable to the caller.
func (s *AuthService) IssueToken(ctx context.Context, username, password string) (*ports.AccessToken, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("access token issued")
	return &ports.AccessToken{
		AccessToken:      signed,
		TokenType:        "Bearer",
		ExpiresInSeconds: int(s.expiresIn.Seconds()),
	}, nil
}

// newUserID returns an identifier in the form usr_<ULID>.
func newUserID() string {
	return "usr_" + ulid.Make().String()
}
