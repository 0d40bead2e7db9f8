package ports

import (
	"context"

	"github.com/warehousehq/warehouse-api/internal/core/domain"
)

// AccessToken is the issuance result returned to the HTTP layer.
type AccessToken struct {
	AccessToken      string `json:"accessToken"`
	TokenType        string `json:"tokenType"`
	ExpiresInSeconds int    `json:"expiresInSeconds"`
}

// AuthService defines the two credential operations the API exposes.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	IssueToken(ctx context.Context, username, password string) (*AccessToken, error)
}
