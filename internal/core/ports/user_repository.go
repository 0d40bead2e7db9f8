package ports

import (
	"context"

	"github.com/warehousehq/warehouse-api/internal/core/domain"
)

// UserRepository persists registered principals. Implementations normalize
// usernames before lookup and insert, and must make Create an atomic
// check-and-insert: two concurrent registrations of the same normalized
// username yield exactly one success and one domain.ErrUsernameTaken.
type UserRepository interface {
	// FindByUsername returns domain.ErrUserNotFound when absent.
	FindByUsername(ctx context.Context, raw string) (*domain.User, error)
	// Create returns the stored user with its normalized username.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
