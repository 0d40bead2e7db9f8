// Package memory provides the default in-process repositories. The user
// store is the normative implementation of the uniqueness guarantee: a
// single lock serializes the check-and-insert over the username index.
package memory

import (
	"context"
	"sync"

	"github.com/warehousehq/warehouse-api/internal/core/domain"
)

// UserStore keeps identities in two mappings: primary (id → user) and a
// username index (normalized username → id). Both are mutated under the
// same lock in Create, so no reader ever observes a half-inserted user.
type UserStore struct {
	mu           sync.RWMutex
	usersByID    map[string]domain.User
	idByUsername map[string]string
}

func NewUserStore() *UserStore {
	return &UserStore{
		usersByID:    make(map[string]domain.User),
		idByUsername: make(map[string]string),
	}
}

// FindByUsername looks up by the normalized form of raw.
func (s *UserStore) FindByUsername(_ context.Context, raw string) (*domain.User, error) {
	normalized := domain.NormalizeUsername(raw)

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.idByUsername[normalized]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user := s.usersByID[id]
	return &user, nil
}

// Create inserts the user, replacing its username with the normalized form.
// The existence check and both map writes happen under one lock: concurrent
// registrations of the same normalized username yield exactly one success.
func (s *UserStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	stored := *user
	stored.Username = domain.NormalizeUsername(user.Username)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.idByUsername[stored.Username]; taken {
		return nil, domain.ErrUsernameTaken
	}

	s.usersByID[stored.ID] = stored
	s.idByUsername[stored.Username] = stored.ID

	created := stored
	return &created, nil
}
