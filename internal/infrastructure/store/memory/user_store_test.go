package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/warehousehq/warehouse-api/internal/core/domain"
)

func TestUserStoreNormalizesUsername(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	created, err := store.Create(ctx, &domain.User{ID: "usr_1", Username: "  AdaLovelace "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Username != "adalovelace" {
		t.Errorf("stored username = %q, want normalized form", created.Username)
	}

	for _, lookup := range []string{"adalovelace", "ADALOVELACE", " AdaLovelace\t"} {
		found, err := store.FindByUsername(ctx, lookup)
		if err != nil {
			t.Fatalf("FindByUsername(%q): %v", lookup, err)
		}
		if found.ID != "usr_1" {
			t.Errorf("FindByUsername(%q) = %q", lookup, found.ID)
		}
	}
}

func TestUserStoreDuplicateAcrossCasing(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, &domain.User{ID: "usr_1", Username: "ada"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := store.Create(ctx, &domain.User{ID: "usr_2", Username: " ADA "})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestUserStoreUnknownUser(t *testing.T) {
	store := NewUserStore()
	_, err := store.FindByUsername(context.Background(), "nobody")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUserStoreReturnsCopies(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, &domain.User{ID: "usr_1", Username: "ada", Role: domain.RoleUser}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := store.FindByUsername(ctx, "ada")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	found.Role = domain.RoleAdmin

	again, err := store.FindByUsername(ctx, "ada")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if again.Role != domain.RoleUser {
		t.Errorf("mutation of a returned user leaked into the store: role = %q", again.Role)
	}
}

func TestUserStoreConcurrentRegistration(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := store.Create(ctx, &domain.User{
				ID:       fmt.Sprintf("usr_%d", n),
				Username: "Ada",
			})
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrUsernameTaken):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if successes != 1 {
		t.Fatalf("successes = %d, want exactly 1", successes)
	}
	if conflicts != attempts-1 {
		t.Fatalf("conflicts = %d, want %d", conflicts, attempts-1)
	}
}
