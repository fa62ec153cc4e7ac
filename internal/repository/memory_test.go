package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"items-api/internal/domain/item"
	"items-api/internal/domain/user"
	items_errors "items-api/pkg/errors"
)

func TestUserRepositoryUniqueness(t *testing.T) {
	r := NewMemoryUserRepository()
	ctx := context.Background()

	u := &user.User{Username: "alice", PasswordHash: "hash"}
	if err := r.Create(ctx, u); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if u.ID != 1 {
		t.Errorf("expected id 1, got %d", u.ID)
	}

	dup := &user.User{Username: "alice", PasswordHash: "other"}
	if err := r.Create(ctx, dup); !errors.Is(err, items_errors.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}

	got, err := r.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.PasswordHash != "hash" {
		t.Errorf("duplicate create overwrote the original user")
	}

	if _, err := r.GetByUsername(ctx, "ALICE"); !errors.Is(err, items_errors.ErrNotFound) {
		t.Errorf("lookup must be case-sensitive, got %v", err)
	}
}

func TestItemRepositoryConcurrentCreates(t *testing.T) {
	r := NewMemoryItemRepository()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if err := r.Create(ctx, &item.Item{Name: "x"}); err != nil {
				t.Errorf("create failed: %v", err)
			}
		}()
	}
	wg.Wait()

	items, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != n {
		t.Fatalf("expected %d items, got %d", n, len(items))
	}

	seen := make(map[int]bool, n)
	for _, it := range items {
		if seen[it.ID] {
			t.Fatalf("duplicate id %d assigned", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestItemRepositoryListIsACopy(t *testing.T) {
	r := NewMemoryItemRepository()
	ctx := context.Background()

	if err := r.Create(ctx, &item.Item{Name: "a"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	items, _ := r.List(ctx)
	items[0].Name = "mutated"

	got, err := r.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "a" {
		t.Error("mutating a listed item leaked into the store")
	}
}
