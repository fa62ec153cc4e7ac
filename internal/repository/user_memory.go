package repository

import (
	"context"
	"sync"

	"items-api/internal/domain/user"
	items_errors "items-api/pkg/errors"
)

// MemoryUserRepository keeps registered users in memory. It is safe for
// concurrent use and intended for single-instance deployments.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  []user.User
	byName map[string]int
	nextID int
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byName: make(map[string]int),
		nextID: 1,
	}
}

func (r *MemoryUserRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[u.Username]; exists {
		return items_errors.ErrUsernameTaken
	}

	u.ID = r.nextID
	r.nextID++
	r.users = append(r.users, *u)
	r.byName[u.Username] = u.ID
	return nil
}

func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// exact, case-sensitive match
	id, ok := r.byName[username]
	if !ok {
		return user.User{}, items_errors.ErrNotFound
	}
	return r.users[id-1], nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id int) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id < 1 || id > len(r.users) {
		return user.User{}, items_errors.ErrNotFound
	}
	return r.users[id-1], nil
}
