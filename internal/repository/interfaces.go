package repository

import (
	"context"

	"items-api/internal/domain/item"
	"items-api/internal/domain/user"
)

type UserRepository interface {
	// Create assigns the user's id and stores it. Returns ErrUsernameTaken
	// when the username is already registered.
	Create(ctx context.Context, u *user.User) error
	GetByUsername(ctx context.Context, username string) (user.User, error)
	GetByID(ctx context.Context, id int) (user.User, error)
}

type ItemRepository interface {
	List(ctx context.Context) ([]item.Item, error)
	GetByID(ctx context.Context, id int) (item.Item, error)
	// Create assigns the item's id from a monotonic counter and appends it.
	Create(ctx context.Context, it *item.Item) error
	Update(ctx context.Context, it item.Item) error
	Delete(ctx context.Context, id int) error
}
