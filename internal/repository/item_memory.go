package repository

import (
	"context"
	"sync"

	"items-api/internal/domain/item"
	items_errors "items-api/pkg/errors"
)

// MemoryItemRepository keeps items in memory in insertion order. Ids come from
// a counter that only moves forward, so a delete followed by a create can
// never reuse an id.
type MemoryItemRepository struct {
	mu     sync.RWMutex
	items  []item.Item
	nextID int
}

func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{nextID: 1}
}

func (r *MemoryItemRepository) List(ctx context.Context) ([]item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]item.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryItemRepository) GetByID(ctx context.Context, id int) (item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return item.Item{}, items_errors.ErrItemNotFound
}

func (r *MemoryItemRepository) Create(ctx context.Context, it *item.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	it.ID = r.nextID
	r.nextID++
	r.items = append(r.items, *it)
	return nil
}

func (r *MemoryItemRepository) Update(ctx context.Context, it item.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == it.ID {
			r.items[i] = it
			return nil
		}
	}
	return items_errors.ErrItemNotFound
}

func (r *MemoryItemRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return items_errors.ErrItemNotFound
}
