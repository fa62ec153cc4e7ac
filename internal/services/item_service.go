package services

import (
	"context"
	"sort"
	"strings"

	"items-api/internal/domain/item"
	"items-api/internal/repository"
)

type ItemService struct {
	itemRepo repository.ItemRepository
}

func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// ListFilters carries the raw query parameters of GET /items. Empty fields
// mean "no constraint".
type ListFilters struct {
	Name      string
	Completed string
	SortBy    string
	Order     string
}

type UpdateInput struct {
	Name      string
	Completed *bool
}

// List returns items matched by name substring (case-insensitive), then by
// completed status, then sorted by the requested field. The sort is stable so
// equal keys keep their insertion order.
func (s *ItemService) List(ctx context.Context, f ListFilters) ([]item.Item, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if f.Name != "" {
		name := strings.ToLower(f.Name)
		filtered := items[:0]
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Name), name) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	if f.Completed != "" {
		wantCompleted := f.Completed == "true"
		filtered := items[:0]
		for _, it := range items {
			if it.Completed == wantCompleted {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	if f.SortBy != "" {
		desc := f.Order == "desc"
		sort.SliceStable(items, func(i, j int) bool {
			if desc {
				return lessByField(items[j], items[i], f.SortBy)
			}
			return lessByField(items[i], items[j], f.SortBy)
		})
	}

	return items, nil
}

// lessByField compares two items on a named field. Fields that do not exist
// compare as equal, which leaves the prior order untouched.
func lessByField(a, b item.Item, field string) bool {
	switch field {
	case "id":
		return a.ID < b.ID
	case "name":
		return a.Name < b.Name
	case "completed":
		return !a.Completed && b.Completed
	default:
		return false
	}
}

func (s *ItemService) Get(ctx context.Context, id int) (item.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *ItemService) Create(ctx context.Context, name string) (item.Item, error) {
	newItem := &item.Item{
		Name:      name,
		Completed: false,
	}
	if err := s.itemRepo.Create(ctx, newItem); err != nil {
		return item.Item{}, err
	}
	return *newItem, nil
}

// Update overwrites name when a non-empty value is supplied, and completed
// when the field was present in the request at all. An explicit false is a
// real update, not an omission.
func (s *ItemService) Update(ctx context.Context, id int, in UpdateInput) (item.Item, error) {
	it, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return item.Item{}, err
	}

	if in.Name != "" {
		it.Name = in.Name
	}
	if in.Completed != nil {
		it.Completed = *in.Completed
	}

	if err := s.itemRepo.Update(ctx, it); err != nil {
		return item.Item{}, err
	}
	return it, nil
}

func (s *ItemService) Delete(ctx context.Context, id int) error {
	return s.itemRepo.Delete(ctx, id)
}
