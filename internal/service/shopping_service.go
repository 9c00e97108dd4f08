package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/storage"
)

// ShoppingService serves the read side of shopping lists.
type ShoppingService struct {
	storage *storage.Storage
}

// NewShoppingService creates a new ShoppingService.
func NewShoppingService(store *storage.Storage) *ShoppingService {
	return &ShoppingService{storage: store}
}

// GetList retrieves a shopping list by ID.
func (s *ShoppingService) GetList(ctx context.Context, id uuid.UUID) (*ShoppingList, error) {
	row, err := s.storage.ShoppingLists.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, NewNotFoundError("shopping list %s not found", id)
	}
	converted := ShoppingListFromStorage(row)
	return &converted, nil
}

// ListLists returns all shopping lists, newest first.
func (s *ShoppingService) ListLists(ctx context.Context) ([]ShoppingList, error) {
	rows, err := s.storage.ShoppingLists.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]ShoppingList, len(rows))
	for i, row := range rows {
		converted[i] = ShoppingListFromStorage(row)
	}
	return converted, nil
}
