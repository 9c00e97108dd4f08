package shoppinglist

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Item is one line of a shopping list, stored inside the list's jsonb column.
type Item struct {
	Name           string          `json:"name"`
	EstimatedPrice decimal.Decimal `json:"estimatedPrice"`
	Quantity       int             `json:"quantity"`
}

// ShoppingList represents a staging ledger tied to a category. It has no
// ledger effect until checkout.
type ShoppingList struct {
	ID         uuid.UUID
	Name       string
	CategoryID uuid.UUID
	Items      []Item
	CreatedAt  time.Time
}

// ShoppingListCreate is the input for creating a new list.
type ShoppingListCreate struct {
	Name       string
	CategoryID uuid.UUID
	Items      []Item
}

// ShoppingListPatch carries optional field updates. A non-nil Items replaces
// the whole item sequence.
type ShoppingListPatch struct {
	Name       *string
	CategoryID *uuid.UUID
	Items      *[]Item
}

// IShoppingListTable defines read access to the shopping_lists table.
//
//go:generate mockery --name IShoppingListTable --output mock_IShoppingListTable.go
type IShoppingListTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ShoppingList, error)
	List(ctx context.Context) ([]*ShoppingList, error)
}

// IShoppingListWriter defines transactional access to the shopping_lists table.
type IShoppingListWriter interface {
	IShoppingListTable
	Insert(ctx context.Context, create *ShoppingListCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch *ShoppingListPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
