package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	shoppingstore "github.com/carson-networks/budget-engine/internal/storage/shoppinglist"
)

// ShoppingItem is one line of a shopping list.
type ShoppingItem struct {
	Name           string
	EstimatedPrice decimal.Decimal
	Quantity       int
}

// ShoppingList is a staging ledger tied to a category. It has no effect on
// the transaction ledger until checkout, which converts it into exactly one
// transaction and deletes it.
type ShoppingList struct {
	ID         uuid.UUID
	Name       string
	CategoryID uuid.UUID
	Items      []ShoppingItem
	CreatedAt  time.Time
}

// TotalCost is the derived estimate: Σ estimatedPrice × quantity.
func (l ShoppingList) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.Items {
		total = total.Add(item.EstimatedPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func ShoppingListFromStorage(row *shoppingstore.ShoppingList) ShoppingList {
	items := make([]ShoppingItem, len(row.Items))
	for i, item := range row.Items {
		items[i] = ShoppingItem{
			Name:           item.Name,
			EstimatedPrice: item.EstimatedPrice,
			Quantity:       item.Quantity,
		}
	}
	return ShoppingList{
		ID:         row.ID,
		Name:       row.Name,
		CategoryID: row.CategoryID,
		Items:      items,
		CreatedAt:  row.CreatedAt,
	}
}
