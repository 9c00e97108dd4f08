package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
	shoppingstore "github.com/carson-networks/budget-engine/internal/storage/shoppinglist"
)

// CreateShoppingList stages a list of intended purchases against a category.
type CreateShoppingList struct {
	Name       string
	CategoryID uuid.UUID
	Items      []service.ShoppingItem

	Result service.ShoppingList

	IAction
}

func validateItems(items []service.ShoppingItem) error {
	for i, item := range items {
		if item.Name == "" {
			return service.NewValidationError("shopping item %d has an empty name", i)
		}
		if !item.EstimatedPrice.IsPositive() {
			return service.NewValidationError(
				"shopping item %q needs a positive estimated price, got %s", item.Name, item.EstimatedPrice)
		}
		if item.Quantity < 1 {
			return service.NewValidationError(
				"shopping item %q needs a quantity of at least 1, got %d", item.Name, item.Quantity)
		}
	}
	return nil
}

func itemsToStorage(items []service.ShoppingItem) []shoppingstore.Item {
	rows := make([]shoppingstore.Item, len(items))
	for i, item := range items {
		rows[i] = shoppingstore.Item{
			Name:           item.Name,
			EstimatedPrice: item.EstimatedPrice,
			Quantity:       item.Quantity,
		}
	}
	return rows
}

func (a *CreateShoppingList) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Name == "" {
		return service.NewValidationError("shopping list name must not be empty")
	}
	if err := validateItems(a.Items); err != nil {
		return err
	}

	category, err := writer.Category.FindByID(ctx, a.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return service.NewNotFoundError("category %s does not exist", a.CategoryID)
	}

	id, err := writer.ShoppingList.Insert(ctx, &shoppingstore.ShoppingListCreate{
		Name:       a.Name,
		CategoryID: a.CategoryID,
		Items:      itemsToStorage(a.Items),
	})
	if err != nil {
		return err
	}

	row, err := writer.ShoppingList.FindByID(ctx, id)
	if err != nil {
		return err
	}

	a.Result = service.ShoppingListFromStorage(row)
	return nil
}
