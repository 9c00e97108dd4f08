package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
	shoppingstore "github.com/carson-networks/budget-engine/internal/storage/shoppinglist"
)

// UpdateShoppingList patches a list. A non-nil Items replaces the whole item
// sequence.
type UpdateShoppingList struct {
	ID         uuid.UUID
	Name       *string
	CategoryID *uuid.UUID
	Items      *[]service.ShoppingItem

	Result service.ShoppingList

	IAction
}

func (a *UpdateShoppingList) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Name != nil && *a.Name == "" {
		return service.NewValidationError("shopping list name must not be empty")
	}
	if a.Items != nil {
		if err := validateItems(*a.Items); err != nil {
			return err
		}
	}

	row, err := writer.ShoppingList.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if row == nil {
		return service.NewNotFoundError("shopping list %s does not exist", a.ID)
	}

	if a.CategoryID != nil {
		category, err := writer.Category.FindByID(ctx, *a.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return service.NewNotFoundError("category %s does not exist", *a.CategoryID)
		}
	}

	patch := &shoppingstore.ShoppingListPatch{
		Name:       a.Name,
		CategoryID: a.CategoryID,
	}
	if a.Items != nil {
		items := itemsToStorage(*a.Items)
		patch.Items = &items
	}
	if err = writer.ShoppingList.Update(ctx, a.ID, patch); err != nil {
		return err
	}

	row, err = writer.ShoppingList.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}

	a.Result = service.ShoppingListFromStorage(row)
	return nil
}
