package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
)

// DeleteShoppingList discards a list without touching the ledger.
type DeleteShoppingList struct {
	ID uuid.UUID

	IAction
}

func (a *DeleteShoppingList) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.ShoppingList.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if row == nil {
		return service.NewNotFoundError("shopping list %s does not exist", a.ID)
	}

	return writer.ShoppingList.Delete(ctx, a.ID)
}
