package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
)

// DeleteCategory removes a category. Categories with recorded transactions
// are protected; the ledger never loses its category references.
type DeleteCategory struct {
	ID uuid.UUID

	IAction
}

func (a *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Category.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if row == nil {
		return service.NewNotFoundError("category %s does not exist", a.ID)
	}

	count, err := writer.Transaction.CountByCategory(ctx, a.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return service.NewConflictError(
			"category %q has %d linked transactions and cannot be deleted", row.Name, count)
	}

	return writer.Category.Delete(ctx, a.ID)
}
