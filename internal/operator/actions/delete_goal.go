package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
)

// DeleteGoal removes a savings goal. Money already swept into it stays
// recorded on the closed months' reports.
type DeleteGoal struct {
	ID uuid.UUID

	IAction
}

func (a *DeleteGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Goal.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if row == nil {
		return service.NewNotFoundError("goal %s does not exist", a.ID)
	}

	return writer.Goal.Delete(ctx, a.ID)
}
