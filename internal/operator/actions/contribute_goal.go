package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
)

// ContributeToGoal adds money to a goal. This shares the storage-level
// Contribute increment with the closeout sweep, so SavedAmount can only grow.
type ContributeToGoal struct {
	GoalID uuid.UUID
	Amount decimal.Decimal

	Result service.SavingsGoal

	IAction
}

func (a *ContributeToGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	if !a.Amount.IsPositive() {
		return service.NewValidationError("contribution amount must be positive, got %s", a.Amount)
	}

	row, err := writer.Goal.FindByID(ctx, a.GoalID)
	if err != nil {
		return err
	}
	if row == nil {
		return service.NewNotFoundError("goal %s does not exist", a.GoalID)
	}

	newSaved, err := writer.Goal.Contribute(ctx, a.GoalID, a.Amount)
	if err != nil {
		return err
	}

	row.SavedAmount = newSaved
	a.Result = service.GoalFromStorage(row)
	return nil
}
