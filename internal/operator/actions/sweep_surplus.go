package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
)

// SweepSurplus moves part of a month's surplus into a savings goal during
// closeout. The budget row is locked and the surplus recomputed inside the
// transaction, so a sweep validated against stale numbers cannot commit.
// The swept amount is recorded on the budget so the rollover into the next
// month excludes it.
type SweepSurplus struct {
	Month  service.Month
	Amount decimal.Decimal
	GoalID *uuid.UUID

	Result service.SavingsGoal

	IAction
}

func (a *SweepSurplus) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Budget.FindByMonthForUpdate(ctx, a.Month.String())
	if err != nil {
		return err
	}
	if row == nil {
		return service.NewNotFoundError("no budget exists for %s", a.Month)
	}

	mb, err := assembleBudget(ctx, writer, row)
	if err != nil {
		return err
	}
	summary := service.BuildCloseoutSummary(mb)

	if err = service.ValidateSweep(summary, a.Amount, a.GoalID != nil); err != nil {
		return err
	}
	if a.GoalID == nil {
		// Nothing to move; the whole variance rolls over at start-new-month.
		return nil
	}

	goal, err := writer.Goal.FindByID(ctx, *a.GoalID)
	if err != nil {
		return err
	}
	if goal == nil {
		return service.NewNotFoundError("goal %s does not exist", *a.GoalID)
	}

	newSaved, err := writer.Goal.Contribute(ctx, *a.GoalID, a.Amount)
	if err != nil {
		return err
	}
	if err = writer.Budget.AddSweptToGoal(ctx, row.ID, a.Amount); err != nil {
		return err
	}

	goal.SavedAmount = newSaved
	a.Result = service.GoalFromStorage(goal)
	return nil
}
