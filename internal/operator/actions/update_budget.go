package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
	budgetstore "github.com/carson-networks/budget-engine/internal/storage/budget"
)

// UpdateBudget patches a month's income or starting balance.
type UpdateBudget struct {
	Month           service.Month
	Income          *decimal.Decimal
	StartingBalance *decimal.Decimal

	Result service.MonthlyBudget

	IAction
}

func (a *UpdateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Income != nil && a.Income.IsNegative() {
		return service.NewValidationError("income must not be negative, got %s", a.Income)
	}

	row, err := writer.Budget.FindByMonthForUpdate(ctx, a.Month.String())
	if err != nil {
		return err
	}
	if row == nil {
		return service.NewNotFoundError("no budget exists for %s", a.Month)
	}

	err = writer.Budget.Update(ctx, row.ID, &budgetstore.BudgetPatch{
		Income:          a.Income,
		StartingBalance: a.StartingBalance,
	})
	if err != nil {
		return err
	}

	row, err = writer.Budget.FindByMonth(ctx, a.Month.String())
	if err != nil {
		return err
	}

	a.Result, err = assembleBudget(ctx, writer, row)
	return err
}
