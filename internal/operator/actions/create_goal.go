package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
	goalstore "github.com/carson-networks/budget-engine/internal/storage/goal"
)

// CreateGoal adds a savings goal. SavedAmount starts at zero and only grows
// through contributions.
type CreateGoal struct {
	Name                string
	TargetAmount        decimal.Decimal
	MonthlyContribution decimal.Decimal
	TargetDate          *time.Time

	Result service.SavingsGoal

	IAction
}

func (a *CreateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Name == "" {
		return service.NewValidationError("goal name must not be empty")
	}
	if !a.TargetAmount.IsPositive() {
		return service.NewValidationError("target amount must be positive, got %s", a.TargetAmount)
	}
	if a.MonthlyContribution.IsNegative() {
		return service.NewValidationError("monthly contribution must not be negative, got %s", a.MonthlyContribution)
	}

	id, err := writer.Goal.Insert(ctx, &goalstore.GoalCreate{
		Name:                a.Name,
		TargetAmount:        a.TargetAmount,
		MonthlyContribution: a.MonthlyContribution,
		TargetDate:          a.TargetDate,
	})
	if err != nil {
		return err
	}

	row, err := writer.Goal.FindByID(ctx, id)
	if err != nil {
		return err
	}

	a.Result = service.GoalFromStorage(row)
	return nil
}
