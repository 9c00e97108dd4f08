package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
	goalstore "github.com/carson-networks/budget-engine/internal/storage/goal"
)

// UpdateGoal patches a goal's descriptive fields. The saved amount is not
// patchable; contributions are the only way it moves.
type UpdateGoal struct {
	ID                  uuid.UUID
	Name                *string
	TargetAmount        *decimal.Decimal
	MonthlyContribution *decimal.Decimal
	TargetDate          *time.Time

	Result service.SavingsGoal

	IAction
}

func (a *UpdateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Name != nil && *a.Name == "" {
		return service.NewValidationError("goal name must not be empty")
	}
	if a.TargetAmount != nil && !a.TargetAmount.IsPositive() {
		return service.NewValidationError("target amount must be positive, got %s", a.TargetAmount)
	}
	if a.MonthlyContribution != nil && a.MonthlyContribution.IsNegative() {
		return service.NewValidationError("monthly contribution must not be negative, got %s", a.MonthlyContribution)
	}

	row, err := writer.Goal.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if row == nil {
		return service.NewNotFoundError("goal %s does not exist", a.ID)
	}

	err = writer.Goal.Update(ctx, a.ID, &goalstore.GoalPatch{
		Name:                a.Name,
		TargetAmount:        a.TargetAmount,
		MonthlyContribution: a.MonthlyContribution,
		TargetDate:          a.TargetDate,
	})
	if err != nil {
		return err
	}

	row, err = writer.Goal.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}

	a.Result = service.GoalFromStorage(row)
	return nil
}
