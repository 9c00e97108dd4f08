package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	goalstore "github.com/carson-networks/budget-engine/internal/storage/goal"
)

// SavingsGoal represents a target-based sub-ledger. SavedAmount is
// monotonically non-decreasing; there is no withdraw operation.
type SavingsGoal struct {
	ID                  uuid.UUID
	Name                string
	TargetAmount        decimal.Decimal
	SavedAmount         decimal.Decimal
	MonthlyContribution decimal.Decimal
	TargetDate          *time.Time
	CreatedAt           time.Time
}

var oneHundred = decimal.NewFromInt(100)

// ProgressPercent returns saved/target × 100, uncapped.
func (g SavingsGoal) ProgressPercent() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.SavedAmount.Div(g.TargetAmount).Mul(oneHundred)
}

// Completed is derived, never stored; a completed goal is not deleted.
func (g SavingsGoal) Completed() bool {
	return g.SavedAmount.GreaterThanOrEqual(g.TargetAmount)
}

func GoalFromStorage(row *goalstore.Goal) SavingsGoal {
	return SavingsGoal{
		ID:                  row.ID,
		Name:                row.Name,
		TargetAmount:        row.TargetAmount,
		SavedAmount:         row.SavedAmount,
		MonthlyContribution: row.MonthlyContribution,
		TargetDate:          row.TargetDate,
		CreatedAt:           row.CreatedAt,
	}
}
