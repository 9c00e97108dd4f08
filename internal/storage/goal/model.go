package goal

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal record. SavedAmount only ever grows; the
// single mutation path is Contribute.
type Goal struct {
	ID                  uuid.UUID
	Name                string
	TargetAmount        decimal.Decimal
	SavedAmount         decimal.Decimal
	MonthlyContribution decimal.Decimal
	TargetDate          *time.Time
	CreatedAt           time.Time
}

// GoalCreate is the input for creating a new goal.
type GoalCreate struct {
	Name                string
	TargetAmount        decimal.Decimal
	MonthlyContribution decimal.Decimal
	TargetDate          *time.Time
}

// GoalPatch carries optional field updates. Nil fields are left unchanged.
// SavedAmount is deliberately absent.
type GoalPatch struct {
	Name                *string
	TargetAmount        *decimal.Decimal
	MonthlyContribution *decimal.Decimal
	TargetDate          *time.Time
}

// IGoalTable defines read access to the goals table.
//
//go:generate mockery --name IGoalTable --output mock_IGoalTable.go
type IGoalTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Goal, error)
	List(ctx context.Context) ([]*Goal, error)
}

// IGoalWriter defines transactional access to the goals table.
type IGoalWriter interface {
	IGoalTable
	Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch *GoalPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	Contribute(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
}
