package budget

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly budget record. SweptToGoal is the durable
// record of the closeout sweep so the rollover into the next month can
// exclude surplus already disposed to a goal.
type Budget struct {
	ID              uuid.UUID
	Month           string
	Income          decimal.Decimal
	StartingBalance decimal.Decimal
	SweptToGoal     decimal.Decimal
	CreatedAt       time.Time
}

// BudgetCreate is the input for creating a new monthly budget.
type BudgetCreate struct {
	Month           string
	Income          decimal.Decimal
	StartingBalance decimal.Decimal
}

// BudgetPatch carries optional field updates. Nil fields are left unchanged.
type BudgetPatch struct {
	Income          *decimal.Decimal
	StartingBalance *decimal.Decimal
}

// IBudgetTable defines read access to the budgets table.
//
//go:generate mockery --name IBudgetTable --output mock_IBudgetTable.go
type IBudgetTable interface {
	FindByMonth(ctx context.Context, month string) (*Budget, error)
}

// IBudgetWriter defines transactional access to the budgets table.
type IBudgetWriter interface {
	IBudgetTable
	FindByMonthForUpdate(ctx context.Context, month string) (*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch *BudgetPatch) error
	AddSweptToGoal(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}
