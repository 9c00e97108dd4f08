package budget

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Writer struct {
	tx *sql.Tx
	Reader
}

var _ IBudgetWriter = (*Writer)(nil)

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByMonthForUpdate locks the budget row for the remainder of the
// transaction. Returns nil when no budget exists for the month.
func (w *Writer) FindByMonthForUpdate(ctx context.Context, month string) (*Budget, error) {
	row := w.tx.QueryRowContext(ctx,
		"SELECT "+budgetColumns+" FROM budgets WHERE month = $1 FOR UPDATE", month)
	return scanBudget(row)
}

func (w *Writer) Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	_, err = w.tx.ExecContext(ctx,
		`INSERT INTO budgets (id, month, income, starting_balance, swept_to_goal)
		 VALUES ($1, $2, $3, $4, 0)`,
		id, create.Month, create.Income, create.StartingBalance)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (w *Writer) Update(ctx context.Context, id uuid.UUID, patch *BudgetPatch) error {
	_, err := w.tx.ExecContext(ctx,
		`UPDATE budgets SET
			income = COALESCE($2, income),
			starting_balance = COALESCE($3, starting_balance)
		 WHERE id = $1`,
		id, patch.Income, patch.StartingBalance)
	return err
}

func (w *Writer) AddSweptToGoal(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	_, err := w.tx.ExecContext(ctx,
		"UPDATE budgets SET swept_to_goal = swept_to_goal + $2 WHERE id = $1",
		id, amount)
	return err
}
