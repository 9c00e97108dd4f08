package budget

import (
	"context"
	"database/sql"
	"errors"
)

type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Reader struct {
	exec executor
}

var _ IBudgetTable = (*Reader)(nil)

func NewReader(exec executor) *Reader {
	return &Reader{exec: exec}
}

const budgetColumns = "id, month, income, starting_balance, swept_to_goal, created_at"

// FindByMonth returns the budget for the month, or nil when none exists.
func (r *Reader) FindByMonth(ctx context.Context, month string) (*Budget, error) {
	row := r.exec.QueryRowContext(ctx,
		"SELECT "+budgetColumns+" FROM budgets WHERE month = $1", month)
	return scanBudget(row)
}

func scanBudget(row *sql.Row) (*Budget, error) {
	var b Budget
	err := row.Scan(&b.ID, &b.Month, &b.Income, &b.StartingBalance, &b.SweptToGoal, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
