package goal

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

var _ IGoalWriter = (*Writer)(nil)

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	_, err = w.tx.ExecContext(ctx,
		`INSERT INTO goals (id, name, target_amount, saved_amount, monthly_contribution, target_date)
		 VALUES ($1, $2, $3, 0, $4, $5)`,
		id, create.Name, create.TargetAmount, create.MonthlyContribution, create.TargetDate)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (w *Writer) Update(ctx context.Context, id uuid.UUID, patch *GoalPatch) error {
	_, err := w.tx.ExecContext(ctx,
		`UPDATE goals SET
			name = COALESCE($2, name),
			target_amount = COALESCE($3, target_amount),
			monthly_contribution = COALESCE($4, monthly_contribution),
			target_date = COALESCE($5, target_date)
		 WHERE id = $1`,
		id, patch.Name, patch.TargetAmount, patch.MonthlyContribution, patch.TargetDate)
	return err
}

func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := w.tx.ExecContext(ctx, "DELETE FROM goals WHERE id = $1", id)
	return err
}

// Contribute adds amount to saved_amount and returns the new balance. The
// increment form keeps saved_amount monotonic under any interleaving.
func (w *Writer) Contribute(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	var newSaved decimal.Decimal
	err := w.tx.QueryRowContext(ctx,
		"UPDATE goals SET saved_amount = saved_amount + $2 WHERE id = $1 RETURNING saved_amount",
		id, amount).Scan(&newSaved)
	return newSaved, err
}
