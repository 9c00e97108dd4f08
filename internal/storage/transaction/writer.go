package transaction

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
)

type Writer struct {
	tx *sql.Tx
	Reader
}

var _ ITransactionWriter = (*Writer)(nil)

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	_, err = w.tx.ExecContext(ctx,
		`INSERT INTO transactions (id, category_id, amount, transaction_date, description, notes, recurring)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, create.CategoryID, create.Amount, create.TransactionDate, create.Description, create.Notes, create.Recurring)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (w *Writer) Update(ctx context.Context, id uuid.UUID, patch *TransactionPatch) error {
	_, err := w.tx.ExecContext(ctx,
		`UPDATE transactions SET
			category_id = COALESCE($2, category_id),
			amount = COALESCE($3, amount),
			transaction_date = COALESCE($4, transaction_date),
			description = COALESCE($5, description),
			notes = COALESCE($6, notes),
			recurring = COALESCE($7, recurring)
		 WHERE id = $1`,
		id, patch.CategoryID, patch.Amount, patch.TransactionDate, patch.Description, patch.Notes, patch.Recurring)
	return err
}
