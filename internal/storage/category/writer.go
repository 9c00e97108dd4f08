package category

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
)

type Writer struct {
	tx *sql.Tx
	Reader
}

var _ ICategoryWriter = (*Writer)(nil)

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	_, err = w.tx.ExecContext(ctx,
		`INSERT INTO categories (id, budget_month, name, type, planned, icon, color)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, create.BudgetMonth, create.Name, create.Type, create.Planned, create.Icon, create.Color)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (w *Writer) Update(ctx context.Context, id uuid.UUID, patch *CategoryPatch) error {
	_, err := w.tx.ExecContext(ctx,
		`UPDATE categories SET
			name = COALESCE($2, name),
			type = COALESCE($3, type),
			planned = COALESCE($4, planned),
			icon = COALESCE($5, icon),
			color = COALESCE($6, color)
		 WHERE id = $1`,
		id, patch.Name, patch.Type, patch.Planned, patch.Icon, patch.Color)
	return err
}

func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := w.tx.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	return err
}
