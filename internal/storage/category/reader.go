package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
)

type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Reader struct {
	exec executor
}

var _ ICategoryTable = (*Reader)(nil)

func NewReader(exec executor) *Reader {
	return &Reader{exec: exec}
}

const categoryColumns = "id, budget_month, name, type, planned, icon, color, created_at"

// FindByID returns the category, or nil when it does not exist.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	row := r.exec.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE id = $1", id)

	var c Category
	err := row.Scan(&c.ID, &c.BudgetMonth, &c.Name, &c.Type, &c.Planned, &c.Icon, &c.Color, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByMonth returns all categories for the given budget month, ordered by
// type then name so budget assembly is deterministic.
func (r *Reader) ListByMonth(ctx context.Context, month string) ([]*Category, error) {
	rows, err := r.exec.QueryContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE budget_month = $1 ORDER BY type ASC, name ASC, id ASC",
		month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.BudgetMonth, &c.Name, &c.Type, &c.Planned, &c.Icon, &c.Color, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}
