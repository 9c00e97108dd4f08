package transaction

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

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

var _ ITransactionTable = (*Reader)(nil)

func NewReader(exec executor) *Reader {
	return &Reader{exec: exec}
}

const transactionColumns = "id, category_id, amount, transaction_date, description, notes, recurring, created_at"

// FindByID returns the transaction, or nil when it does not exist.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row := r.exec.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = $1", id)

	var t Transaction
	err := row.Scan(&t.ID, &t.CategoryID, &t.Amount, &t.TransactionDate, &t.Description, &t.Notes, &t.Recurring, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns transactions matching the filter, ordered by date ascending.
// A nil filter returns all transactions.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE 1=1"
	var args []any

	if filter != nil {
		if filter.CategoryID != nil {
			args = append(args, *filter.CategoryID)
			query += " AND category_id = $" + itoa(len(args))
		}
		if filter.From != nil {
			args = append(args, *filter.From)
			query += " AND transaction_date >= $" + itoa(len(args))
		}
		if filter.To != nil {
			args = append(args, *filter.To)
			query += " AND transaction_date < $" + itoa(len(args))
		}
	}
	query += " ORDER BY transaction_date ASC, id ASC"

	rows, err := r.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.CategoryID, &t.Amount, &t.TransactionDate, &t.Description, &t.Notes, &t.Recurring, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &t)
	}
	return result, rows.Err()
}

// SumByCategory aggregates transaction amounts per category for dates in
// [from, to). Categories without transactions are absent from the result.
func (r *Reader) SumByCategory(ctx context.Context, from, to time.Time) ([]CategorySum, error) {
	rows, err := r.exec.QueryContext(ctx,
		`SELECT category_id, COALESCE(SUM(amount), 0)
		 FROM transactions
		 WHERE transaction_date >= $1 AND transaction_date < $2
		 GROUP BY category_id`,
		from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CategorySum
	for rows.Next() {
		var s CategorySum
		if err := rows.Scan(&s.CategoryID, &s.Total); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// CountByCategory returns how many transactions reference the category.
func (r *Reader) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.exec.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM transactions WHERE category_id = $1", categoryID).Scan(&count)
	return count, err
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
