package shoppinglist

import (
	"context"
	"database/sql"
	"encoding/json"
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

var _ IShoppingListTable = (*Reader)(nil)

func NewReader(exec executor) *Reader {
	return &Reader{exec: exec}
}

const listColumns = "id, name, category_id, items, created_at"

// FindByID returns the list, or nil when it does not exist.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*ShoppingList, error) {
	row := r.exec.QueryRowContext(ctx,
		"SELECT "+listColumns+" FROM shopping_lists WHERE id = $1", id)

	l, err := scanList(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// List returns all shopping lists, newest first.
func (r *Reader) List(ctx context.Context) ([]*ShoppingList, error) {
	rows, err := r.exec.QueryContext(ctx,
		"SELECT "+listColumns+" FROM shopping_lists ORDER BY created_at DESC, id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*ShoppingList
	for rows.Next() {
		l, err := scanList(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func scanList(scan func(dest ...any) error) (*ShoppingList, error) {
	var l ShoppingList
	var itemsJSON []byte
	if err := scan(&l.ID, &l.Name, &l.CategoryID, &itemsJSON, &l.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &l.Items); err != nil {
		return nil, err
	}
	return &l, nil
}
