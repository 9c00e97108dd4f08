package shoppinglist

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/gofrs/uuid/v5"
)

type Writer struct {
	tx *sql.Tx
	Reader
}

var _ IShoppingListWriter = (*Writer)(nil)

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) Insert(ctx context.Context, create *ShoppingListCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	itemsJSON, err := marshalItems(create.Items)
	if err != nil {
		return uuid.Nil, err
	}
	_, err = w.tx.ExecContext(ctx,
		`INSERT INTO shopping_lists (id, name, category_id, items)
		 VALUES ($1, $2, $3, $4)`,
		id, create.Name, create.CategoryID, itemsJSON)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (w *Writer) Update(ctx context.Context, id uuid.UUID, patch *ShoppingListPatch) error {
	var itemsJSON []byte
	if patch.Items != nil {
		encoded, err := marshalItems(*patch.Items)
		if err != nil {
			return err
		}
		itemsJSON = encoded
	}
	_, err := w.tx.ExecContext(ctx,
		`UPDATE shopping_lists SET
			name = COALESCE($2, name),
			category_id = COALESCE($3, category_id),
			items = COALESCE($4, items)
		 WHERE id = $1`,
		id, patch.Name, patch.CategoryID, itemsJSON)
	return err
}

func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := w.tx.ExecContext(ctx, "DELETE FROM shopping_lists WHERE id = $1", id)
	return err
}

func marshalItems(items []Item) ([]byte, error) {
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(items)
}
