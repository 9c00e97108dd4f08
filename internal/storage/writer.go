package storage

import (
	"database/sql"

	"github.com/carson-networks/budget-engine/internal/storage/budget"
	"github.com/carson-networks/budget-engine/internal/storage/category"
	"github.com/carson-networks/budget-engine/internal/storage/goal"
	"github.com/carson-networks/budget-engine/internal/storage/report"
	"github.com/carson-networks/budget-engine/internal/storage/shoppinglist"
	"github.com/carson-networks/budget-engine/internal/storage/transaction"
)

// Writer bundles per-table writers over one database transaction. All
// mutations reachable from a Writer become visible atomically on Commit.
// The fields are interfaces so actions can be tested with mocks.
type Writer struct {
	tx *sql.Tx

	Budget       budget.IBudgetWriter
	Category     category.ICategoryWriter
	Transaction  transaction.ITransactionWriter
	Goal         goal.IGoalWriter
	ShoppingList shoppinglist.IShoppingListWriter
	Report       report.IReportWriter
}

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Budget:       budget.NewWriter(tx),
		Category:     category.NewWriter(tx),
		Transaction:  transaction.NewWriter(tx),
		Goal:         goal.NewWriter(tx),
		ShoppingList: shoppinglist.NewWriter(tx),
		Report:       report.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}
