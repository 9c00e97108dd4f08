package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/carson-networks/budget-engine/internal/config"
	"github.com/carson-networks/budget-engine/internal/storage/budget"
	"github.com/carson-networks/budget-engine/internal/storage/category"
	"github.com/carson-networks/budget-engine/internal/storage/goal"
	"github.com/carson-networks/budget-engine/internal/storage/report"
	"github.com/carson-networks/budget-engine/internal/storage/shoppinglist"
	"github.com/carson-networks/budget-engine/internal/storage/transaction"
)

// Storage exposes read access per table plus Write for transactional
// mutations. The table fields are interfaces so services can be tested with
// mocks.
type Storage struct {
	DB *sql.DB

	Budgets       budget.IBudgetTable
	Categories    category.ICategoryTable
	Transactions  transaction.ITransactionTable
	Goals         goal.IGoalTable
	ShoppingLists shoppinglist.IShoppingListTable
	Reports       report.IReportTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.ConnString())
	if err != nil {
		return nil, err
	}

	return NewStorageWithDB(db), nil
}

// NewStorageWithDB wires a Storage over an existing connection pool.
func NewStorageWithDB(db *sql.DB) *Storage {
	return &Storage{
		DB:            db,
		Budgets:       budget.NewReader(db),
		Categories:    category.NewReader(db),
		Transactions:  transaction.NewReader(db),
		Goals:         goal.NewReader(db),
		ShoppingLists: shoppinglist.NewReader(db),
		Reports:       report.NewReader(db),
	}
}

// Write begins a database transaction and returns a Writer over it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
