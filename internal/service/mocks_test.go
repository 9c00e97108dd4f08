package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	budgetstore "github.com/carson-networks/budget-engine/internal/storage/budget"
	categorystore "github.com/carson-networks/budget-engine/internal/storage/category"
	transactionstore "github.com/carson-networks/budget-engine/internal/storage/transaction"
)

// mockBudgetTable is a mock for budget.IBudgetTable.
type mockBudgetTable struct {
	mock.Mock
}

func (m *mockBudgetTable) FindByMonth(ctx context.Context, month string) (*budgetstore.Budget, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budgetstore.Budget), args.Error(1)
}

// mockCategoryTable is a mock for category.ICategoryTable.
type mockCategoryTable struct {
	mock.Mock
}

func (m *mockCategoryTable) FindByID(ctx context.Context, id uuid.UUID) (*categorystore.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*categorystore.Category), args.Error(1)
}

func (m *mockCategoryTable) ListByMonth(ctx context.Context, month string) ([]*categorystore.Category, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*categorystore.Category), args.Error(1)
}

// mockTransactionTable is a mock for transaction.ITransactionTable.
type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) FindByID(ctx context.Context, id uuid.UUID) (*transactionstore.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transactionstore.Transaction), args.Error(1)
}

func (m *mockTransactionTable) List(ctx context.Context, filter *transactionstore.TransactionFilter) ([]*transactionstore.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transactionstore.Transaction), args.Error(1)
}

func (m *mockTransactionTable) SumByCategory(ctx context.Context, from, to time.Time) ([]transactionstore.CategorySum, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]transactionstore.CategorySum), args.Error(1)
}

func (m *mockTransactionTable) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}
