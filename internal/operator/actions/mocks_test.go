package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	budgetstore "github.com/carson-networks/budget-engine/internal/storage/budget"
	categorystore "github.com/carson-networks/budget-engine/internal/storage/category"
	goalstore "github.com/carson-networks/budget-engine/internal/storage/goal"
	reportstore "github.com/carson-networks/budget-engine/internal/storage/report"
	shoppingstore "github.com/carson-networks/budget-engine/internal/storage/shoppinglist"
	transactionstore "github.com/carson-networks/budget-engine/internal/storage/transaction"
)

type mockBudgetWriter struct {
	mock.Mock
}

func (m *mockBudgetWriter) FindByMonth(ctx context.Context, month string) (*budgetstore.Budget, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budgetstore.Budget), args.Error(1)
}

func (m *mockBudgetWriter) FindByMonthForUpdate(ctx context.Context, month string) (*budgetstore.Budget, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budgetstore.Budget), args.Error(1)
}

func (m *mockBudgetWriter) Insert(ctx context.Context, create *budgetstore.BudgetCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockBudgetWriter) Update(ctx context.Context, id uuid.UUID, patch *budgetstore.BudgetPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *mockBudgetWriter) AddSweptToGoal(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

type mockCategoryWriter struct {
	mock.Mock
}

func (m *mockCategoryWriter) FindByID(ctx context.Context, id uuid.UUID) (*categorystore.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*categorystore.Category), args.Error(1)
}

func (m *mockCategoryWriter) ListByMonth(ctx context.Context, month string) ([]*categorystore.Category, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*categorystore.Category), args.Error(1)
}

func (m *mockCategoryWriter) Insert(ctx context.Context, create *categorystore.CategoryCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockCategoryWriter) Update(ctx context.Context, id uuid.UUID, patch *categorystore.CategoryPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *mockCategoryWriter) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTransactionWriter struct {
	mock.Mock
}

func (m *mockTransactionWriter) FindByID(ctx context.Context, id uuid.UUID) (*transactionstore.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transactionstore.Transaction), args.Error(1)
}

func (m *mockTransactionWriter) List(ctx context.Context, filter *transactionstore.TransactionFilter) ([]*transactionstore.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transactionstore.Transaction), args.Error(1)
}

func (m *mockTransactionWriter) SumByCategory(ctx context.Context, from, to time.Time) ([]transactionstore.CategorySum, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]transactionstore.CategorySum), args.Error(1)
}

func (m *mockTransactionWriter) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionWriter) Insert(ctx context.Context, create *transactionstore.TransactionCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTransactionWriter) Update(ctx context.Context, id uuid.UUID, patch *transactionstore.TransactionPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

type mockGoalWriter struct {
	mock.Mock
}

func (m *mockGoalWriter) FindByID(ctx context.Context, id uuid.UUID) (*goalstore.Goal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*goalstore.Goal), args.Error(1)
}

func (m *mockGoalWriter) List(ctx context.Context) ([]*goalstore.Goal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*goalstore.Goal), args.Error(1)
}

func (m *mockGoalWriter) Insert(ctx context.Context, create *goalstore.GoalCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockGoalWriter) Update(ctx context.Context, id uuid.UUID, patch *goalstore.GoalPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *mockGoalWriter) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockGoalWriter) Contribute(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, id, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type mockShoppingListWriter struct {
	mock.Mock
}

func (m *mockShoppingListWriter) FindByID(ctx context.Context, id uuid.UUID) (*shoppingstore.ShoppingList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shoppingstore.ShoppingList), args.Error(1)
}

func (m *mockShoppingListWriter) List(ctx context.Context) ([]*shoppingstore.ShoppingList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shoppingstore.ShoppingList), args.Error(1)
}

func (m *mockShoppingListWriter) Insert(ctx context.Context, create *shoppingstore.ShoppingListCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockShoppingListWriter) Update(ctx context.Context, id uuid.UUID, patch *shoppingstore.ShoppingListPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *mockShoppingListWriter) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockReportWriter struct {
	mock.Mock
}

func (m *mockReportWriter) FindByMonth(ctx context.Context, month string) (*reportstore.MonthlyReport, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reportstore.MonthlyReport), args.Error(1)
}

func (m *mockReportWriter) List(ctx context.Context) ([]*reportstore.MonthlyReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reportstore.MonthlyReport), args.Error(1)
}

func (m *mockReportWriter) Insert(ctx context.Context, create *reportstore.MonthlyReportCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
