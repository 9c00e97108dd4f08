package service

import (
	"context"

	"github.com/carson-networks/budget-engine/internal/storage"
)

// BudgetService assembles monthly budget views. It is read-only: all budget
// mutations go through operator actions.
type BudgetService struct {
	storage *storage.Storage
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{storage: store}
}

// GetBudget returns the assembled budget for the month. Fails with
// NotFoundError when no budget exists for it.
func (s *BudgetService) GetBudget(ctx context.Context, month Month) (*MonthlyBudget, error) {
	row, err := s.storage.Budgets.FindByMonth(ctx, month.String())
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, NewNotFoundError("no budget exists for %s", month)
	}

	categories, err := s.storage.Categories.ListByMonth(ctx, month.String())
	if err != nil {
		return nil, err
	}

	from, to := month.Bounds()
	sums, err := s.storage.Transactions.SumByCategory(ctx, from, to)
	if err != nil {
		return nil, err
	}

	assembled := AssembleMonthlyBudget(row, categories, sums)
	return &assembled, nil
}
