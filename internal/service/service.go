package service

import (
	"github.com/carson-networks/budget-engine/internal/storage"
)

// Service holds all read-side business logic services.
type Service struct {
	Budget      *BudgetService
	Transaction *TransactionService
	Goal        *GoalService
	Shopping    *ShoppingService
	Report      *ReportService
	Closeout    *CloseoutService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	budgets := NewBudgetService(store)
	return &Service{
		Budget:      budgets,
		Transaction: NewTransactionService(store),
		Goal:        NewGoalService(store),
		Shopping:    NewShoppingService(store),
		Report:      NewReportService(store),
		Closeout:    NewCloseoutService(budgets),
	}
}
