package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/storage"
)

// GoalService serves the read side of the savings goal tracker.
type GoalService struct {
	storage *storage.Storage
}

// NewGoalService creates a new GoalService.
func NewGoalService(store *storage.Storage) *GoalService {
	return &GoalService{storage: store}
}

// GetGoal retrieves a goal by ID.
func (s *GoalService) GetGoal(ctx context.Context, id uuid.UUID) (*SavingsGoal, error) {
	row, err := s.storage.Goals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, NewNotFoundError("savings goal %s not found", id)
	}
	converted := GoalFromStorage(row)
	return &converted, nil
}

// ListGoals returns all goals, largest target first.
func (s *GoalService) ListGoals(ctx context.Context) ([]SavingsGoal, error) {
	rows, err := s.storage.Goals.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]SavingsGoal, len(rows))
	for i, row := range rows {
		converted[i] = GoalFromStorage(row)
	}
	return converted, nil
}
