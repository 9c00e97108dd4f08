package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
	goalstore "github.com/carson-networks/budget-engine/internal/storage/goal"
)

func TestContributeToGoal_ReturnsNewBalance(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	amount := decimal.RequireFromString("125.00")

	goals := new(mockGoalWriter)
	goals.On("FindByID", mock.Anything, id).Return(&goalstore.Goal{
		ID:           id,
		Name:         "New Car",
		TargetAmount: decimal.RequireFromString("15000.00"),
		SavedAmount:  decimal.RequireFromString("2000.00"),
	}, nil)
	goals.On("Contribute", mock.Anything, id, amount).Return(decimal.RequireFromString("2125.00"), nil)

	action := &ContributeToGoal{GoalID: id, Amount: amount}
	err := action.Perform(context.Background(), &storage.Writer{Goal: goals})

	assert.NoError(t, err)
	assert.True(t, action.Result.SavedAmount.Equal(decimal.RequireFromString("2125.00")))
	assert.Equal(t, "New Car", action.Result.Name)
}

func TestContributeToGoal_RejectsNonPositiveAmount(t *testing.T) {
	action := &ContributeToGoal{GoalID: uuid.Must(uuid.NewV4()), Amount: decimal.Zero}
	err := action.Perform(context.Background(), &storage.Writer{})
	assert.True(t, service.IsValidationError(err))
}

func TestContributeToGoal_UnknownGoal(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	goals := new(mockGoalWriter)
	goals.On("FindByID", mock.Anything, id).Return(nil, nil)

	action := &ContributeToGoal{GoalID: id, Amount: decimal.RequireFromString("10")}
	err := action.Perform(context.Background(), &storage.Writer{Goal: goals})

	assert.True(t, service.IsNotFoundError(err))
}
