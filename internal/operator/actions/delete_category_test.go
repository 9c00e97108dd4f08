package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
	categorystore "github.com/carson-networks/budget-engine/internal/storage/category"
)

func TestDeleteCategory_DeletesWhenUnused(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	categories := new(mockCategoryWriter)
	categories.On("FindByID", mock.Anything, id).Return(&categorystore.Category{ID: id, Name: "Hobbies"}, nil)
	categories.On("Delete", mock.Anything, id).Return(nil)

	transactions := new(mockTransactionWriter)
	transactions.On("CountByCategory", mock.Anything, id).Return(int64(0), nil)

	action := &DeleteCategory{ID: id}
	err := action.Perform(context.Background(), &storage.Writer{
		Category:    categories,
		Transaction: transactions,
	})

	assert.NoError(t, err)
	categories.AssertCalled(t, "Delete", mock.Anything, id)
}

func TestDeleteCategory_ConflictWithLinkedTransactions(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	categories := new(mockCategoryWriter)
	categories.On("FindByID", mock.Anything, id).Return(&categorystore.Category{ID: id, Name: "Groceries"}, nil)

	transactions := new(mockTransactionWriter)
	transactions.On("CountByCategory", mock.Anything, id).Return(int64(7), nil)

	action := &DeleteCategory{ID: id}
	err := action.Perform(context.Background(), &storage.Writer{
		Category:    categories,
		Transaction: transactions,
	})

	assert.True(t, service.IsConflictError(err))
	categories.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteCategory_UnknownCategory(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	categories := new(mockCategoryWriter)
	categories.On("FindByID", mock.Anything, id).Return(nil, nil)

	action := &DeleteCategory{ID: id}
	err := action.Perform(context.Background(), &storage.Writer{Category: categories})

	assert.True(t, service.IsNotFoundError(err))
}
