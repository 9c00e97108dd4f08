package actions

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
	categorystore "github.com/carson-networks/budget-engine/internal/storage/category"
	transactionstore "github.com/carson-networks/budget-engine/internal/storage/transaction"
)

func TestRecordTransaction_InsertsAndReturnsRow(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	transactionID := uuid.Must(uuid.NewV4())
	date := time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)

	categories := new(mockCategoryWriter)
	categories.On("FindByID", mock.Anything, categoryID).Return(&categorystore.Category{ID: categoryID}, nil)

	var create *transactionstore.TransactionCreate
	transactions := new(mockTransactionWriter)
	transactions.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		create = args.Get(1).(*transactionstore.TransactionCreate)
	}).Return(transactionID, nil)
	transactions.On("FindByID", mock.Anything, transactionID).Return(&transactionstore.Transaction{
		ID:              transactionID,
		CategoryID:      categoryID,
		Amount:          decimal.RequireFromString("42.50"),
		TransactionDate: date,
		Description:     "Fuel",
		Recurring:       true,
	}, nil)

	action := &RecordTransaction{
		CategoryID:      categoryID,
		Amount:          decimal.RequireFromString("42.50"),
		TransactionDate: date,
		Description:     "Fuel",
		Recurring:       true,
	}
	err := action.Perform(context.Background(), &storage.Writer{
		Category:    categories,
		Transaction: transactions,
	})

	assert.NoError(t, err)
	if assert.NotNil(t, create) {
		assert.Equal(t, categoryID, create.CategoryID)
		assert.True(t, create.Amount.Equal(decimal.RequireFromString("42.50")))
		assert.True(t, create.Recurring)
	}
	assert.Equal(t, transactionID, action.Result.ID)
	assert.Equal(t, "Fuel", action.Result.Description)
}

func TestRecordTransaction_Validation(t *testing.T) {
	date := time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		action *RecordTransaction
	}{
		{
			name:   "zero amount",
			action: &RecordTransaction{Amount: decimal.Zero, TransactionDate: date},
		},
		{
			name:   "negative amount",
			action: &RecordTransaction{Amount: decimal.RequireFromString("-5"), TransactionDate: date},
		},
		{
			name:   "zero date",
			action: &RecordTransaction{Amount: decimal.RequireFromString("5")},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.action.Perform(context.Background(), &storage.Writer{})
			assert.True(t, service.IsValidationError(err))
		})
	}
}

func TestRecordTransaction_UnknownCategory(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())

	categories := new(mockCategoryWriter)
	categories.On("FindByID", mock.Anything, categoryID).Return(nil, nil)

	action := &RecordTransaction{
		CategoryID:      categoryID,
		Amount:          decimal.RequireFromString("10"),
		TransactionDate: time.Now(),
	}
	err := action.Perform(context.Background(), &storage.Writer{Category: categories})

	assert.True(t, service.IsNotFoundError(err))
}
