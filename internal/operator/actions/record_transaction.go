package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
	transactionstore "github.com/carson-networks/budget-engine/internal/storage/transaction"
)

// RecordTransaction appends a spend event to the ledger. Amounts are always
// positive; refunds are modeled as category adjustments, not negative spends.
type RecordTransaction struct {
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	TransactionDate time.Time
	Description     string
	Notes           string
	Recurring       bool

	Result service.Transaction

	IAction
}

func (a *RecordTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if !a.Amount.IsPositive() {
		return service.NewValidationError("transaction amount must be positive, got %s", a.Amount)
	}
	if a.TransactionDate.IsZero() {
		return service.NewValidationError("transaction date must be set")
	}

	category, err := writer.Category.FindByID(ctx, a.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return service.NewNotFoundError("category %s does not exist", a.CategoryID)
	}

	id, err := writer.Transaction.Insert(ctx, &transactionstore.TransactionCreate{
		CategoryID:      a.CategoryID,
		Amount:          a.Amount,
		TransactionDate: a.TransactionDate,
		Description:     a.Description,
		Notes:           a.Notes,
		Recurring:       a.Recurring,
	})
	if err != nil {
		return err
	}

	row, err := writer.Transaction.FindByID(ctx, id)
	if err != nil {
		return err
	}

	a.Result = service.TransactionFromStorage(row)
	return nil
}
