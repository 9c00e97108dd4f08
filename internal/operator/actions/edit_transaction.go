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

// EditTransaction patches a ledger entry. Moving it to another category or
// month is allowed; every derived view recomputes from the new state.
type EditTransaction struct {
	ID              uuid.UUID
	CategoryID      *uuid.UUID
	Amount          *decimal.Decimal
	TransactionDate *time.Time
	Description     *string
	Notes           *string
	Recurring       *bool

	Result service.Transaction

	IAction
}

func (a *EditTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Amount != nil && !a.Amount.IsPositive() {
		return service.NewValidationError("transaction amount must be positive, got %s", a.Amount)
	}
	if a.TransactionDate != nil && a.TransactionDate.IsZero() {
		return service.NewValidationError("transaction date must be set")
	}

	row, err := writer.Transaction.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if row == nil {
		return service.NewNotFoundError("transaction %s does not exist", a.ID)
	}

	if a.CategoryID != nil {
		category, err := writer.Category.FindByID(ctx, *a.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return service.NewNotFoundError("category %s does not exist", *a.CategoryID)
		}
	}

	err = writer.Transaction.Update(ctx, a.ID, &transactionstore.TransactionPatch{
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

	row, err = writer.Transaction.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}

	a.Result = service.TransactionFromStorage(row)
	return nil
}
