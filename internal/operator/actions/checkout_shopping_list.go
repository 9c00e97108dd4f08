package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
	transactionstore "github.com/carson-networks/budget-engine/internal/storage/transaction"
)

// CheckoutShoppingList converts a staged list into exactly one ledger
// transaction and deletes the list, atomically. The caller may override the
// amount (actual till total) and the description; otherwise the estimate and
// the list name are used.
type CheckoutShoppingList struct {
	ListID          uuid.UUID
	ActualTotalCost *decimal.Decimal
	Description     *string
	TransactionDate time.Time

	Result service.Transaction

	IAction
}

func (a *CheckoutShoppingList) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.TransactionDate.IsZero() {
		return service.NewValidationError("transaction date must be set")
	}

	row, err := writer.ShoppingList.FindByID(ctx, a.ListID)
	if err != nil {
		return err
	}
	if row == nil {
		return service.NewNotFoundError("shopping list %s does not exist", a.ListID)
	}

	list := service.ShoppingListFromStorage(row)
	if len(list.Items) == 0 {
		return service.NewValidationError("shopping list %q has no items to check out", list.Name)
	}

	amount := list.TotalCost()
	if a.ActualTotalCost != nil {
		amount = *a.ActualTotalCost
	}
	if !amount.IsPositive() {
		return service.NewValidationError("checkout amount must be positive, got %s", amount)
	}

	description := list.Name
	if a.Description != nil && *a.Description != "" {
		description = *a.Description
	}

	id, err := writer.Transaction.Insert(ctx, &transactionstore.TransactionCreate{
		CategoryID:      list.CategoryID,
		Amount:          amount,
		TransactionDate: a.TransactionDate,
		Description:     description,
		Notes:           fmt.Sprintf("Checked out from shopping list %q (%d items)", list.Name, len(list.Items)),
	})
	if err != nil {
		return err
	}

	if err = writer.ShoppingList.Delete(ctx, a.ListID); err != nil {
		return err
	}

	created, err := writer.Transaction.FindByID(ctx, id)
	if err != nil {
		return err
	}

	a.Result = service.TransactionFromStorage(created)
	return nil
}
