package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	transactionstore "github.com/carson-networks/budget-engine/internal/storage/transaction"
)

// Transaction represents a recorded spend event in the service layer. Amount
// is the positive magnitude of the spend. The Recurring flag is
// informational only; it never auto-generates future transactions.
type Transaction struct {
	ID          uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Notes       string
	Recurring   bool
	CreatedAt   time.Time
}

// TransactionListFilter restricts ListTransactions. Both fields optional.
type TransactionListFilter struct {
	Month      *Month
	CategoryID *uuid.UUID
}

func TransactionFromStorage(row *transactionstore.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		CategoryID:  row.CategoryID,
		Amount:      row.Amount,
		Date:        row.TransactionDate,
		Description: row.Description,
		Notes:       row.Notes,
		Recurring:   row.Recurring,
		CreatedAt:   row.CreatedAt,
	}
}
