package transaction

import (
	"time"

	"github.com/carson-networks/budget-engine/internal/service"
)

// Transaction is the wire representation of a ledger entry.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	CategoryID  string `json:"categoryId" doc:"Category UUID"`
	Amount      string `json:"amount" doc:"Positive decimal amount"`
	Date        string `json:"date" doc:"RFC3339 transaction date"`
	Description string `json:"description" doc:"Free-text description"`
	Notes       string `json:"notes,omitempty" doc:"Free-text notes"`
	Recurring   bool   `json:"recurring" doc:"Informational recurrence flag"`
}

func transactionView(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		CategoryID:  tx.CategoryID.String(),
		Amount:      tx.Amount.String(),
		Date:        tx.Date.Format(time.RFC3339),
		Description: tx.Description,
		Notes:       tx.Notes,
		Recurring:   tx.Recurring,
	}
}
