package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/storage"
	transactionstore "github.com/carson-networks/budget-engine/internal/storage/transaction"
)

// TransactionService serves the read side of the transaction ledger.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// GetTransaction retrieves a transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, NewNotFoundError("transaction %s not found", id)
	}
	converted := TransactionFromStorage(row)
	return &converted, nil
}

// ListTransactions returns matching transactions ordered by date ascending.
func (s *TransactionService) ListTransactions(ctx context.Context, filter TransactionListFilter) ([]Transaction, error) {
	storageFilter := &transactionstore.TransactionFilter{
		CategoryID: filter.CategoryID,
	}
	if filter.Month != nil {
		from, to := filter.Month.Bounds()
		storageFilter.From = &from
		storageFilter.To = &to
	}

	rows, err := s.storage.Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = TransactionFromStorage(row)
	}
	return converted, nil
}
