package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a recorded spend event against a category.
type Transaction struct {
	ID              uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	TransactionDate time.Time
	Description     string
	Notes           string
	Recurring       bool
	CreatedAt       time.Time
}

// TransactionCreate is the input for recording a new transaction.
type TransactionCreate struct {
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	TransactionDate time.Time
	Description     string
	Notes           string
	Recurring       bool
}

// TransactionPatch carries optional field updates. Nil fields are left unchanged.
type TransactionPatch struct {
	CategoryID      *uuid.UUID
	Amount          *decimal.Decimal
	TransactionDate *time.Time
	Description     *string
	Notes           *string
	Recurring       *bool
}

// TransactionFilter restricts List results. From is inclusive, To exclusive.
type TransactionFilter struct {
	CategoryID *uuid.UUID
	From       *time.Time
	To         *time.Time
}

// CategorySum is one row of a per-category amount aggregate.
type CategorySum struct {
	CategoryID uuid.UUID
	Total      decimal.Decimal
}

// ITransactionTable defines read access to the transactions table.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	SumByCategory(ctx context.Context, from, to time.Time) ([]CategorySum, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}

// ITransactionWriter defines transactional access to the transactions table.
type ITransactionWriter interface {
	ITransactionTable
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch *TransactionPatch) error
}
