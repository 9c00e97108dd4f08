package category

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Category represents a planned-spend bucket, scoped to one budget month.
type Category struct {
	ID          uuid.UUID
	BudgetMonth string
	Name        string
	Type        int16
	Planned     decimal.Decimal
	Icon        string
	Color       string
	CreatedAt   time.Time
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	BudgetMonth string
	Name        string
	Type        int16
	Planned     decimal.Decimal
	Icon        string
	Color       string
}

// CategoryPatch carries optional field updates. Nil fields are left unchanged.
type CategoryPatch struct {
	Name    *string
	Type    *int16
	Planned *decimal.Decimal
	Icon    *string
	Color   *string
}

// ICategoryTable defines read access to the categories table.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	ListByMonth(ctx context.Context, month string) ([]*Category, error)
}

// ICategoryWriter defines transactional access to the categories table.
type ICategoryWriter interface {
	ICategoryTable
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch *CategoryPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
