package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
	categorystore "github.com/carson-networks/budget-engine/internal/storage/category"
)

// CreateCategory adds a planned-spend bucket to an existing budget month.
type CreateCategory struct {
	Month   service.Month
	Name    string
	Type    service.CategoryType
	Planned decimal.Decimal
	Icon    string
	Color   string

	Result service.Category

	IAction
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Name == "" {
		return service.NewValidationError("category name must not be empty")
	}
	if a.Planned.IsNegative() {
		return service.NewValidationError("planned amount must not be negative, got %s", a.Planned)
	}
	if !service.ValidCategoryType(int(a.Type)) {
		return service.NewValidationError("unknown category type %d", a.Type)
	}

	budget, err := writer.Budget.FindByMonth(ctx, a.Month.String())
	if err != nil {
		return err
	}
	if budget == nil {
		return service.NewNotFoundError("no budget exists for %s", a.Month)
	}

	id, err := writer.Category.Insert(ctx, &categorystore.CategoryCreate{
		BudgetMonth: a.Month.String(),
		Name:        a.Name,
		Type:        service.CategoryTypeToStorage(a.Type),
		Planned:     a.Planned,
		Icon:        a.Icon,
		Color:       a.Color,
	})
	if err != nil {
		return err
	}

	row, err := writer.Category.FindByID(ctx, id)
	if err != nil {
		return err
	}

	// A freshly created category has no transactions yet.
	a.Result = service.CategoryFromStorage(row, decimal.Zero)
	return nil
}
