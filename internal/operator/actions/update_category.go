package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
	categorystore "github.com/carson-networks/budget-engine/internal/storage/category"
)

// UpdateCategory patches a category. Lowering the planned amount below what
// is already spent is allowed; the variance simply goes negative.
type UpdateCategory struct {
	ID      uuid.UUID
	Name    *string
	Type    *service.CategoryType
	Planned *decimal.Decimal
	Icon    *string
	Color   *string

	Result service.Category

	IAction
}

func (a *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Name != nil && *a.Name == "" {
		return service.NewValidationError("category name must not be empty")
	}
	if a.Planned != nil && a.Planned.IsNegative() {
		return service.NewValidationError("planned amount must not be negative, got %s", a.Planned)
	}
	if a.Type != nil && !service.ValidCategoryType(int(*a.Type)) {
		return service.NewValidationError("unknown category type %d", *a.Type)
	}

	row, err := writer.Category.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if row == nil {
		return service.NewNotFoundError("category %s does not exist", a.ID)
	}

	patch := &categorystore.CategoryPatch{
		Name:    a.Name,
		Planned: a.Planned,
		Icon:    a.Icon,
		Color:   a.Color,
	}
	if a.Type != nil {
		storageType := service.CategoryTypeToStorage(*a.Type)
		patch.Type = &storageType
	}
	if err = writer.Category.Update(ctx, a.ID, patch); err != nil {
		return err
	}

	row, err = writer.Category.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}

	month, err := service.ParseMonth(row.BudgetMonth)
	if err != nil {
		return err
	}
	from, to := month.Bounds()
	sums, err := writer.Transaction.SumByCategory(ctx, from, to)
	if err != nil {
		return err
	}
	actual := decimal.Zero
	for _, s := range sums {
		if s.CategoryID == row.ID {
			actual = s.Total
			break
		}
	}

	a.Result = service.CategoryFromStorage(row, actual)
	return nil
}
