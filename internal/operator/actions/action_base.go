package actions

import (
	"context"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
	budgetstore "github.com/carson-networks/budget-engine/internal/storage/budget"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// assembleBudget builds the derived monthly view from inside the action's
// transaction, so results reflect the rows this action just wrote.
func assembleBudget(ctx context.Context, writer *storage.Writer, row *budgetstore.Budget) (service.MonthlyBudget, error) {
	month, err := service.ParseMonth(row.Month)
	if err != nil {
		return service.MonthlyBudget{}, err
	}

	categories, err := writer.Category.ListByMonth(ctx, row.Month)
	if err != nil {
		return service.MonthlyBudget{}, err
	}

	from, to := month.Bounds()
	sums, err := writer.Transaction.SumByCategory(ctx, from, to)
	if err != nil {
		return service.MonthlyBudget{}, err
	}

	return service.AssembleMonthlyBudget(row, categories, sums), nil
}
