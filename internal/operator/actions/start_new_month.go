package actions

import (
	"context"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
	budgetstore "github.com/carson-networks/budget-engine/internal/storage/budget"
	categorystore "github.com/carson-networks/budget-engine/internal/storage/category"
	reportstore "github.com/carson-networks/budget-engine/internal/storage/report"
)

// StartNewMonth finalizes a month and opens its successor in one
// transaction: it freezes the closeout numbers into an immutable report,
// then creates the next budget with the prior month's income, a rolled-over
// starting balance and copies of the prior categories.
//
// The rollover excludes surplus already swept to a goal:
//
//	next.starting = prior.starting + (income - actual) - prior.sweptToGoal
//
// The prior budget row is locked and the successor's existence checked under
// that lock, so a month can only ever be closed once.
type StartNewMonth struct {
	PriorMonth service.Month

	Result service.MonthlyBudget

	IAction
}

func (a *StartNewMonth) Perform(ctx context.Context, writer *storage.Writer) error {
	prior, err := writer.Budget.FindByMonthForUpdate(ctx, a.PriorMonth.String())
	if err != nil {
		return err
	}
	if prior == nil {
		return service.NewNotFoundError("no budget exists for %s", a.PriorMonth)
	}

	nextMonth := a.PriorMonth.Next()
	existing, err := writer.Budget.FindByMonth(ctx, nextMonth.String())
	if err != nil {
		return err
	}
	if existing != nil {
		return service.NewConflictError("%s is already closed: a budget for %s exists", a.PriorMonth, nextMonth)
	}

	mb, err := assembleBudget(ctx, writer, prior)
	if err != nil {
		return err
	}
	summary := service.BuildCloseoutSummary(mb)

	breakdown := make([]reportstore.CategoryVariance, len(mb.Categories))
	for i, cat := range mb.Categories {
		breakdown[i] = reportstore.CategoryVariance{
			Name:     cat.Name,
			Type:     service.CategoryTypeToStorage(cat.Type),
			Planned:  cat.Planned,
			Actual:   cat.Actual,
			Variance: cat.Variance(),
		}
	}
	_, err = writer.Report.Insert(ctx, &reportstore.MonthlyReportCreate{
		Month:             a.PriorMonth.String(),
		TotalIncome:       summary.TotalIncome,
		TotalPlanned:      summary.TotalPlanned,
		TotalActual:       summary.TotalActual,
		OverallVariance:   summary.OverallVariance,
		SweptToGoal:       prior.SweptToGoal,
		CategoryBreakdown: breakdown,
	})
	if err != nil {
		return err
	}

	newStarting := prior.StartingBalance.Add(summary.OverallVariance).Sub(prior.SweptToGoal)
	if _, err = writer.Budget.Insert(ctx, &budgetstore.BudgetCreate{
		Month:           nextMonth.String(),
		Income:          prior.Income,
		StartingBalance: newStarting,
	}); err != nil {
		return err
	}

	priorCategories, err := writer.Category.ListByMonth(ctx, a.PriorMonth.String())
	if err != nil {
		return err
	}
	for _, cat := range priorCategories {
		if _, err = writer.Category.Insert(ctx, &categorystore.CategoryCreate{
			BudgetMonth: nextMonth.String(),
			Name:        cat.Name,
			Type:        cat.Type,
			Planned:     cat.Planned,
			Icon:        cat.Icon,
			Color:       cat.Color,
		}); err != nil {
			return err
		}
	}

	row, err := writer.Budget.FindByMonth(ctx, nextMonth.String())
	if err != nil {
		return err
	}

	a.Result, err = assembleBudget(ctx, writer, row)
	return err
}
