package service

import (
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	budgetstore "github.com/carson-networks/budget-engine/internal/storage/budget"
	categorystore "github.com/carson-networks/budget-engine/internal/storage/category"
	transactionstore "github.com/carson-networks/budget-engine/internal/storage/transaction"
)

// BudgetTotals are the derived aggregates over a month's categories.
type BudgetTotals struct {
	Planned    decimal.Decimal
	Actual     decimal.Decimal
	Difference decimal.Decimal
}

// MonthlyBudget is the canonical planned/actual/variance view for one month.
// It is assembled on every read from the budget row, the month's categories
// and the month's transaction sums; nothing here is an independently
// maintained counter.
type MonthlyBudget struct {
	ID              uuid.UUID
	Month           Month
	Income          decimal.Decimal
	StartingBalance decimal.Decimal
	SweptToGoal     decimal.Decimal
	Categories      []Category
	Totals          BudgetTotals
	FreeToSpend     decimal.Decimal
	CreatedAt       time.Time
}

// AssembleMonthlyBudget folds storage rows into the derived budget view.
// Categories come back grouped by type in Need, Want, Saving, Income order.
// FreeToSpend may legitimately be negative (over-allocated).
func AssembleMonthlyBudget(
	row *budgetstore.Budget,
	categories []*categorystore.Category,
	sums []transactionstore.CategorySum,
) MonthlyBudget {
	actuals := make(map[uuid.UUID]decimal.Decimal, len(sums))
	for _, s := range sums {
		actuals[s.CategoryID] = s.Total
	}

	converted := make([]Category, len(categories))
	totalPlanned := decimal.Zero
	totalActual := decimal.Zero
	for i, cat := range categories {
		actual, ok := actuals[cat.ID]
		if !ok {
			actual = decimal.Zero
		}
		converted[i] = CategoryFromStorage(cat, actual)
		totalPlanned = totalPlanned.Add(cat.Planned)
		totalActual = totalActual.Add(actual)
	}

	sort.SliceStable(converted, func(i, j int) bool {
		if converted[i].Type != converted[j].Type {
			return converted[i].Type < converted[j].Type
		}
		return converted[i].Name < converted[j].Name
	})

	month, _ := ParseMonth(row.Month)
	return MonthlyBudget{
		ID:              row.ID,
		Month:           month,
		Income:          row.Income,
		StartingBalance: row.StartingBalance,
		SweptToGoal:     row.SweptToGoal,
		Categories:      converted,
		Totals: BudgetTotals{
			Planned:    totalPlanned,
			Actual:     totalActual,
			Difference: totalPlanned.Sub(totalActual),
		},
		FreeToSpend: row.Income.Sub(totalPlanned),
		CreatedAt:   row.CreatedAt,
	}
}
