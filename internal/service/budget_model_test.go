package service

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	budgetstore "github.com/carson-networks/budget-engine/internal/storage/budget"
	categorystore "github.com/carson-networks/budget-engine/internal/storage/category"
	transactionstore "github.com/carson-networks/budget-engine/internal/storage/transaction"
)

func makeBudgetRow(month, income, starting string) *budgetstore.Budget {
	return &budgetstore.Budget{
		ID:              uuid.Must(uuid.NewV4()),
		Month:           month,
		Income:          decimal.RequireFromString(income),
		StartingBalance: decimal.RequireFromString(starting),
		SweptToGoal:     decimal.Zero,
		CreatedAt:       time.Now(),
	}
}

func makeCategoryRow(month, name string, catType int16, planned string) *categorystore.Category {
	return &categorystore.Category{
		ID:          uuid.Must(uuid.NewV4()),
		BudgetMonth: month,
		Name:        name,
		Type:        catType,
		Planned:     decimal.RequireFromString(planned),
		CreatedAt:   time.Now(),
	}
}

func TestAssembleMonthlyBudget_TotalsAndActuals(t *testing.T) {
	row := makeBudgetRow("2025-07", "3000.00", "500.00")
	groceries := makeCategoryRow("2025-07", "Groceries", 0, "400.00")
	fun := makeCategoryRow("2025-07", "Fun", 1, "200.00")

	sums := []transactionstore.CategorySum{
		{CategoryID: groceries.ID, Total: decimal.RequireFromString("350.50")},
	}

	mb := AssembleMonthlyBudget(row, []*categorystore.Category{groceries, fun}, sums)

	assert.Len(t, mb.Categories, 2)
	assert.True(t, mb.Categories[0].Actual.Equal(decimal.RequireFromString("350.50")))
	// Categories with no transactions get a zero actual, not a missing one.
	assert.True(t, mb.Categories[1].Actual.IsZero())

	assert.True(t, mb.Totals.Planned.Equal(decimal.RequireFromString("600.00")))
	assert.True(t, mb.Totals.Actual.Equal(decimal.RequireFromString("350.50")))
	assert.True(t, mb.Totals.Difference.Equal(decimal.RequireFromString("249.50")))
	assert.True(t, mb.FreeToSpend.Equal(decimal.RequireFromString("2400.00")))
}

func TestAssembleMonthlyBudget_GroupsByTypeThenName(t *testing.T) {
	row := makeBudgetRow("2025-07", "3000.00", "0")
	categories := []*categorystore.Category{
		makeCategoryRow("2025-07", "Salary", 3, "0"),
		makeCategoryRow("2025-07", "Vacation", 2, "100.00"),
		makeCategoryRow("2025-07", "Bars", 1, "50.00"),
		makeCategoryRow("2025-07", "Rent", 0, "900.00"),
		makeCategoryRow("2025-07", "Groceries", 0, "400.00"),
	}

	mb := AssembleMonthlyBudget(row, categories, nil)

	names := make([]string, len(mb.Categories))
	for i, c := range mb.Categories {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Groceries", "Rent", "Bars", "Vacation", "Salary"}, names)
}

func TestAssembleMonthlyBudget_OverAllocatedFreeToSpendGoesNegative(t *testing.T) {
	row := makeBudgetRow("2025-07", "1000.00", "0")
	categories := []*categorystore.Category{
		makeCategoryRow("2025-07", "Rent", 0, "1200.00"),
	}

	mb := AssembleMonthlyBudget(row, categories, nil)
	assert.True(t, mb.FreeToSpend.Equal(decimal.RequireFromString("-200.00")))
}

func TestCategory_Variance(t *testing.T) {
	c := Category{
		Planned: decimal.RequireFromString("100.00"),
		Actual:  decimal.RequireFromString("130.00"),
	}
	assert.True(t, c.Variance().Equal(decimal.RequireFromString("-30.00")))
}
