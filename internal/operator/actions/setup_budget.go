package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
	budgetstore "github.com/carson-networks/budget-engine/internal/storage/budget"
	categorystore "github.com/carson-networks/budget-engine/internal/storage/category"
	goalstore "github.com/carson-networks/budget-engine/internal/storage/goal"
)

// AllocationFiftyThirtyTwenty splits income into Needs 50%, Wants 30% and
// Savings 20% when no explicit categories are supplied.
const AllocationFiftyThirtyTwenty = "50/30/20"

// InitialCategory is one caller-supplied category for first-time setup.
type InitialCategory struct {
	Name    string
	Type    service.CategoryType
	Planned decimal.Decimal
	Icon    string
	Color   string
}

// SetupBudget bootstraps the very first monthly budget: the budget row, its
// categories and one default savings goal, all in a single transaction.
type SetupBudget struct {
	Month             service.Month
	Income            decimal.Decimal
	StartingBalance   decimal.Decimal
	SavingsGoalAmount decimal.Decimal
	AllocationMethod  string
	Categories        []InitialCategory

	// Result holds the assembled budget after a successful Perform.
	Result service.MonthlyBudget

	IAction
}

func (a *SetupBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Income.IsNegative() {
		return service.NewValidationError("income must not be negative, got %s", a.Income)
	}
	if !a.SavingsGoalAmount.IsPositive() {
		return service.NewValidationError("savings goal amount must be positive, got %s", a.SavingsGoalAmount)
	}

	existing, err := writer.Budget.FindByMonth(ctx, a.Month.String())
	if err != nil {
		return err
	}
	if existing != nil {
		return service.NewConflictError("a budget for %s already exists", a.Month)
	}

	creates, monthlyContribution, err := a.categoryPlan()
	if err != nil {
		return err
	}

	if _, err = writer.Budget.Insert(ctx, &budgetstore.BudgetCreate{
		Month:           a.Month.String(),
		Income:          a.Income,
		StartingBalance: a.StartingBalance,
	}); err != nil {
		return err
	}

	for _, create := range creates {
		create.BudgetMonth = a.Month.String()
		if _, err = writer.Category.Insert(ctx, create); err != nil {
			return err
		}
	}

	_, err = writer.Goal.Insert(ctx, &goalstore.GoalCreate{
		Name:                "Savings Goal",
		TargetAmount:        a.SavingsGoalAmount,
		MonthlyContribution: monthlyContribution,
	})
	if err != nil {
		return err
	}

	row, err := writer.Budget.FindByMonth(ctx, a.Month.String())
	if err != nil {
		return err
	}

	a.Result, err = assembleBudget(ctx, writer, row)
	return err
}

// categoryPlan resolves the initial category set. 50/30/20 without explicit
// categories synthesizes the three standard buckets; explicit categories win
// over any method; anything else gets a single catch-all bucket.
func (a *SetupBudget) categoryPlan() ([]*categorystore.CategoryCreate, decimal.Decimal, error) {
	if len(a.Categories) > 0 {
		creates := make([]*categorystore.CategoryCreate, len(a.Categories))
		contribution := decimal.Zero
		for i, cat := range a.Categories {
			if cat.Name == "" {
				return nil, decimal.Zero, service.NewValidationError("initial category %d has an empty name", i)
			}
			if cat.Planned.IsNegative() {
				return nil, decimal.Zero, service.NewValidationError(
					"initial category %q has a negative planned amount %s", cat.Name, cat.Planned)
			}
			if !service.ValidCategoryType(int(cat.Type)) {
				return nil, decimal.Zero, service.NewValidationError(
					"initial category %q has an unknown type %d", cat.Name, cat.Type)
			}
			if cat.Type == service.CategoryTypeSaving {
				contribution = contribution.Add(cat.Planned)
			}
			creates[i] = &categorystore.CategoryCreate{
				Name:    cat.Name,
				Type:    service.CategoryTypeToStorage(cat.Type),
				Planned: cat.Planned,
				Icon:    cat.Icon,
				Color:   cat.Color,
			}
		}
		return creates, contribution, nil
	}

	if a.AllocationMethod == AllocationFiftyThirtyTwenty {
		needs := a.Income.Mul(decimal.RequireFromString("0.5"))
		wants := a.Income.Mul(decimal.RequireFromString("0.3"))
		savings := a.Income.Sub(needs).Sub(wants)
		return []*categorystore.CategoryCreate{
			{Name: "Needs", Type: service.CategoryTypeToStorage(service.CategoryTypeNeed), Planned: needs, Icon: "home", Color: "#0F9D58"},
			{Name: "Wants", Type: service.CategoryTypeToStorage(service.CategoryTypeWant), Planned: wants, Icon: "film", Color: "#ED254E"},
			{Name: "Savings", Type: service.CategoryTypeToStorage(service.CategoryTypeSaving), Planned: savings, Icon: "piggy-bank", Color: "#F5BB00"},
		}, savings, nil
	}

	return []*categorystore.CategoryCreate{
		{Name: "Unallocated", Type: service.CategoryTypeToStorage(service.CategoryTypeNeed), Planned: a.Income, Icon: "wallet", Color: "#607D8B"},
	}, decimal.Zero, nil
}
