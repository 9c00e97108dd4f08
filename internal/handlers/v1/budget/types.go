package budget

import (
	"github.com/carson-networks/budget-engine/internal/service"
)

// Category is the wire representation of a category inside a budget view.
type Category struct {
	ID       string `json:"id" doc:"Category UUID"`
	Name     string `json:"name" doc:"Category name"`
	Type     string `json:"type" doc:"Need, Want, Saving or Income"`
	Planned  string `json:"planned" doc:"Planned amount for the month"`
	Actual   string `json:"actual" doc:"Sum of the month's transactions"`
	Variance string `json:"variance" doc:"Planned minus actual; positive is underspent"`
	Icon     string `json:"icon,omitempty" doc:"Display icon"`
	Color    string `json:"color,omitempty" doc:"Display color"`
}

// MonthlyBudget is the wire representation of the assembled monthly view.
type MonthlyBudget struct {
	Month           string     `json:"month" doc:"Budget month, YYYY-MM"`
	Income          string     `json:"income" doc:"Expected income for the month"`
	StartingBalance string     `json:"startingBalance" doc:"Balance carried into the month"`
	SweptToGoal     string     `json:"sweptToGoal" doc:"Surplus already swept to a goal at closeout"`
	Categories      []Category `json:"categories" doc:"Categories grouped Need, Want, Saving, Income"`
	TotalPlanned    string     `json:"totalPlanned" doc:"Sum of planned amounts"`
	TotalActual     string     `json:"totalActual" doc:"Sum of actual spending"`
	TotalDifference string     `json:"totalDifference" doc:"totalPlanned minus totalActual"`
	FreeToSpend     string     `json:"freeToSpend" doc:"Income minus totalPlanned; negative when over-allocated"`
}

func categoryView(c service.Category) Category {
	return Category{
		ID:       c.ID.String(),
		Name:     c.Name,
		Type:     c.Type.String(),
		Planned:  c.Planned.String(),
		Actual:   c.Actual.String(),
		Variance: c.Variance().String(),
		Icon:     c.Icon,
		Color:    c.Color,
	}
}

// BudgetView converts the assembled service model to its wire shape. It is
// shared with the closeout handlers, which return the successor budget.
func BudgetView(mb *service.MonthlyBudget) MonthlyBudget {
	categories := make([]Category, len(mb.Categories))
	for i, c := range mb.Categories {
		categories[i] = categoryView(c)
	}
	return MonthlyBudget{
		Month:           mb.Month.String(),
		Income:          mb.Income.String(),
		StartingBalance: mb.StartingBalance.String(),
		SweptToGoal:     mb.SweptToGoal.String(),
		Categories:      categories,
		TotalPlanned:    mb.Totals.Planned.String(),
		TotalActual:     mb.Totals.Actual.String(),
		TotalDifference: mb.Totals.Difference.String(),
		FreeToSpend:     mb.FreeToSpend.String(),
	}
}
