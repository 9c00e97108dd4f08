package closeout

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/service"
)

// closeoutSessions is the interface to the month-end wizard state machine.
type closeoutSessions interface {
	Summary(ctx context.Context, month service.Month) (*service.CloseoutSummary, error)
	PrepareSweep(ctx context.Context, month service.Month, amount decimal.Decimal, goalID *uuid.UUID) error
	CompleteMonth(month service.Month)
}

// CategoryVariance is one category line of a closeout summary.
type CategoryVariance struct {
	Name     string `json:"name" doc:"Category name"`
	Type     string `json:"type" doc:"Need, Want, Saving or Income"`
	Planned  string `json:"planned" doc:"Planned amount"`
	Actual   string `json:"actual" doc:"Actual spending"`
	Variance string `json:"variance" doc:"Planned minus actual"`
}

// Summary is the wire representation of a month-end review.
type Summary struct {
	Month            string             `json:"month" doc:"Month under review, YYYY-MM"`
	State            string             `json:"state" doc:"Wizard state: Reviewing, Sweeping or Completed"`
	TotalIncome      string             `json:"totalIncome" doc:"Expected income"`
	TotalPlanned     string             `json:"totalPlanned" doc:"Sum of planned amounts"`
	TotalActual      string             `json:"totalActual" doc:"Sum of actual spending"`
	OverallVariance  string             `json:"overallVariance" doc:"Income minus actual; positive is surplus"`
	SweptToGoal      string             `json:"sweptToGoal" doc:"Surplus already swept into a goal"`
	RemainingSurplus string             `json:"remainingSurplus" doc:"Variance minus sweptToGoal; the sweep cap"`
	Overspent        []CategoryVariance `json:"overspent" doc:"Categories that went over plan"`
	Underspent       []CategoryVariance `json:"underspent" doc:"Categories that came in under plan"`
}

func varianceViews(lines []service.CategoryVariance) []CategoryVariance {
	views := make([]CategoryVariance, len(lines))
	for i, line := range lines {
		views[i] = CategoryVariance{
			Name:     line.Name,
			Type:     line.Type.String(),
			Planned:  line.Planned.String(),
			Actual:   line.Actual.String(),
			Variance: line.Variance.String(),
		}
	}
	return views
}

func summaryView(summary *service.CloseoutSummary, state service.CloseoutState) Summary {
	return Summary{
		Month:            summary.Month.String(),
		State:            state.String(),
		TotalIncome:      summary.TotalIncome.String(),
		TotalPlanned:     summary.TotalPlanned.String(),
		TotalActual:      summary.TotalActual.String(),
		OverallVariance:  summary.OverallVariance.String(),
		SweptToGoal:      summary.SweptToGoal.String(),
		RemainingSurplus: summary.RemainingSurplus().String(),
		Overspent:        varianceViews(summary.Overspent),
		Underspent:       varianceViews(summary.Underspent),
	}
}
