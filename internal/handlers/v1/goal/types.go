package goal

import (
	"time"

	"github.com/carson-networks/budget-engine/internal/service"
)

// Goal is the wire representation of a savings goal.
type Goal struct {
	ID                  string `json:"id" doc:"Goal UUID"`
	Name                string `json:"name" doc:"Goal name"`
	TargetAmount        string `json:"targetAmount" doc:"Target amount"`
	SavedAmount         string `json:"savedAmount" doc:"Amount saved so far"`
	MonthlyContribution string `json:"monthlyContribution" doc:"Suggested monthly contribution"`
	TargetDate          string `json:"targetDate,omitempty" doc:"Optional target date, YYYY-MM-DD"`
	ProgressPercent     string `json:"progressPercent" doc:"saved/target × 100, uncapped"`
	Completed           bool   `json:"completed" doc:"Whether saved has reached target"`
}

func goalView(g service.SavingsGoal) Goal {
	view := Goal{
		ID:                  g.ID.String(),
		Name:                g.Name,
		TargetAmount:        g.TargetAmount.String(),
		SavedAmount:         g.SavedAmount.String(),
		MonthlyContribution: g.MonthlyContribution.String(),
		ProgressPercent:     g.ProgressPercent().StringFixed(2),
		Completed:           g.Completed(),
	}
	if g.TargetDate != nil {
		view.TargetDate = g.TargetDate.Format(time.DateOnly)
	}
	return view
}
