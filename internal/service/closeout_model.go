package service

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// CategoryVariance is one category's line in a closeout summary.
type CategoryVariance struct {
	Name     string
	Type     CategoryType
	Planned  decimal.Decimal
	Actual   decimal.Decimal
	Variance decimal.Decimal
}

// CloseoutSummary is the month-end review: a pure derivation over the
// assembled budget, recomputed on every read.
type CloseoutSummary struct {
	Month           Month
	TotalIncome     decimal.Decimal
	TotalPlanned    decimal.Decimal
	TotalActual     decimal.Decimal
	OverallVariance decimal.Decimal
	SweptToGoal     decimal.Decimal
	Overspent       []CategoryVariance
	Underspent      []CategoryVariance
}

// RemainingSurplus is the part of the variance not yet swept into a goal.
// Only this much is still available to sweep; the rest has been disposed.
func (s CloseoutSummary) RemainingSurplus() decimal.Decimal {
	return s.OverallVariance.Sub(s.SweptToGoal)
}

// BuildCloseoutSummary derives the month-end summary from an assembled
// budget. OverallVariance is income minus actual spending: positive is a
// surplus available to sweep, negative a shortfall that rolls over.
func BuildCloseoutSummary(mb MonthlyBudget) CloseoutSummary {
	summary := CloseoutSummary{
		Month:           mb.Month,
		TotalIncome:     mb.Income,
		TotalPlanned:    mb.Totals.Planned,
		TotalActual:     mb.Totals.Actual,
		OverallVariance: mb.Income.Sub(mb.Totals.Actual),
		SweptToGoal:     mb.SweptToGoal,
	}

	for _, cat := range mb.Categories {
		variance := cat.Variance()
		line := CategoryVariance{
			Name:     cat.Name,
			Type:     cat.Type,
			Planned:  cat.Planned,
			Actual:   cat.Actual,
			Variance: variance,
		}
		switch {
		case variance.IsNegative():
			summary.Overspent = append(summary.Overspent, line)
		case variance.IsPositive():
			summary.Underspent = append(summary.Underspent, line)
		}
	}

	return summary
}

// ValidateSweep checks the sweep preconditions against a summary. Sweeping
// into a goal requires a positive amount and an actual remaining surplus:
// the cap is the variance minus what earlier sweeps already disposed, so a
// retried sweep cannot move the same surplus twice. A shortfall is never
// swept, it rolls over on its own.
func ValidateSweep(summary CloseoutSummary, amount decimal.Decimal, hasGoal bool) error {
	if amount.IsNegative() {
		return NewValidationError("sweep amount must not be negative, got %s", amount)
	}
	if !hasGoal {
		return nil
	}
	if !amount.IsPositive() {
		return NewValidationError("sweeping into a goal requires a positive amount, got %s", amount)
	}
	remaining := summary.RemainingSurplus()
	if !remaining.IsPositive() {
		return NewValidationError(
			"cannot sweep into a goal: %s has no remaining surplus (variance %s, already swept %s)",
			summary.Month, summary.OverallVariance, summary.SweptToGoal)
	}
	if amount.GreaterThan(remaining) {
		return NewValidationError("sweep amount %s exceeds the %s remaining surplus of %s",
			amount, summary.Month, remaining)
	}
	return nil
}

// CloseoutState is the position of a closeout session in its lifecycle.
type CloseoutState int8

const (
	CloseoutStateReviewing CloseoutState = iota
	CloseoutStateSweeping
	CloseoutStateCompleted
)

func (s CloseoutState) String() string {
	switch s {
	case CloseoutStateReviewing:
		return "Reviewing"
	case CloseoutStateSweeping:
		return "Sweeping"
	case CloseoutStateCompleted:
		return "Completed"
	}
	return "Unknown"
}

// CloseoutSession is the ephemeral wizard state for one month. It is a
// convenience record only: every transition re-validates against durable
// budget and goal rows, so losing a session is always safe.
type CloseoutSession struct {
	Month       Month
	State       CloseoutState
	Summary     CloseoutSummary
	SweepAmount decimal.Decimal
	GoalID      *uuid.UUID
}
