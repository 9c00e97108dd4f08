package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSavingsGoal_ProgressPercent(t *testing.T) {
	tests := []struct {
		name     string
		saved    string
		target   string
		expected string
	}{
		{name: "partway", saved: "250", target: "1000", expected: "25"},
		{name: "complete", saved: "1000", target: "1000", expected: "100"},
		{name: "over target stays uncapped", saved: "1500", target: "1000", expected: "150"},
		{name: "nothing saved", saved: "0", target: "1000", expected: "0"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			goal := SavingsGoal{
				SavedAmount:  decimal.RequireFromString(test.saved),
				TargetAmount: decimal.RequireFromString(test.target),
			}
			assert.True(t, goal.ProgressPercent().Equal(decimal.RequireFromString(test.expected)),
				"got %s", goal.ProgressPercent())
		})
	}
}

func TestSavingsGoal_ProgressPercentZeroTarget(t *testing.T) {
	goal := SavingsGoal{
		SavedAmount:  decimal.RequireFromString("50"),
		TargetAmount: decimal.Zero,
	}
	assert.True(t, goal.ProgressPercent().IsZero())
}

func TestSavingsGoal_Completed(t *testing.T) {
	goal := SavingsGoal{
		SavedAmount:  decimal.RequireFromString("999.99"),
		TargetAmount: decimal.RequireFromString("1000"),
	}
	assert.False(t, goal.Completed())

	goal.SavedAmount = decimal.RequireFromString("1000.00")
	assert.True(t, goal.Completed())
}
