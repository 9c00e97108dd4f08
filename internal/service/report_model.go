package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	reportstore "github.com/carson-networks/budget-engine/internal/storage/report"
)

// MonthlyReport is the immutable record written when a month is closed out.
type MonthlyReport struct {
	ID                uuid.UUID
	Month             Month
	TotalIncome       decimal.Decimal
	TotalPlanned      decimal.Decimal
	TotalActual       decimal.Decimal
	OverallVariance   decimal.Decimal
	SweptToGoal       decimal.Decimal
	CategoryBreakdown []CategoryVariance
	CreatedAt         time.Time
}

func MonthlyReportFromStorage(row *reportstore.MonthlyReport) MonthlyReport {
	month, _ := ParseMonth(row.Month)
	breakdown := make([]CategoryVariance, len(row.CategoryBreakdown))
	for i, line := range row.CategoryBreakdown {
		breakdown[i] = CategoryVariance{
			Name:     line.Name,
			Type:     CategoryTypeFromStorage(line.Type),
			Planned:  line.Planned,
			Actual:   line.Actual,
			Variance: line.Variance,
		}
	}
	return MonthlyReport{
		ID:                row.ID,
		Month:             month,
		TotalIncome:       row.TotalIncome,
		TotalPlanned:      row.TotalPlanned,
		TotalActual:       row.TotalActual,
		OverallVariance:   row.OverallVariance,
		SweptToGoal:       row.SweptToGoal,
		CategoryBreakdown: breakdown,
		CreatedAt:         row.CreatedAt,
	}
}
