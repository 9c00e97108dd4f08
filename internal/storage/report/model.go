package report

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// CategoryVariance is one line of a report's category breakdown.
type CategoryVariance struct {
	Name     string          `json:"name"`
	Type     int16           `json:"type"`
	Planned  decimal.Decimal `json:"planned"`
	Actual   decimal.Decimal `json:"actual"`
	Variance decimal.Decimal `json:"variance"`
}

// MonthlyReport is the immutable record written when a month is closed out.
type MonthlyReport struct {
	ID                uuid.UUID
	Month             string
	TotalIncome       decimal.Decimal
	TotalPlanned      decimal.Decimal
	TotalActual       decimal.Decimal
	OverallVariance   decimal.Decimal
	SweptToGoal       decimal.Decimal
	CategoryBreakdown []CategoryVariance
	CreatedAt         time.Time
}

// MonthlyReportCreate is the input for writing a closeout report.
type MonthlyReportCreate struct {
	Month             string
	TotalIncome       decimal.Decimal
	TotalPlanned      decimal.Decimal
	TotalActual       decimal.Decimal
	OverallVariance   decimal.Decimal
	SweptToGoal       decimal.Decimal
	CategoryBreakdown []CategoryVariance
}

// IReportTable defines read access to the monthly_reports table.
//
//go:generate mockery --name IReportTable --output mock_IReportTable.go
type IReportTable interface {
	FindByMonth(ctx context.Context, month string) (*MonthlyReport, error)
	List(ctx context.Context) ([]*MonthlyReport, error)
}

// IReportWriter defines transactional access to the monthly_reports table.
type IReportWriter interface {
	IReportTable
	Insert(ctx context.Context, create *MonthlyReportCreate) (uuid.UUID, error)
}
