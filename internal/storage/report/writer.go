package report

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/gofrs/uuid/v5"
)

type Writer struct {
	tx *sql.Tx
	Reader
}

var _ IReportWriter = (*Writer)(nil)

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) Insert(ctx context.Context, create *MonthlyReportCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	breakdown := create.CategoryBreakdown
	if breakdown == nil {
		breakdown = []CategoryVariance{}
	}
	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return uuid.Nil, err
	}
	_, err = w.tx.ExecContext(ctx,
		`INSERT INTO monthly_reports
			(id, month, total_income, total_planned, total_actual, overall_variance, swept_to_goal, category_breakdown)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, create.Month, create.TotalIncome, create.TotalPlanned, create.TotalActual,
		create.OverallVariance, create.SweptToGoal, breakdownJSON)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
