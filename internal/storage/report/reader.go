package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Reader struct {
	exec executor
}

var _ IReportTable = (*Reader)(nil)

func NewReader(exec executor) *Reader {
	return &Reader{exec: exec}
}

const reportColumns = "id, month, total_income, total_planned, total_actual, overall_variance, swept_to_goal, category_breakdown, created_at"

// FindByMonth returns the report for the month, or nil when none exists.
func (r *Reader) FindByMonth(ctx context.Context, month string) (*MonthlyReport, error) {
	row := r.exec.QueryRowContext(ctx,
		"SELECT "+reportColumns+" FROM monthly_reports WHERE month = $1", month)

	rep, err := scanReport(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// List returns all reports, most recent month first.
func (r *Reader) List(ctx context.Context) ([]*MonthlyReport, error) {
	rows, err := r.exec.QueryContext(ctx,
		"SELECT "+reportColumns+" FROM monthly_reports ORDER BY month DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*MonthlyReport
	for rows.Next() {
		rep, err := scanReport(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, rep)
	}
	return result, rows.Err()
}

func scanReport(scan func(dest ...any) error) (*MonthlyReport, error) {
	var rep MonthlyReport
	var breakdownJSON []byte
	err := scan(&rep.ID, &rep.Month, &rep.TotalIncome, &rep.TotalPlanned, &rep.TotalActual,
		&rep.OverallVariance, &rep.SweptToGoal, &breakdownJSON, &rep.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(breakdownJSON, &rep.CategoryBreakdown); err != nil {
		return nil, err
	}
	return &rep, nil
}
