package service

import (
	"context"

	"github.com/carson-networks/budget-engine/internal/storage"
)

// ReportService serves closed-out month reports.
type ReportService struct {
	storage *storage.Storage
}

// NewReportService creates a new ReportService.
func NewReportService(store *storage.Storage) *ReportService {
	return &ReportService{storage: store}
}

// GetReport retrieves the report for a closed-out month.
func (s *ReportService) GetReport(ctx context.Context, month Month) (*MonthlyReport, error) {
	row, err := s.storage.Reports.FindByMonth(ctx, month.String())
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, NewNotFoundError("no report exists for %s", month)
	}
	converted := MonthlyReportFromStorage(row)
	return &converted, nil
}

// ListReports returns all reports, most recent month first.
func (s *ReportService) ListReports(ctx context.Context) ([]MonthlyReport, error) {
	rows, err := s.storage.Reports.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]MonthlyReport, len(rows))
	for i, row := range rows {
		converted[i] = MonthlyReportFromStorage(row)
	}
	return converted, nil
}
