package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-engine/internal/service"
)

// mockReportReader is a mock for reportReader.
type mockReportReader struct {
	mock.Mock
}

func (m *mockReportReader) GetReport(ctx context.Context, month service.Month) (*service.MonthlyReport, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MonthlyReport), args.Error(1)
}

func (m *mockReportReader) ListReports(ctx context.Context) ([]service.MonthlyReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.MonthlyReport), args.Error(1)
}

// mockSummarizer is a mock for service.InsightSummarizer.
type mockSummarizer struct {
	mock.Mock
}

func (m *mockSummarizer) Summarize(ctx context.Context, spendingSummary string) ([]service.Insight, error) {
	args := m.Called(ctx, spendingSummary)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Insight), args.Error(1)
}

func julyReport() *service.MonthlyReport {
	month, _ := service.ParseMonth("2025-07")
	return &service.MonthlyReport{
		ID:              uuid.Must(uuid.NewV4()),
		Month:           month,
		TotalIncome:     decimal.RequireFromString("3000.00"),
		TotalPlanned:    decimal.RequireFromString("2600.00"),
		TotalActual:     decimal.RequireFromString("2500.00"),
		OverallVariance: decimal.RequireFromString("500.00"),
		SweptToGoal:     decimal.RequireFromString("300.00"),
		CategoryBreakdown: []service.CategoryVariance{
			{
				Name:     "Groceries",
				Type:     service.CategoryTypeNeed,
				Planned:  decimal.RequireFromString("400.00"),
				Actual:   decimal.RequireFromString("340.00"),
				Variance: decimal.RequireFromString("60.00"),
			},
		},
	}
}

func TestHTTP_GetReport_Success(t *testing.T) {
	month, _ := service.ParseMonth("2025-07")

	mockReader := new(mockReportReader)
	mockReader.On("GetReport", mock.Anything, month).Return(julyReport(), nil)

	_, api := humatest.New(t)
	NewGetReportsHandler(mockReader).Register(api)

	resp := api.Get("/v1/report/2025-07")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body MonthlyReport
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2025-07", body.Month)
	assert.Equal(t, "300", body.SweptToGoal)
	if assert.Len(t, body.CategoryBreakdown, 1) {
		assert.Equal(t, "Groceries", body.CategoryBreakdown[0].Name)
		assert.Equal(t, "Need", body.CategoryBreakdown[0].Type)
	}
}

func TestHTTP_GetReport_NotFound(t *testing.T) {
	month, _ := service.ParseMonth("2025-01")

	mockReader := new(mockReportReader)
	mockReader.On("GetReport", mock.Anything, month).
		Return(nil, service.NewNotFoundError("no report exists for %s", month))

	_, api := humatest.New(t)
	NewGetReportsHandler(mockReader).Register(api)

	resp := api.Get("/v1/report/2025-01")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_ListReports_Success(t *testing.T) {
	mockReader := new(mockReportReader)
	mockReader.On("ListReports", mock.Anything).Return([]service.MonthlyReport{*julyReport()}, nil)

	_, api := humatest.New(t)
	NewGetReportsHandler(mockReader).Register(api)

	resp := api.Get("/v1/report")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body ListReportsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Reports, 1)
}

func TestHTTP_GetInsights_Success(t *testing.T) {
	month, _ := service.ParseMonth("2025-07")

	mockReader := new(mockReportReader)
	mockReader.On("GetReport", mock.Anything, month).Return(julyReport(), nil)

	summarizer := new(mockSummarizer)
	summarizer.On("Summarize", mock.Anything, mock.MatchedBy(func(summary string) bool {
		// The flattened report carries the headline numbers and each line.
		return len(summary) > 0
	})).Return([]service.Insight{
		{Type: "surplus", Text: "You finished July 500 under budget."},
	}, nil)

	_, api := humatest.New(t)
	NewGetInsightsHandler(mockReader, summarizer).Register(api)

	resp := api.Get("/v1/report/2025-07/insights")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body GetInsightsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2025-07", body.Month)
	if assert.Len(t, body.Insights, 1) {
		assert.Equal(t, "surplus", body.Insights[0].Type)
	}
	summarizer.AssertExpectations(t)
}

func TestHTTP_GetInsights_SummarizerUnavailable(t *testing.T) {
	month, _ := service.ParseMonth("2025-07")

	mockReader := new(mockReportReader)
	mockReader.On("GetReport", mock.Anything, month).Return(julyReport(), nil)

	summarizer := new(mockSummarizer)
	summarizer.On("Summarize", mock.Anything, mock.Anything).
		Return(nil, errors.New("upstream timeout"))

	_, api := humatest.New(t)
	NewGetInsightsHandler(mockReader, summarizer).Register(api)

	resp := api.Get("/v1/report/2025-07/insights")
	assert.Equal(t, http.StatusBadGateway, resp.Code)
}

func TestSpendingSummary_IncludesCategoryLines(t *testing.T) {
	summary := spendingSummary(julyReport())
	assert.Contains(t, summary, "Month 2025-07")
	assert.Contains(t, summary, "income 3000")
	assert.Contains(t, summary, "Groceries (Need)")
}
