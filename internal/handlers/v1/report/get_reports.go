package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/service"
)

// reportReader is the interface for reading monthly reports.
type reportReader interface {
	GetReport(ctx context.Context, month service.Month) (*service.MonthlyReport, error)
	ListReports(ctx context.Context) ([]service.MonthlyReport, error)
}

// CategoryVariance is one line of a report's category breakdown.
type CategoryVariance struct {
	Name     string `json:"name" doc:"Category name"`
	Type     string `json:"type" doc:"Need, Want, Saving or Income"`
	Planned  string `json:"planned" doc:"Planned amount"`
	Actual   string `json:"actual" doc:"Actual spending"`
	Variance string `json:"variance" doc:"Planned minus actual"`
}

// MonthlyReport is the wire representation of a closed month's report.
type MonthlyReport struct {
	Month             string             `json:"month" doc:"Closed month, YYYY-MM"`
	TotalIncome       string             `json:"totalIncome" doc:"Income at closeout"`
	TotalPlanned      string             `json:"totalPlanned" doc:"Planned total at closeout"`
	TotalActual       string             `json:"totalActual" doc:"Actual total at closeout"`
	OverallVariance   string             `json:"overallVariance" doc:"Income minus actual"`
	SweptToGoal       string             `json:"sweptToGoal" doc:"Surplus swept into a goal"`
	CategoryBreakdown []CategoryVariance `json:"categoryBreakdown" doc:"Frozen per-category lines"`
}

func reportView(r service.MonthlyReport) MonthlyReport {
	breakdown := make([]CategoryVariance, len(r.CategoryBreakdown))
	for i, line := range r.CategoryBreakdown {
		breakdown[i] = CategoryVariance{
			Name:     line.Name,
			Type:     line.Type.String(),
			Planned:  line.Planned.String(),
			Actual:   line.Actual.String(),
			Variance: line.Variance.String(),
		}
	}
	return MonthlyReport{
		Month:             r.Month.String(),
		TotalIncome:       r.TotalIncome.String(),
		TotalPlanned:      r.TotalPlanned.String(),
		TotalActual:       r.TotalActual.String(),
		OverallVariance:   r.OverallVariance.String(),
		SweptToGoal:       r.SweptToGoal.String(),
		CategoryBreakdown: breakdown,
	}
}

// ListReportsResponseBody is the response body for listing reports.
type ListReportsResponseBody struct {
	Reports []MonthlyReport `json:"reports" doc:"Closed months, newest first"`
}

// ListReportsOutput is the Huma output for listing reports.
type ListReportsOutput struct {
	Body ListReportsResponseBody
}

// GetReportInput is the Huma input for fetching one report.
type GetReportInput struct {
	Month string `path:"month" doc:"Closed month, YYYY-MM"`
}

// GetReportOutput is the Huma output for fetching one report.
type GetReportOutput struct {
	Body MonthlyReport
}

// GetReportsHandler handles GET /v1/report and GET /v1/report/{month}.
type GetReportsHandler struct {
	ReportReader reportReader
}

// NewGetReportsHandler creates a new GetReportsHandler.
func NewGetReportsHandler(reader reportReader) *GetReportsHandler {
	return &GetReportsHandler{ReportReader: reader}
}

// Register registers the report read endpoints with the Huma API.
func (h *GetReportsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-reports",
		Method:      http.MethodGet,
		Path:        "/v1/report",
		Summary:     "List monthly reports",
		Description: "Returns the immutable reports of all closed months.",
		Tags:        []string{"Reports"},
	}, h.handleList)

	huma.Register(api, huma.Operation{
		OperationID: "get-report",
		Method:      http.MethodGet,
		Path:        "/v1/report/{month}",
		Summary:     "Get monthly report",
		Description: "Returns the immutable report of one closed month.",
		Tags:        []string{"Reports"},
	}, h.handleGet)
}

func (h *GetReportsHandler) handleList(ctx context.Context, _ *struct{}) (*ListReportsOutput, error) {
	reports, err := h.ReportReader.ListReports(ctx)
	if err != nil {
		return nil, httperror.FromService(err, "failed to list reports")
	}

	views := make([]MonthlyReport, len(reports))
	for i, r := range reports {
		views[i] = reportView(r)
	}
	return &ListReportsOutput{Body: ListReportsResponseBody{Reports: views}}, nil
}

func (h *GetReportsHandler) handleGet(ctx context.Context, input *GetReportInput) (*GetReportOutput, error) {
	month, err := service.ParseMonth(input.Month)
	if err != nil {
		return nil, httperror.FromService(err, "invalid month")
	}

	r, err := h.ReportReader.GetReport(ctx, month)
	if err != nil {
		return nil, httperror.FromService(err, "failed to fetch report")
	}
	return &GetReportOutput{Body: reportView(*r)}, nil
}
