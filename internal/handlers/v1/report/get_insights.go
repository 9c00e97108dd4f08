package report

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/service"
)

// InsightBody is one generated observation about a closed month.
type InsightBody struct {
	Type string `json:"type" doc:"Insight kind, e.g. overspend, surplus"`
	Text string `json:"text" doc:"Human-readable observation"`
}

// GetInsightsInput is the Huma input for report insights.
type GetInsightsInput struct {
	Month string `path:"month" doc:"Closed month, YYYY-MM"`
}

// GetInsightsResponseBody is the response body for report insights.
type GetInsightsResponseBody struct {
	Month    string        `json:"month" doc:"Closed month the insights cover"`
	Insights []InsightBody `json:"insights" doc:"Generated observations, display only"`
}

// GetInsightsOutput is the Huma output for report insights.
type GetInsightsOutput struct {
	Body GetInsightsResponseBody
}

// GetInsightsHandler handles GET /v1/report/{month}/insights. The endpoint
// is only registered when a summarizer collaborator is configured.
type GetInsightsHandler struct {
	ReportReader reportReader
	Summarizer   service.InsightSummarizer
}

// NewGetInsightsHandler creates a new GetInsightsHandler.
func NewGetInsightsHandler(reader reportReader, summarizer service.InsightSummarizer) *GetInsightsHandler {
	return &GetInsightsHandler{ReportReader: reader, Summarizer: summarizer}
}

// Register registers the insights endpoint with the Huma API.
func (h *GetInsightsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-report-insights",
		Method:      http.MethodGet,
		Path:        "/v1/report/{month}/insights",
		Summary:     "Get spending insights for a closed month",
		Description: "Summarizes a closed month's report into display-only observations.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *GetInsightsHandler) handle(ctx context.Context, input *GetInsightsInput) (*GetInsightsOutput, error) {
	month, err := service.ParseMonth(input.Month)
	if err != nil {
		return nil, httperror.FromService(err, "invalid month")
	}

	r, err := h.ReportReader.GetReport(ctx, month)
	if err != nil {
		return nil, httperror.FromService(err, "failed to fetch report")
	}

	insights, err := h.Summarizer.Summarize(ctx, spendingSummary(r))
	if err != nil {
		return nil, huma.NewError(http.StatusBadGateway, "insight summarizer unavailable", err)
	}

	views := make([]InsightBody, len(insights))
	for i, insight := range insights {
		views[i] = InsightBody{Type: insight.Type, Text: insight.Text}
	}
	return &GetInsightsOutput{Body: GetInsightsResponseBody{
		Month:    month.String(),
		Insights: views,
	}}, nil
}

// spendingSummary flattens a report into the plain-text form the summarizer
// consumes.
func spendingSummary(r *service.MonthlyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Month %s: income %s, planned %s, actual %s, variance %s, swept to goal %s.\n",
		r.Month, r.TotalIncome, r.TotalPlanned, r.TotalActual, r.OverallVariance, r.SweptToGoal)
	for _, line := range r.CategoryBreakdown {
		fmt.Fprintf(&b, "%s (%s): planned %s, actual %s, variance %s.\n",
			line.Name, line.Type, line.Planned, line.Actual, line.Variance)
	}
	return b.String()
}
