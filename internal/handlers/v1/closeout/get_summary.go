package closeout

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/service"
)

// GetSummaryInput is the Huma input for the closeout summary.
type GetSummaryInput struct {
	Month string `path:"month" doc:"Month to review, YYYY-MM"`
}

// GetSummaryOutput is the Huma output for the closeout summary.
type GetSummaryOutput struct {
	Body Summary
}

// GetSummaryHandler handles GET /v1/closeout/{month}/summary.
type GetSummaryHandler struct {
	Sessions closeoutSessions
}

// NewGetSummaryHandler creates a new GetSummaryHandler.
func NewGetSummaryHandler(sessions closeoutSessions) *GetSummaryHandler {
	return &GetSummaryHandler{Sessions: sessions}
}

// Register registers the summary endpoint with the Huma API.
func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-closeout-summary",
		Method:      http.MethodGet,
		Path:        "/v1/closeout/{month}/summary",
		Summary:     "Get month-end summary",
		Description: "Recomputes the month-end review from committed rows and opens the wizard in Reviewing.",
		Tags:        []string{"Closeout"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	month, err := service.ParseMonth(input.Month)
	if err != nil {
		return nil, httperror.FromService(err, "invalid month")
	}

	summary, err := h.Sessions.Summary(ctx, month)
	if err != nil {
		return nil, httperror.FromService(err, "failed to build closeout summary")
	}

	return &GetSummaryOutput{Body: summaryView(summary, service.CloseoutStateReviewing)}, nil
}
