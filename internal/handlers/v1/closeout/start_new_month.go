package closeout

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	budgethandler "github.com/carson-networks/budget-engine/internal/handlers/v1/budget"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/service"
)

// StartNewMonthInput is the Huma input for finalizing a month.
type StartNewMonthInput struct {
	Month string `path:"month" doc:"Month to close, YYYY-MM"`
}

// StartNewMonthResponseBody is the response body for finalizing a month.
type StartNewMonthResponseBody struct {
	ClosedMonth string                      `json:"closedMonth" doc:"Month that was finalized"`
	State       string                      `json:"state" doc:"Wizard state, always Completed"`
	NewBudget   budgethandler.MonthlyBudget `json:"newBudget" doc:"The successor month's assembled budget"`
}

// StartNewMonthOutput is the Huma output for finalizing a month.
type StartNewMonthOutput struct {
	Body StartNewMonthResponseBody
}

// StartNewMonthHandler handles POST /v1/closeout/{month}/start-new-month.
type StartNewMonthHandler struct {
	Sessions closeoutSessions
	Operator actionProcessor
}

// NewStartNewMonthHandler creates a new StartNewMonthHandler.
func NewStartNewMonthHandler(sessions closeoutSessions, op actionProcessor) *StartNewMonthHandler {
	return &StartNewMonthHandler{Sessions: sessions, Operator: op}
}

// Register registers the start-new-month endpoint with the Huma API.
func (h *StartNewMonthHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "start-new-month",
		Method:        http.MethodPost,
		Path:          "/v1/closeout/{month}/start-new-month",
		Summary:       "Finalize month and open its successor",
		Description:   "Writes the month's immutable report and creates the next budget with the rolled-over balance.",
		Tags:          []string{"Closeout"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *StartNewMonthHandler) handle(ctx context.Context, input *StartNewMonthInput) (*StartNewMonthOutput, error) {
	month, err := service.ParseMonth(input.Month)
	if err != nil {
		return nil, httperror.FromService(err, "invalid month")
	}

	action := &actions.StartNewMonth{PriorMonth: month}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to start new month")
	}

	// The month is durably closed; drop its wizard session.
	h.Sessions.CompleteMonth(month)

	return &StartNewMonthOutput{Body: StartNewMonthResponseBody{
		ClosedMonth: month.String(),
		State:       service.CloseoutStateCompleted.String(),
		NewBudget:   budgethandler.BudgetView(&action.Result),
	}}, nil
}
