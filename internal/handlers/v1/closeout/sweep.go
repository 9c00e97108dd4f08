package closeout

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/service"
)

// SweepBody is the request body for the sweep step.
type SweepBody struct {
	Amount string  `json:"amount" required:"true" doc:"Non-negative amount to sweep"`
	GoalID *string `json:"goalId,omitempty" doc:"Goal UUID; omit to sweep nothing and let the variance roll over"`
}

// SweepInput is the Huma input for the sweep step.
type SweepInput struct {
	Month string `path:"month" doc:"Month being closed, YYYY-MM"`
	Body  SweepBody
}

// SweepResponseBody is the response body for the sweep step.
type SweepResponseBody struct {
	Month       string `json:"month" doc:"Month being closed"`
	State       string `json:"state" doc:"Wizard state after the sweep"`
	SweptAmount string `json:"sweptAmount" doc:"Amount moved into the goal, 0 when no goal given"`
	GoalID      string `json:"goalId,omitempty" doc:"Goal that received the sweep"`
	GoalSaved   string `json:"goalSaved,omitempty" doc:"Goal's saved amount after the sweep"`
}

// SweepOutput is the Huma output for the sweep step.
type SweepOutput struct {
	Body SweepResponseBody
}

// SweepHandler handles POST /v1/closeout/{month}/sweep. The wizard session
// moves to Sweeping only after the action's transaction commits; the durable
// validation lives in the action itself.
type SweepHandler struct {
	Sessions closeoutSessions
	Operator actionProcessor
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(sessions closeoutSessions, op actionProcessor) *SweepHandler {
	return &SweepHandler{Sessions: sessions, Operator: op}
}

// Register registers the sweep endpoint with the Huma API.
func (h *SweepHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "sweep-surplus",
		Method:      http.MethodPost,
		Path:        "/v1/closeout/{month}/sweep",
		Summary:     "Sweep surplus into a goal",
		Description: "Moves part of the month's surplus into a savings goal during closeout.",
		Tags:        []string{"Closeout"},
	}, h.handle)
}

func (h *SweepHandler) handle(ctx context.Context, input *SweepInput) (*SweepOutput, error) {
	month, err := service.ParseMonth(input.Month)
	if err != nil {
		return nil, httperror.FromService(err, "invalid month")
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	var goalID *uuid.UUID
	if input.Body.GoalID != nil {
		parsed, err := uuid.FromString(*input.Body.GoalID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid goalId", err)
		}
		goalID = &parsed
	}

	// Fast pre-check against the current summary; the action re-validates
	// against locked rows before committing.
	if err := h.Sessions.PrepareSweep(ctx, month, amount, goalID); err != nil {
		return nil, httperror.FromService(err, "sweep rejected")
	}

	action := &actions.SweepSurplus{Month: month, Amount: amount, GoalID: goalID}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to sweep surplus")
	}

	body := SweepResponseBody{
		Month:       month.String(),
		State:       service.CloseoutStateSweeping.String(),
		SweptAmount: decimal.Zero.String(),
	}
	if goalID != nil {
		body.SweptAmount = amount.String()
		body.GoalID = goalID.String()
		body.GoalSaved = action.Result.SavedAmount.String()
	}
	return &SweepOutput{Body: body}, nil
}
