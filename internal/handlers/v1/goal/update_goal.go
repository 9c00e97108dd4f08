package goal

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
)

// UpdateGoalBody is the request body for patching a goal. The saved amount
// is not patchable; use the contribute endpoint.
type UpdateGoalBody struct {
	Name                *string `json:"name,omitempty" doc:"New goal name"`
	TargetAmount        *string `json:"targetAmount,omitempty" doc:"New positive target amount"`
	MonthlyContribution *string `json:"monthlyContribution,omitempty" doc:"New suggested monthly contribution"`
	TargetDate          *string `json:"targetDate,omitempty" doc:"New target date, YYYY-MM-DD"`
}

// UpdateGoalInput is the Huma input for patching a goal.
type UpdateGoalInput struct {
	ID   string `path:"id" doc:"Goal UUID"`
	Body UpdateGoalBody
}

// UpdateGoalOutput is the Huma output for patching a goal.
type UpdateGoalOutput struct {
	Body Goal
}

// UpdateGoalHandler handles PATCH /v1/goal/{id}.
type UpdateGoalHandler struct {
	Operator actionProcessor
}

// NewUpdateGoalHandler creates a new UpdateGoalHandler.
func NewUpdateGoalHandler(op actionProcessor) *UpdateGoalHandler {
	return &UpdateGoalHandler{Operator: op}
}

// Register registers the update goal endpoint with the Huma API.
func (h *UpdateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-goal",
		Method:      http.MethodPatch,
		Path:        "/v1/goal/{id}",
		Summary:     "Update savings goal",
		Description: "Updates a goal's name, target, contribution or date.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *UpdateGoalHandler) handle(ctx context.Context, input *UpdateGoalInput) (*UpdateGoalOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}

	var targetAmount *decimal.Decimal
	if input.Body.TargetAmount != nil {
		parsed, err := decimal.NewFromString(*input.Body.TargetAmount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
		}
		targetAmount = &parsed
	}
	var monthlyContribution *decimal.Decimal
	if input.Body.MonthlyContribution != nil {
		parsed, err := decimal.NewFromString(*input.Body.MonthlyContribution)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid monthlyContribution", err)
		}
		monthlyContribution = &parsed
	}
	var targetDate *time.Time
	if input.Body.TargetDate != nil {
		parsed, err := time.Parse(time.DateOnly, *input.Body.TargetDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid targetDate", err)
		}
		targetDate = &parsed
	}

	action := &actions.UpdateGoal{
		ID:                  id,
		Name:                input.Body.Name,
		TargetAmount:        targetAmount,
		MonthlyContribution: monthlyContribution,
		TargetDate:          targetDate,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to update goal")
	}

	return &UpdateGoalOutput{Body: goalView(action.Result)}, nil
}
