package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
)

// ContributeGoalBody is the request body for contributing to a goal.
type ContributeGoalBody struct {
	Amount string `json:"amount" required:"true" doc:"Positive decimal amount to add"`
}

// ContributeGoalInput is the Huma input for contributing to a goal.
type ContributeGoalInput struct {
	ID   string `path:"id" doc:"Goal UUID"`
	Body ContributeGoalBody
}

// ContributeGoalOutput is the Huma output for contributing to a goal.
type ContributeGoalOutput struct {
	Body Goal
}

// ContributeGoalHandler handles POST /v1/goal/{id}/contribute.
type ContributeGoalHandler struct {
	Operator actionProcessor
}

// NewContributeGoalHandler creates a new ContributeGoalHandler.
func NewContributeGoalHandler(op actionProcessor) *ContributeGoalHandler {
	return &ContributeGoalHandler{Operator: op}
}

// Register registers the contribute endpoint with the Huma API.
func (h *ContributeGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "contribute-goal",
		Method:      http.MethodPost,
		Path:        "/v1/goal/{id}/contribute",
		Summary:     "Contribute to savings goal",
		Description: "Adds money to a goal; the saved amount only ever grows.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *ContributeGoalHandler) handle(ctx context.Context, input *ContributeGoalInput) (*ContributeGoalOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	action := &actions.ContributeToGoal{GoalID: id, Amount: amount}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to contribute to goal")
	}

	return &ContributeGoalOutput{Body: goalView(action.Result)}, nil
}
