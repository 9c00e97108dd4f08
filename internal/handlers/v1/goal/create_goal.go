package goal

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
)

// CreateGoalBody is the request body for creating a goal.
type CreateGoalBody struct {
	Name                string `json:"name" required:"true" doc:"Goal name"`
	TargetAmount        string `json:"targetAmount" required:"true" doc:"Positive target amount"`
	MonthlyContribution string `json:"monthlyContribution" doc:"Suggested monthly contribution, defaults to 0"`
	TargetDate          string `json:"targetDate" doc:"Optional target date, YYYY-MM-DD"`
}

// CreateGoalInput is the Huma input for creating a goal.
type CreateGoalInput struct {
	Body CreateGoalBody
}

// CreateGoalOutput is the Huma output for creating a goal.
type CreateGoalOutput struct {
	Body Goal
}

// CreateGoalHandler handles POST /v1/goal.
type CreateGoalHandler struct {
	Operator actionProcessor
}

// NewCreateGoalHandler creates a new CreateGoalHandler.
func NewCreateGoalHandler(op actionProcessor) *CreateGoalHandler {
	return &CreateGoalHandler{Operator: op}
}

// Register registers the create goal endpoint with the Huma API.
func (h *CreateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-goal",
		Method:        http.MethodPost,
		Path:          "/v1/goal",
		Summary:       "Create savings goal",
		Description:   "Creates a savings goal with zero saved amount.",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	targetAmount, err := decimal.NewFromString(input.Body.TargetAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
	}
	monthlyContribution := decimal.Zero
	if input.Body.MonthlyContribution != "" {
		monthlyContribution, err = decimal.NewFromString(input.Body.MonthlyContribution)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid monthlyContribution", err)
		}
	}
	var targetDate *time.Time
	if input.Body.TargetDate != "" {
		parsed, err := time.Parse(time.DateOnly, input.Body.TargetDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid targetDate", err)
		}
		targetDate = &parsed
	}

	action := &actions.CreateGoal{
		Name:                input.Body.Name,
		TargetAmount:        targetAmount,
		MonthlyContribution: monthlyContribution,
		TargetDate:          targetDate,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to create goal")
	}

	return &CreateGoalOutput{Body: goalView(action.Result)}, nil
}
