package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/service"
)

// UpdateBudgetBody is the request body for patching a budget.
type UpdateBudgetBody struct {
	Income          *string `json:"income,omitempty" doc:"New expected income"`
	StartingBalance *string `json:"startingBalance,omitempty" doc:"New starting balance"`
}

// UpdateBudgetInput is the Huma input for patching a budget.
type UpdateBudgetInput struct {
	Month string `path:"month" doc:"Budget month, YYYY-MM"`
	Body  UpdateBudgetBody
}

// UpdateBudgetOutput is the Huma output for patching a budget.
type UpdateBudgetOutput struct {
	Body MonthlyBudget
}

// UpdateBudgetHandler handles PATCH /v1/budget/{month}.
type UpdateBudgetHandler struct {
	Operator actionProcessor
}

// NewUpdateBudgetHandler creates a new UpdateBudgetHandler.
func NewUpdateBudgetHandler(op actionProcessor) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{Operator: op}
}

// Register registers the budget patch endpoint with the Huma API.
func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPatch,
		Path:        "/v1/budget/{month}",
		Summary:     "Update a month's budget",
		Description: "Updates the income or starting balance of an existing budget.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func parseOptionalDecimal(field string, raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	value, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return &value, nil
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	month, err := service.ParseMonth(input.Month)
	if err != nil {
		return nil, httperror.FromService(err, "invalid month")
	}
	income, err := parseOptionalDecimal("income", input.Body.Income)
	if err != nil {
		return nil, err
	}
	startingBalance, err := parseOptionalDecimal("startingBalance", input.Body.StartingBalance)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateBudget{
		Month:           month,
		Income:          income,
		StartingBalance: startingBalance,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to update budget")
	}

	return &UpdateBudgetOutput{Body: BudgetView(&action.Result)}, nil
}
