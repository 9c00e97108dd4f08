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

// InitialCategoryBody is one caller-supplied category for first-time setup.
type InitialCategoryBody struct {
	Name    string `json:"name" required:"true" doc:"Category name"`
	Type    int    `json:"type" doc:"0 Need, 1 Want, 2 Saving, 3 Income"`
	Planned string `json:"planned" required:"true" doc:"Planned decimal amount"`
	Icon    string `json:"icon" doc:"Display icon"`
	Color   string `json:"color" doc:"Display color"`
}

// SetupBudgetBody is the request body for first-time budget setup.
type SetupBudgetBody struct {
	Month             string                `json:"month" required:"true" doc:"Budget month, YYYY-MM"`
	Income            string                `json:"income" required:"true" doc:"Expected monthly income"`
	StartingBalance   string                `json:"startingBalance" doc:"Opening balance, defaults to 0"`
	SavingsGoalAmount string                `json:"savingsGoalAmount" required:"true" doc:"Target for the default savings goal"`
	AllocationMethod  string                `json:"allocationMethod" doc:"Allocation method, e.g. 50/30/20"`
	InitialCategories []InitialCategoryBody `json:"initialCategories,omitempty" doc:"Explicit categories, overrides the allocation method"`
}

// SetupBudgetInput is the Huma input for budget setup.
type SetupBudgetInput struct {
	Body SetupBudgetBody
}

// SetupBudgetOutput is the Huma output for budget setup.
type SetupBudgetOutput struct {
	Body MonthlyBudget
}

// SetupBudgetHandler handles POST /v1/budget/setup.
type SetupBudgetHandler struct {
	Operator actionProcessor
}

// NewSetupBudgetHandler creates a new SetupBudgetHandler.
func NewSetupBudgetHandler(op actionProcessor) *SetupBudgetHandler {
	return &SetupBudgetHandler{Operator: op}
}

// Register registers the setup endpoint with the Huma API.
func (h *SetupBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "setup-budget",
		Method:        http.MethodPost,
		Path:          "/v1/budget/setup",
		Summary:       "Set up the first budget",
		Description:   "Creates the first monthly budget, its categories and a default savings goal.",
		Tags:          []string{"Budget"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *SetupBudgetHandler) handle(ctx context.Context, input *SetupBudgetInput) (*SetupBudgetOutput, error) {
	month, err := service.ParseMonth(input.Body.Month)
	if err != nil {
		return nil, httperror.FromService(err, "invalid month")
	}
	income, err := decimal.NewFromString(input.Body.Income)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid income", err)
	}
	startingBalance := decimal.Zero
	if input.Body.StartingBalance != "" {
		startingBalance, err = decimal.NewFromString(input.Body.StartingBalance)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid startingBalance", err)
		}
	}
	savingsGoalAmount, err := decimal.NewFromString(input.Body.SavingsGoalAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid savingsGoalAmount", err)
	}

	initialCategories := make([]actions.InitialCategory, len(input.Body.InitialCategories))
	for i, cat := range input.Body.InitialCategories {
		planned, err := decimal.NewFromString(cat.Planned)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid planned amount for "+cat.Name, err)
		}
		initialCategories[i] = actions.InitialCategory{
			Name:    cat.Name,
			Type:    service.CategoryType(cat.Type),
			Planned: planned,
			Icon:    cat.Icon,
			Color:   cat.Color,
		}
	}

	action := &actions.SetupBudget{
		Month:             month,
		Income:            income,
		StartingBalance:   startingBalance,
		SavingsGoalAmount: savingsGoalAmount,
		AllocationMethod:  input.Body.AllocationMethod,
		Categories:        initialCategories,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to set up budget")
	}

	return &SetupBudgetOutput{Body: BudgetView(&action.Result)}, nil
}
