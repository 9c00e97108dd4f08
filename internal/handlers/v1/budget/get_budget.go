package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/service"
)

// budgetReader is the interface for reading assembled budgets.
type budgetReader interface {
	GetBudget(ctx context.Context, month service.Month) (*service.MonthlyBudget, error)
}

// GetBudgetInput is the Huma input for fetching a month's budget.
type GetBudgetInput struct {
	Month string `path:"month" doc:"Budget month, YYYY-MM"`
}

// GetBudgetOutput is the Huma output for fetching a budget.
type GetBudgetOutput struct {
	Body MonthlyBudget
}

// GetBudgetHandler handles GET /v1/budget/{month} and GET /v1/budget/current.
type GetBudgetHandler struct {
	BudgetReader budgetReader

	// now is swappable for tests; "current" resolves against it.
	now func() time.Time
}

// NewGetBudgetHandler creates a new GetBudgetHandler.
func NewGetBudgetHandler(reader budgetReader) *GetBudgetHandler {
	return &GetBudgetHandler{BudgetReader: reader, now: time.Now}
}

// Register registers the budget read endpoints with the Huma API.
func (h *GetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-current-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budget/current",
		Summary:     "Get current month's budget",
		Description: "Returns the assembled budget for the current calendar month.",
		Tags:        []string{"Budget"},
	}, h.handleCurrent)

	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budget/{month}",
		Summary:     "Get a month's budget",
		Description: "Returns the assembled budget for the given month.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func (h *GetBudgetHandler) handle(ctx context.Context, input *GetBudgetInput) (*GetBudgetOutput, error) {
	month, err := service.ParseMonth(input.Month)
	if err != nil {
		return nil, httperror.FromService(err, "invalid month")
	}
	return h.fetch(ctx, month)
}

func (h *GetBudgetHandler) handleCurrent(ctx context.Context, _ *struct{}) (*GetBudgetOutput, error) {
	return h.fetch(ctx, service.MonthOf(h.now()))
}

func (h *GetBudgetHandler) fetch(ctx context.Context, month service.Month) (*GetBudgetOutput, error) {
	mb, err := h.BudgetReader.GetBudget(ctx, month)
	if err != nil {
		return nil, httperror.FromService(err, "failed to fetch budget")
	}
	return &GetBudgetOutput{Body: BudgetView(mb)}, nil
}
