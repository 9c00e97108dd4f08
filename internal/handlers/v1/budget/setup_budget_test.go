package budget

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/service"
)

// fakeProcessor records the actions it sees and fills in results the way the
// operator would after a committed transaction.
type fakeProcessor struct {
	processed []actions.IAction
	err       error
}

func (f *fakeProcessor) Process(_ context.Context, action actions.IAction) error {
	f.processed = append(f.processed, action)
	if f.err != nil {
		return f.err
	}
	if setup, ok := action.(*actions.SetupBudget); ok {
		setup.Result = service.MonthlyBudget{
			Month:       setup.Month,
			Income:      setup.Income,
			FreeToSpend: setup.Income,
		}
	}
	return nil
}

func TestHTTP_SetupBudget_Success(t *testing.T) {
	processor := &fakeProcessor{}

	_, api := humatest.New(t)
	NewSetupBudgetHandler(processor).Register(api)

	resp := api.Post("/v1/budget/setup", SetupBudgetBody{
		Month:             "2025-07",
		Income:            "3000.00",
		SavingsGoalAmount: "10000.00",
		AllocationMethod:  "50/30/20",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	if assert.Len(t, processor.processed, 1) {
		setup := processor.processed[0].(*actions.SetupBudget)
		assert.Equal(t, "2025-07", setup.Month.String())
		assert.True(t, setup.Income.Equal(decimal.RequireFromString("3000.00")))
		assert.True(t, setup.StartingBalance.IsZero())
		assert.Equal(t, actions.AllocationFiftyThirtyTwenty, setup.AllocationMethod)
	}

	var body MonthlyBudget
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2025-07", body.Month)
}

func TestHTTP_SetupBudget_ExplicitCategories(t *testing.T) {
	processor := &fakeProcessor{}

	_, api := humatest.New(t)
	NewSetupBudgetHandler(processor).Register(api)

	resp := api.Post("/v1/budget/setup", SetupBudgetBody{
		Month:             "2025-07",
		Income:            "3000.00",
		SavingsGoalAmount: "5000.00",
		InitialCategories: []InitialCategoryBody{
			{Name: "Rent", Type: 0, Planned: "1200.00"},
			{Name: "Emergency Fund", Type: 2, Planned: "400.00"},
		},
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	if assert.Len(t, processor.processed, 1) {
		setup := processor.processed[0].(*actions.SetupBudget)
		if assert.Len(t, setup.Categories, 2) {
			assert.Equal(t, "Rent", setup.Categories[0].Name)
			assert.Equal(t, service.CategoryTypeSaving, setup.Categories[1].Type)
		}
	}
}

func TestHTTP_SetupBudget_InvalidIncome(t *testing.T) {
	processor := &fakeProcessor{}

	_, api := humatest.New(t)
	NewSetupBudgetHandler(processor).Register(api)

	resp := api.Post("/v1/budget/setup", SetupBudgetBody{
		Month:             "2025-07",
		Income:            "not-a-decimal",
		SavingsGoalAmount: "5000.00",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Empty(t, processor.processed)
}

func TestHTTP_SetupBudget_ConflictFromAction(t *testing.T) {
	processor := &fakeProcessor{err: service.NewConflictError("a budget for 2025-07 already exists")}

	_, api := humatest.New(t)
	NewSetupBudgetHandler(processor).Register(api)

	resp := api.Post("/v1/budget/setup", SetupBudgetBody{
		Month:             "2025-07",
		Income:            "3000.00",
		SavingsGoalAmount: "5000.00",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
}
