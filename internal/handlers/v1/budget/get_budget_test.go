package budget

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-engine/internal/service"
)

// mockBudgetReader is a mock for budgetReader.
type mockBudgetReader struct {
	mock.Mock
}

func (m *mockBudgetReader) GetBudget(ctx context.Context, month service.Month) (*service.MonthlyBudget, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MonthlyBudget), args.Error(1)
}

func assembledJuly() *service.MonthlyBudget {
	month, _ := service.ParseMonth("2025-07")
	return &service.MonthlyBudget{
		ID:              uuid.Must(uuid.NewV4()),
		Month:           month,
		Income:          decimal.RequireFromString("3000.00"),
		StartingBalance: decimal.RequireFromString("150.00"),
		SweptToGoal:     decimal.Zero,
		Categories: []service.Category{
			{
				ID:      uuid.Must(uuid.NewV4()),
				Name:    "Groceries",
				Type:    service.CategoryTypeNeed,
				Planned: decimal.RequireFromString("400.00"),
				Actual:  decimal.RequireFromString("312.50"),
			},
		},
		Totals: service.BudgetTotals{
			Planned:    decimal.RequireFromString("400.00"),
			Actual:     decimal.RequireFromString("312.50"),
			Difference: decimal.RequireFromString("87.50"),
		},
		FreeToSpend: decimal.RequireFromString("2600.00"),
	}
}

func TestHTTP_GetBudget_Success(t *testing.T) {
	month, _ := service.ParseMonth("2025-07")

	mockReader := new(mockBudgetReader)
	mockReader.On("GetBudget", mock.Anything, month).Return(assembledJuly(), nil)

	_, api := humatest.New(t)
	NewGetBudgetHandler(mockReader).Register(api)

	resp := api.Get("/v1/budget/2025-07")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body MonthlyBudget
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2025-07", body.Month)
	assert.Equal(t, "3000", body.Income)
	assert.Equal(t, "2600", body.FreeToSpend)
	if assert.Len(t, body.Categories, 1) {
		assert.Equal(t, "Groceries", body.Categories[0].Name)
		assert.Equal(t, "Need", body.Categories[0].Type)
		assert.Equal(t, "87.5", body.Categories[0].Variance)
	}
	mockReader.AssertExpectations(t)
}

func TestHTTP_GetBudget_Current(t *testing.T) {
	month, _ := service.ParseMonth("2025-07")

	mockReader := new(mockBudgetReader)
	mockReader.On("GetBudget", mock.Anything, month).Return(assembledJuly(), nil)

	_, api := humatest.New(t)
	handler := NewGetBudgetHandler(mockReader)
	handler.now = func() time.Time { return time.Date(2025, 7, 18, 9, 0, 0, 0, time.UTC) }
	handler.Register(api)

	resp := api.Get("/v1/budget/current")
	assert.Equal(t, http.StatusOK, resp.Code)
	mockReader.AssertExpectations(t)
}

func TestHTTP_GetBudget_InvalidMonth(t *testing.T) {
	mockReader := new(mockBudgetReader)

	_, api := humatest.New(t)
	NewGetBudgetHandler(mockReader).Register(api)

	resp := api.Get("/v1/budget/July-2025")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockReader.AssertNotCalled(t, "GetBudget")
}

func TestHTTP_GetBudget_NotFound(t *testing.T) {
	month, _ := service.ParseMonth("2030-01")

	mockReader := new(mockBudgetReader)
	mockReader.On("GetBudget", mock.Anything, month).
		Return(nil, service.NewNotFoundError("no budget exists for %s", month))

	_, api := humatest.New(t)
	NewGetBudgetHandler(mockReader).Register(api)

	resp := api.Get("/v1/budget/2030-01")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
