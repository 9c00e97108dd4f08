package closeout

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/service"
)

// mockSessions is a mock for closeoutSessions.
type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) Summary(ctx context.Context, month service.Month) (*service.CloseoutSummary, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CloseoutSummary), args.Error(1)
}

func (m *mockSessions) PrepareSweep(ctx context.Context, month service.Month, amount decimal.Decimal, goalID *uuid.UUID) error {
	args := m.Called(ctx, month, amount, goalID)
	return args.Error(0)
}

func (m *mockSessions) CompleteMonth(month service.Month) {
	m.Called(month)
}

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
	switch a := action.(type) {
	case *actions.SweepSurplus:
		if a.GoalID != nil {
			a.Result = service.SavingsGoal{
				ID:          *a.GoalID,
				SavedAmount: decimal.RequireFromString("800.00"),
			}
		}
	case *actions.StartNewMonth:
		a.Result = service.MonthlyBudget{
			Month:  a.PriorMonth.Next(),
			Income: decimal.RequireFromString("3000.00"),
		}
	}
	return nil
}

func julySummary() *service.CloseoutSummary {
	month, _ := service.ParseMonth("2025-07")
	return &service.CloseoutSummary{
		Month:           month,
		TotalIncome:     decimal.RequireFromString("3000.00"),
		TotalPlanned:    decimal.RequireFromString("2600.00"),
		TotalActual:     decimal.RequireFromString("2500.00"),
		OverallVariance: decimal.RequireFromString("500.00"),
		Overspent: []service.CategoryVariance{
			{
				Name:     "Dining",
				Type:     service.CategoryTypeWant,
				Planned:  decimal.RequireFromString("200.00"),
				Actual:   decimal.RequireFromString("260.00"),
				Variance: decimal.RequireFromString("-60.00"),
			},
		},
		Underspent: []service.CategoryVariance{
			{
				Name:     "Groceries",
				Type:     service.CategoryTypeNeed,
				Planned:  decimal.RequireFromString("400.00"),
				Actual:   decimal.RequireFromString("340.00"),
				Variance: decimal.RequireFromString("60.00"),
			},
		},
	}
}

func TestHTTP_GetSummary_Success(t *testing.T) {
	month, _ := service.ParseMonth("2025-07")

	sessions := new(mockSessions)
	sessions.On("Summary", mock.Anything, month).Return(julySummary(), nil)

	_, api := humatest.New(t)
	NewGetSummaryHandler(sessions).Register(api)

	resp := api.Get("/v1/closeout/2025-07/summary")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body Summary
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2025-07", body.Month)
	assert.Equal(t, "Reviewing", body.State)
	assert.Equal(t, "500", body.OverallVariance)
	if assert.Len(t, body.Overspent, 1) {
		assert.Equal(t, "Dining", body.Overspent[0].Name)
	}
	if assert.Len(t, body.Underspent, 1) {
		assert.Equal(t, "Groceries", body.Underspent[0].Name)
	}
	sessions.AssertExpectations(t)
}

func TestHTTP_GetSummary_UnknownMonth(t *testing.T) {
	month, _ := service.ParseMonth("2030-01")

	sessions := new(mockSessions)
	sessions.On("Summary", mock.Anything, month).
		Return(nil, service.NewNotFoundError("no budget exists for %s", month))

	_, api := humatest.New(t)
	NewGetSummaryHandler(sessions).Register(api)

	resp := api.Get("/v1/closeout/2030-01/summary")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_Sweep_Success(t *testing.T) {
	month, _ := service.ParseMonth("2025-07")
	goalID := uuid.Must(uuid.NewV4())
	amount := decimal.RequireFromString("300.00")

	sessions := new(mockSessions)
	sessions.On("PrepareSweep", mock.Anything, month, amount, mock.MatchedBy(func(id *uuid.UUID) bool {
		return id != nil && *id == goalID
	})).Return(nil)

	processor := &fakeProcessor{}

	_, api := humatest.New(t)
	NewSweepHandler(sessions, processor).Register(api)

	goalIDString := goalID.String()
	resp := api.Post("/v1/closeout/2025-07/sweep", SweepBody{
		Amount: "300.00",
		GoalID: &goalIDString,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SweepResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Sweeping", body.State)
	assert.Equal(t, "300", body.SweptAmount)
	assert.Equal(t, goalID.String(), body.GoalID)
	assert.Equal(t, "800", body.GoalSaved)
	assert.Len(t, processor.processed, 1)
	sessions.AssertExpectations(t)
}

func TestHTTP_Sweep_NoGoal(t *testing.T) {
	month, _ := service.ParseMonth("2025-07")

	sessions := new(mockSessions)
	sessions.On("PrepareSweep", mock.Anything, month, mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.IsZero()
	}), (*uuid.UUID)(nil)).Return(nil)

	processor := &fakeProcessor{}

	_, api := humatest.New(t)
	NewSweepHandler(sessions, processor).Register(api)

	resp := api.Post("/v1/closeout/2025-07/sweep", SweepBody{Amount: "0"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SweepResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "0", body.SweptAmount)
	assert.Empty(t, body.GoalID)
}

func TestHTTP_Sweep_RejectedByPreCheck(t *testing.T) {
	month, _ := service.ParseMonth("2025-07")

	sessions := new(mockSessions)
	sessions.On("PrepareSweep", mock.Anything, month, mock.Anything, mock.Anything).
		Return(service.NewValidationError("sweep amount exceeds the month's surplus"))

	processor := &fakeProcessor{}

	_, api := humatest.New(t)
	NewSweepHandler(sessions, processor).Register(api)

	goalIDString := uuid.Must(uuid.NewV4()).String()
	resp := api.Post("/v1/closeout/2025-07/sweep", SweepBody{
		Amount: "99999.00",
		GoalID: &goalIDString,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Empty(t, processor.processed)
}

func TestHTTP_Sweep_InvalidGoalID(t *testing.T) {
	sessions := new(mockSessions)
	processor := &fakeProcessor{}

	_, api := humatest.New(t)
	NewSweepHandler(sessions, processor).Register(api)

	badID := "not-a-uuid"
	resp := api.Post("/v1/closeout/2025-07/sweep", SweepBody{
		Amount: "10.00",
		GoalID: &badID,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	sessions.AssertNotCalled(t, "PrepareSweep", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_StartNewMonth_Success(t *testing.T) {
	month, _ := service.ParseMonth("2025-07")

	sessions := new(mockSessions)
	sessions.On("CompleteMonth", month).Return()

	processor := &fakeProcessor{}

	_, api := humatest.New(t)
	NewStartNewMonthHandler(sessions, processor).Register(api)

	resp := api.Post("/v1/closeout/2025-07/start-new-month", struct{}{})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body StartNewMonthResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2025-07", body.ClosedMonth)
	assert.Equal(t, "Completed", body.State)
	assert.Equal(t, "2025-08", body.NewBudget.Month)
	sessions.AssertExpectations(t)
}

func TestHTTP_StartNewMonth_Conflict(t *testing.T) {
	sessions := new(mockSessions)
	processor := &fakeProcessor{err: service.NewConflictError("2025-07 is already closed")}

	_, api := humatest.New(t)
	NewStartNewMonthHandler(sessions, processor).Register(api)

	resp := api.Post("/v1/closeout/2025-07/start-new-month", struct{}{})

	assert.Equal(t, http.StatusConflict, resp.Code)
	sessions.AssertNotCalled(t, "CompleteMonth", mock.Anything)
}
