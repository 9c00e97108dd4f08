package shopping

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

// CheckoutListBody is the request body for checking out a shopping list.
type CheckoutListBody struct {
	ActualTotalCost *string `json:"actualTotalCost,omitempty" doc:"Actual till total; defaults to the estimated total"`
	Description     *string `json:"description,omitempty" doc:"Transaction description; defaults to the list name"`
	Date            string  `json:"date" doc:"RFC3339 transaction date, defaults to now"`
}

// CheckoutListInput is the Huma input for checking out a shopping list.
type CheckoutListInput struct {
	ID   string `path:"id" doc:"Shopping list UUID"`
	Body CheckoutListBody
}

// CheckoutTransaction is the wire representation of the checkout's ledger entry.
type CheckoutTransaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	CategoryID  string `json:"categoryId" doc:"Category UUID"`
	Amount      string `json:"amount" doc:"Recorded amount"`
	Date        string `json:"date" doc:"RFC3339 transaction date"`
	Description string `json:"description" doc:"Recorded description"`
	Notes       string `json:"notes" doc:"Generated provenance note"`
}

// CheckoutListOutput is the Huma output for checking out a shopping list.
type CheckoutListOutput struct {
	Body CheckoutTransaction
}

// CheckoutListHandler handles POST /v1/shopping-list/{id}/checkout.
type CheckoutListHandler struct {
	Operator actionProcessor
}

// NewCheckoutListHandler creates a new CheckoutListHandler.
func NewCheckoutListHandler(op actionProcessor) *CheckoutListHandler {
	return &CheckoutListHandler{Operator: op}
}

// Register registers the checkout endpoint with the Huma API.
func (h *CheckoutListHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "checkout-shopping-list",
		Method:        http.MethodPost,
		Path:          "/v1/shopping-list/{id}/checkout",
		Summary:       "Check out shopping list",
		Description:   "Converts the list into one ledger transaction and deletes it, atomically.",
		Tags:          []string{"Shopping Lists"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CheckoutListHandler) handle(ctx context.Context, input *CheckoutListInput) (*CheckoutListOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid shopping list id", err)
	}

	var actualTotalCost *decimal.Decimal
	if input.Body.ActualTotalCost != nil {
		parsed, err := decimal.NewFromString(*input.Body.ActualTotalCost)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid actualTotalCost", err)
		}
		actualTotalCost = &parsed
	}

	var date time.Time
	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	} else {
		date = time.Now()
	}

	action := &actions.CheckoutShoppingList{
		ListID:          id,
		ActualTotalCost: actualTotalCost,
		Description:     input.Body.Description,
		TransactionDate: date,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to check out shopping list")
	}

	tx := action.Result
	return &CheckoutListOutput{Body: CheckoutTransaction{
		ID:          tx.ID.String(),
		CategoryID:  tx.CategoryID.String(),
		Amount:      tx.Amount.String(),
		Date:        tx.Date.Format(time.RFC3339),
		Description: tx.Description,
		Notes:       tx.Notes,
	}}, nil
}
