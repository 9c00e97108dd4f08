package transaction

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

// EditTransactionBody is the request body for editing a transaction.
type EditTransactionBody struct {
	CategoryID  *string `json:"categoryId,omitempty" doc:"New category UUID"`
	Amount      *string `json:"amount,omitempty" doc:"New positive decimal amount"`
	Date        *string `json:"date,omitempty" doc:"New RFC3339 transaction date"`
	Description *string `json:"description,omitempty" doc:"New description"`
	Notes       *string `json:"notes,omitempty" doc:"New notes"`
	Recurring   *bool   `json:"recurring,omitempty" doc:"New recurrence flag"`
}

// EditTransactionInput is the Huma input for editing a transaction.
type EditTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body EditTransactionBody
}

// EditTransactionOutput is the Huma output for editing a transaction.
type EditTransactionOutput struct {
	Body Transaction
}

// EditTransactionHandler handles PATCH /v1/transaction/{id}.
type EditTransactionHandler struct {
	Operator actionProcessor
}

// NewEditTransactionHandler creates a new EditTransactionHandler.
func NewEditTransactionHandler(op actionProcessor) *EditTransactionHandler {
	return &EditTransactionHandler{Operator: op}
}

// Register registers the edit transaction endpoint with the Huma API.
func (h *EditTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "edit-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transaction/{id}",
		Summary:     "Edit transaction",
		Description: "Updates a ledger entry; moving it between categories or months is allowed.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *EditTransactionHandler) handle(ctx context.Context, input *EditTransactionInput) (*EditTransactionOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	var categoryID *uuid.UUID
	if input.Body.CategoryID != nil {
		parsed, err := uuid.FromString(*input.Body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
		}
		categoryID = &parsed
	}
	var amount *decimal.Decimal
	if input.Body.Amount != nil {
		parsed, err := decimal.NewFromString(*input.Body.Amount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		amount = &parsed
	}
	var date *time.Time
	if input.Body.Date != nil {
		parsed, err := time.Parse(time.RFC3339, *input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		date = &parsed
	}

	action := &actions.EditTransaction{
		ID:              id,
		CategoryID:      categoryID,
		Amount:          amount,
		TransactionDate: date,
		Description:     input.Body.Description,
		Notes:           input.Body.Notes,
		Recurring:       input.Body.Recurring,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to edit transaction")
	}

	return &EditTransactionOutput{Body: transactionView(action.Result)}, nil
}
