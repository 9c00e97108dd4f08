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

// RecordTransactionBody is the request body for recording a transaction.
type RecordTransactionBody struct {
	CategoryID  string `json:"categoryId" required:"true" doc:"Category UUID"`
	Amount      string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Date        string `json:"date" doc:"RFC3339 transaction date, defaults to now"`
	Description string `json:"description" required:"true" doc:"Free-text description"`
	Notes       string `json:"notes" doc:"Free-text notes"`
	Recurring   bool   `json:"recurring" doc:"Informational recurrence flag"`
}

// RecordTransactionInput is the Huma input for recording a transaction.
type RecordTransactionInput struct {
	Body RecordTransactionBody
}

// RecordTransactionOutput is the Huma output for recording a transaction.
type RecordTransactionOutput struct {
	Body Transaction
}

// RecordTransactionHandler handles POST /v1/transaction.
type RecordTransactionHandler struct {
	Operator actionProcessor
}

// NewRecordTransactionHandler creates a new RecordTransactionHandler.
func NewRecordTransactionHandler(op actionProcessor) *RecordTransactionHandler {
	return &RecordTransactionHandler{Operator: op}
}

// Register registers the record transaction endpoint with the Huma API.
func (h *RecordTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "record-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Record transaction",
		Description:   "Appends a spend event to the ledger.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RecordTransactionHandler) handle(ctx context.Context, input *RecordTransactionInput) (*RecordTransactionOutput, error) {
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
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

	action := &actions.RecordTransaction{
		CategoryID:      categoryID,
		Amount:          amount,
		TransactionDate: date,
		Description:     input.Body.Description,
		Notes:           input.Body.Notes,
		Recurring:       input.Body.Recurring,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to record transaction")
	}

	return &RecordTransactionOutput{Body: transactionView(action.Result)}, nil
}
