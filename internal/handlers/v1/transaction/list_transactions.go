package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/service"
)

// transactionReader is the interface for listing transactions.
type transactionReader interface {
	ListTransactions(ctx context.Context, filter service.TransactionListFilter) ([]service.Transaction, error)
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Month      string `query:"month" doc:"Restrict to one budget month, YYYY-MM"`
	CategoryID string `query:"categoryId" doc:"Restrict to one category UUID"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Matching transactions, date ascending"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// ListTransactionsHandler handles GET /v1/transaction.
type ListTransactionsHandler struct {
	TransactionReader transactionReader
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(reader transactionReader) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionReader: reader}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List transactions",
		Description: "Returns transactions, optionally filtered by month and category, ordered by date ascending.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	filter := service.TransactionListFilter{}
	if input.Month != "" {
		month, err := service.ParseMonth(input.Month)
		if err != nil {
			return nil, httperror.FromService(err, "invalid month")
		}
		filter.Month = &month
	}
	if input.CategoryID != "" {
		categoryID, err := uuid.FromString(input.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
		}
		filter.CategoryID = &categoryID
	}

	transactions, err := h.TransactionReader.ListTransactions(ctx, filter)
	if err != nil {
		return nil, httperror.FromService(err, "failed to list transactions")
	}

	views := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		views[i] = transactionView(tx)
	}
	return &ListTransactionsOutput{Body: ListTransactionsResponseBody{Transactions: views}}, nil
}
