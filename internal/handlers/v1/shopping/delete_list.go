package shopping

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
)

// DeleteListInput is the Huma input for deleting a shopping list.
type DeleteListInput struct {
	ID string `path:"id" doc:"Shopping list UUID"`
}

// DeleteListOutput is the Huma output for deleting a shopping list.
type DeleteListOutput struct{}

// DeleteListHandler handles DELETE /v1/shopping-list/{id}.
type DeleteListHandler struct {
	Operator actionProcessor
}

// NewDeleteListHandler creates a new DeleteListHandler.
func NewDeleteListHandler(op actionProcessor) *DeleteListHandler {
	return &DeleteListHandler{Operator: op}
}

// Register registers the delete list endpoint with the Huma API.
func (h *DeleteListHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-shopping-list",
		Method:        http.MethodDelete,
		Path:          "/v1/shopping-list/{id}",
		Summary:       "Delete shopping list",
		Description:   "Discards a list without touching the ledger.",
		Tags:          []string{"Shopping Lists"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteListHandler) handle(ctx context.Context, input *DeleteListInput) (*DeleteListOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid shopping list id", err)
	}

	action := &actions.DeleteShoppingList{ID: id}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to delete shopping list")
	}

	return &DeleteListOutput{}, nil
}
