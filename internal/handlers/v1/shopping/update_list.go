package shopping

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/service"
)

// UpdateListBody is the request body for patching a shopping list. A non-nil
// items field replaces the whole item sequence.
type UpdateListBody struct {
	Name       *string `json:"name,omitempty" doc:"New list name"`
	CategoryID *string `json:"categoryId,omitempty" doc:"New category UUID"`
	Items      *[]Item `json:"items,omitempty" doc:"Replacement item sequence"`
}

// UpdateListInput is the Huma input for patching a shopping list.
type UpdateListInput struct {
	ID   string `path:"id" doc:"Shopping list UUID"`
	Body UpdateListBody
}

// UpdateListOutput is the Huma output for patching a shopping list.
type UpdateListOutput struct {
	Body ShoppingList
}

// UpdateListHandler handles PATCH /v1/shopping-list/{id}.
type UpdateListHandler struct {
	Operator actionProcessor
}

// NewUpdateListHandler creates a new UpdateListHandler.
func NewUpdateListHandler(op actionProcessor) *UpdateListHandler {
	return &UpdateListHandler{Operator: op}
}

// Register registers the update list endpoint with the Huma API.
func (h *UpdateListHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-shopping-list",
		Method:      http.MethodPatch,
		Path:        "/v1/shopping-list/{id}",
		Summary:     "Update shopping list",
		Description: "Updates a list's name, category or items.",
		Tags:        []string{"Shopping Lists"},
	}, h.handle)
}

func (h *UpdateListHandler) handle(ctx context.Context, input *UpdateListInput) (*UpdateListOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid shopping list id", err)
	}

	var categoryID *uuid.UUID
	if input.Body.CategoryID != nil {
		parsed, err := uuid.FromString(*input.Body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
		}
		categoryID = &parsed
	}
	var items *[]service.ShoppingItem
	if input.Body.Items != nil {
		parsed, err := parseItems(*input.Body.Items)
		if err != nil {
			return nil, err
		}
		items = &parsed
	}

	action := &actions.UpdateShoppingList{
		ID:         id,
		Name:       input.Body.Name,
		CategoryID: categoryID,
		Items:      items,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to update shopping list")
	}

	return &UpdateListOutput{Body: listView(action.Result)}, nil
}
