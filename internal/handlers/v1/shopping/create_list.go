package shopping

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
)

// CreateListBody is the request body for creating a shopping list.
type CreateListBody struct {
	Name       string `json:"name" required:"true" doc:"List name"`
	CategoryID string `json:"categoryId" required:"true" doc:"Category UUID"`
	Items      []Item `json:"items" doc:"Staged items"`
}

// CreateListInput is the Huma input for creating a shopping list.
type CreateListInput struct {
	Body CreateListBody
}

// CreateListOutput is the Huma output for creating a shopping list.
type CreateListOutput struct {
	Body ShoppingList
}

// CreateListHandler handles POST /v1/shopping-list.
type CreateListHandler struct {
	Operator actionProcessor
}

// NewCreateListHandler creates a new CreateListHandler.
func NewCreateListHandler(op actionProcessor) *CreateListHandler {
	return &CreateListHandler{Operator: op}
}

// Register registers the create list endpoint with the Huma API.
func (h *CreateListHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-shopping-list",
		Method:        http.MethodPost,
		Path:          "/v1/shopping-list",
		Summary:       "Create shopping list",
		Description:   "Stages a list of intended purchases against a category.",
		Tags:          []string{"Shopping Lists"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateListHandler) handle(ctx context.Context, input *CreateListInput) (*CreateListOutput, error) {
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
	}
	items, err := parseItems(input.Body.Items)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateShoppingList{
		Name:       input.Body.Name,
		CategoryID: categoryID,
		Items:      items,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to create shopping list")
	}

	return &CreateListOutput{Body: listView(action.Result)}, nil
}
