package shopping

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/service"
)

// listReader is the interface for reading shopping lists.
type listReader interface {
	GetList(ctx context.Context, id uuid.UUID) (*service.ShoppingList, error)
	ListLists(ctx context.Context) ([]service.ShoppingList, error)
}

// ListListsResponseBody is the response body for listing shopping lists.
type ListListsResponseBody struct {
	ShoppingLists []ShoppingList `json:"shoppingLists" doc:"All shopping lists, newest first"`
}

// ListListsOutput is the Huma output for listing shopping lists.
type ListListsOutput struct {
	Body ListListsResponseBody
}

// GetListInput is the Huma input for fetching one shopping list.
type GetListInput struct {
	ID string `path:"id" doc:"Shopping list UUID"`
}

// GetListOutput is the Huma output for fetching one shopping list.
type GetListOutput struct {
	Body ShoppingList
}

// GetListsHandler handles GET /v1/shopping-list and GET /v1/shopping-list/{id}.
type GetListsHandler struct {
	ListReader listReader
}

// NewGetListsHandler creates a new GetListsHandler.
func NewGetListsHandler(reader listReader) *GetListsHandler {
	return &GetListsHandler{ListReader: reader}
}

// Register registers the shopping list read endpoints with the Huma API.
func (h *GetListsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-shopping-lists",
		Method:      http.MethodGet,
		Path:        "/v1/shopping-list",
		Summary:     "List shopping lists",
		Description: "Returns all shopping lists with derived total cost.",
		Tags:        []string{"Shopping Lists"},
	}, h.handleList)

	huma.Register(api, huma.Operation{
		OperationID: "get-shopping-list",
		Method:      http.MethodGet,
		Path:        "/v1/shopping-list/{id}",
		Summary:     "Get shopping list",
		Description: "Returns one shopping list with derived total cost.",
		Tags:        []string{"Shopping Lists"},
	}, h.handleGet)
}

func (h *GetListsHandler) handleList(ctx context.Context, _ *struct{}) (*ListListsOutput, error) {
	lists, err := h.ListReader.ListLists(ctx)
	if err != nil {
		return nil, httperror.FromService(err, "failed to list shopping lists")
	}

	views := make([]ShoppingList, len(lists))
	for i, l := range lists {
		views[i] = listView(l)
	}
	return &ListListsOutput{Body: ListListsResponseBody{ShoppingLists: views}}, nil
}

func (h *GetListsHandler) handleGet(ctx context.Context, input *GetListInput) (*GetListOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid shopping list id", err)
	}

	list, err := h.ListReader.GetList(ctx, id)
	if err != nil {
		return nil, httperror.FromService(err, "failed to fetch shopping list")
	}
	return &GetListOutput{Body: listView(*list)}, nil
}
