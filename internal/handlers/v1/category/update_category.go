package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/service"
)

// UpdateCategoryBody is the request body for patching a category.
type UpdateCategoryBody struct {
	Name    *string `json:"name,omitempty" doc:"New category name"`
	Type    *int    `json:"type,omitempty" doc:"New type: 0 Need, 1 Want, 2 Saving, 3 Income"`
	Planned *string `json:"planned,omitempty" doc:"New planned decimal amount"`
	Icon    *string `json:"icon,omitempty" doc:"New display icon"`
	Color   *string `json:"color,omitempty" doc:"New display color"`
}

// UpdateCategoryInput is the Huma input for patching a category.
type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category UUID"`
	Body UpdateCategoryBody
}

// UpdateCategoryOutput is the Huma output for patching a category.
type UpdateCategoryOutput struct {
	Body Category
}

// UpdateCategoryHandler handles PATCH /v1/category/{id}.
type UpdateCategoryHandler struct {
	Operator actionProcessor
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(op actionProcessor) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{Operator: op}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPatch,
		Path:        "/v1/category/{id}",
		Summary:     "Update category",
		Description: "Updates a category's name, type, planned amount or display fields.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}

	var planned *decimal.Decimal
	if input.Body.Planned != nil {
		value, err := decimal.NewFromString(*input.Body.Planned)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid planned", err)
		}
		planned = &value
	}
	var categoryType *service.CategoryType
	if input.Body.Type != nil {
		converted := service.CategoryType(*input.Body.Type)
		categoryType = &converted
	}

	action := &actions.UpdateCategory{
		ID:      id,
		Name:    input.Body.Name,
		Type:    categoryType,
		Planned: planned,
		Icon:    input.Body.Icon,
		Color:   input.Body.Color,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to update category")
	}

	return &UpdateCategoryOutput{Body: categoryView(action.Result)}, nil
}
