package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/service"
)

// Category is the wire representation of a category.
type Category struct {
	ID       string `json:"id" doc:"Category UUID"`
	Month    string `json:"month" doc:"Budget month, YYYY-MM"`
	Name     string `json:"name" doc:"Category name"`
	Type     string `json:"type" doc:"Need, Want, Saving or Income"`
	Planned  string `json:"planned" doc:"Planned amount"`
	Actual   string `json:"actual" doc:"Sum of the month's transactions"`
	Variance string `json:"variance" doc:"Planned minus actual"`
	Icon     string `json:"icon,omitempty" doc:"Display icon"`
	Color    string `json:"color,omitempty" doc:"Display color"`
}

func categoryView(c service.Category) Category {
	return Category{
		ID:       c.ID.String(),
		Month:    c.Month.String(),
		Name:     c.Name,
		Type:     c.Type.String(),
		Planned:  c.Planned.String(),
		Actual:   c.Actual.String(),
		Variance: c.Variance().String(),
		Icon:     c.Icon,
		Color:    c.Color,
	}
}

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Month   string `json:"month" required:"true" doc:"Budget month, YYYY-MM"`
	Name    string `json:"name" required:"true" doc:"Category name"`
	Type    int    `json:"type" doc:"0 Need, 1 Want, 2 Saving, 3 Income"`
	Planned string `json:"planned" required:"true" doc:"Planned decimal amount"`
	Icon    string `json:"icon" doc:"Display icon"`
	Color   string `json:"color" doc:"Display color"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Body Category
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	Operator actionProcessor
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(op actionProcessor) *CreateCategoryHandler {
	return &CreateCategoryHandler{Operator: op}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/category",
		Summary:       "Create category",
		Description:   "Adds a category to an existing budget month.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	month, err := service.ParseMonth(input.Body.Month)
	if err != nil {
		return nil, httperror.FromService(err, "invalid month")
	}
	planned, err := decimal.NewFromString(input.Body.Planned)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid planned", err)
	}

	action := &actions.CreateCategory{
		Month:   month,
		Name:    input.Body.Name,
		Type:    service.CategoryType(input.Body.Type),
		Planned: planned,
		Icon:    input.Body.Icon,
		Color:   input.Body.Color,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to create category")
	}

	return &CreateCategoryOutput{Body: categoryView(action.Result)}, nil
}
