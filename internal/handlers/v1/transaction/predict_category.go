package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/service"
)

// categoryLister is the interface for listing a month's categories.
type categoryLister interface {
	GetBudget(ctx context.Context, month service.Month) (*service.MonthlyBudget, error)
}

// PredictCategoryBody is the request body for a category prediction.
type PredictCategoryBody struct {
	Month       string `json:"month" required:"true" doc:"Budget month whose categories are candidates, YYYY-MM"`
	Description string `json:"description" required:"true" doc:"Transaction description to classify"`
}

// PredictCategoryInput is the Huma input for a category prediction.
type PredictCategoryInput struct {
	Body PredictCategoryBody
}

// PredictCategoryResponseBody is the response body for a category prediction.
type PredictCategoryResponseBody struct {
	CategoryID string  `json:"categoryId" doc:"Suggested category UUID"`
	Confidence float64 `json:"confidence" doc:"Classifier confidence, 0 to 1"`
}

// PredictCategoryOutput is the Huma output for a category prediction.
type PredictCategoryOutput struct {
	Body PredictCategoryResponseBody
}

// PredictCategoryHandler handles POST /v1/transaction/predict. It is only
// registered when a predictor is wired; predictions are advisory and never
// recorded automatically.
type PredictCategoryHandler struct {
	Predictor  service.CategoryPredictor
	Categories categoryLister
}

// NewPredictCategoryHandler creates a new PredictCategoryHandler.
func NewPredictCategoryHandler(predictor service.CategoryPredictor, categories categoryLister) *PredictCategoryHandler {
	return &PredictCategoryHandler{Predictor: predictor, Categories: categories}
}

// Register registers the predict endpoint with the Huma API.
func (h *PredictCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "predict-category",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/predict",
		Summary:     "Predict transaction category",
		Description: "Suggests a category for a transaction description using the configured classifier.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *PredictCategoryHandler) handle(ctx context.Context, input *PredictCategoryInput) (*PredictCategoryOutput, error) {
	month, err := service.ParseMonth(input.Body.Month)
	if err != nil {
		return nil, httperror.FromService(err, "invalid month")
	}
	if input.Body.Description == "" {
		return nil, huma.NewError(http.StatusBadRequest, "description must not be empty")
	}

	mb, err := h.Categories.GetBudget(ctx, month)
	if err != nil {
		return nil, httperror.FromService(err, "failed to load candidate categories")
	}
	candidates := make(map[uuid.UUID]string, len(mb.Categories))
	for _, cat := range mb.Categories {
		candidates[cat.ID] = cat.Name
	}

	prediction, err := h.Predictor.Predict(ctx, input.Body.Description, candidates)
	if err != nil {
		return nil, huma.NewError(http.StatusBadGateway, "prediction failed", err)
	}

	return &PredictCategoryOutput{Body: PredictCategoryResponseBody{
		CategoryID: prediction.CategoryID.String(),
		Confidence: prediction.Confidence,
	}}, nil
}
