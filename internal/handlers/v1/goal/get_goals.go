package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/service"
)

// goalReader is the interface for reading goals.
type goalReader interface {
	GetGoal(ctx context.Context, id uuid.UUID) (*service.SavingsGoal, error)
	ListGoals(ctx context.Context) ([]service.SavingsGoal, error)
}

// ListGoalsResponseBody is the response body for listing goals.
type ListGoalsResponseBody struct {
	Goals []Goal `json:"goals" doc:"All savings goals, largest target first"`
}

// ListGoalsOutput is the Huma output for listing goals.
type ListGoalsOutput struct {
	Body ListGoalsResponseBody
}

// GetGoalInput is the Huma input for fetching one goal.
type GetGoalInput struct {
	ID string `path:"id" doc:"Goal UUID"`
}

// GetGoalOutput is the Huma output for fetching one goal.
type GetGoalOutput struct {
	Body Goal
}

// GetGoalsHandler handles GET /v1/goal and GET /v1/goal/{id}.
type GetGoalsHandler struct {
	GoalReader goalReader
}

// NewGetGoalsHandler creates a new GetGoalsHandler.
func NewGetGoalsHandler(reader goalReader) *GetGoalsHandler {
	return &GetGoalsHandler{GoalReader: reader}
}

// Register registers the goal read endpoints with the Huma API.
func (h *GetGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodGet,
		Path:        "/v1/goal",
		Summary:     "List savings goals",
		Description: "Returns all savings goals with derived progress.",
		Tags:        []string{"Goals"},
	}, h.handleList)

	huma.Register(api, huma.Operation{
		OperationID: "get-goal",
		Method:      http.MethodGet,
		Path:        "/v1/goal/{id}",
		Summary:     "Get savings goal",
		Description: "Returns one savings goal with derived progress.",
		Tags:        []string{"Goals"},
	}, h.handleGet)
}

func (h *GetGoalsHandler) handleList(ctx context.Context, _ *struct{}) (*ListGoalsOutput, error) {
	goals, err := h.GoalReader.ListGoals(ctx)
	if err != nil {
		return nil, httperror.FromService(err, "failed to list goals")
	}

	views := make([]Goal, len(goals))
	for i, g := range goals {
		views[i] = goalView(g)
	}
	return &ListGoalsOutput{Body: ListGoalsResponseBody{Goals: views}}, nil
}

func (h *GetGoalsHandler) handleGet(ctx context.Context, input *GetGoalInput) (*GetGoalOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}

	g, err := h.GoalReader.GetGoal(ctx, id)
	if err != nil {
		return nil, httperror.FromService(err, "failed to fetch goal")
	}
	return &GetGoalOutput{Body: goalView(*g)}, nil
}
