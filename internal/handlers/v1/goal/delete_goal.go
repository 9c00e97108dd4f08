package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/httperror"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
)

// DeleteGoalInput is the Huma input for deleting a goal.
type DeleteGoalInput struct {
	ID string `path:"id" doc:"Goal UUID"`
}

// DeleteGoalOutput is the Huma output for deleting a goal.
type DeleteGoalOutput struct{}

// DeleteGoalHandler handles DELETE /v1/goal/{id}.
type DeleteGoalHandler struct {
	Operator actionProcessor
}

// NewDeleteGoalHandler creates a new DeleteGoalHandler.
func NewDeleteGoalHandler(op actionProcessor) *DeleteGoalHandler {
	return &DeleteGoalHandler{Operator: op}
}

// Register registers the delete goal endpoint with the Huma API.
func (h *DeleteGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-goal",
		Method:        http.MethodDelete,
		Path:          "/v1/goal/{id}",
		Summary:       "Delete savings goal",
		Description:   "Deletes a goal. Money already swept stays on closed months' reports.",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteGoalHandler) handle(ctx context.Context, input *DeleteGoalInput) (*DeleteGoalOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}

	action := &actions.DeleteGoal{ID: id}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromService(err, "failed to delete goal")
	}

	return &DeleteGoalOutput{}, nil
}
