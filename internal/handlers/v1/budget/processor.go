package budget

import (
	"context"

	"github.com/carson-networks/budget-engine/internal/operator/actions"
)

// actionProcessor runs one action through the mutation queue. Satisfied by
// the operator delegator in production.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
