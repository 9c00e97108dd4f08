package operator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/budget-engine/internal/operator/actions"
)

type stubAction struct {
	actions.IAction
}

func TestOperatorDelegator_ProcessHonorsContextCancellation(t *testing.T) {
	// No worker started: the enqueued item is never answered, so Process
	// must return on the cancelled context rather than block forever.
	delegator := NewOperatorDelegator(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- delegator.Process(ctx, &stubAction{})
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Process did not return after context cancellation")
	}
}

func TestOperatorDelegator_StopIsIdempotent(t *testing.T) {
	delegator := NewOperatorDelegator(nil)
	delegator.Start()

	delegator.Stop()
	// A second Stop must not close the queue again.
	delegator.Stop()
}
