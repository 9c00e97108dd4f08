package operator

import (
	"context"
	"sync"

	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/storage"
)

// OperatorDelegator manages the queue, starts/stops the worker, and
// enqueues items. It runs exactly one worker: that serializes every
// mutation, so concurrent closeout requests for the same month cannot
// interleave.
type OperatorDelegator struct {
	storage  *storage.Storage
	queue    chan ActionItem
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewOperatorDelegator(s *storage.Storage) *OperatorDelegator {
	return &OperatorDelegator{
		storage: s,
		queue:   make(chan ActionItem, 100),
	}
}

func (d *OperatorDelegator) Start() {
	d.wg.Add(1)
	op := NewOperator(d.storage, d.queue)
	go func() {
		defer d.wg.Done()
		op.Run()
	}()
}

// Stop closes the queue and waits for the worker to drain it.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

// Process enqueues the action and blocks until the worker has committed or
// rolled back its transaction, or the context is cancelled. The returned
// error is the action's error.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	response := make(chan ActionItemResponse, 1)

	d.queue <- ActionItem{
		ctx:      ctx,
		action:   action,
		response: response,
	}

	select {
	case resp := <-response:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
