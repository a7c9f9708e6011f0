package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expensum/internal/operator/actions"
	"github.com/carson-networks/expensum/internal/storage"
)

var ErrStopped = errors.New("operator stopped")

const queueSize = 1000

// OperatorDelegator owns the action queue and the pool of Operators draining it.
type OperatorDelegator struct {
	storage *storage.Storage
	workers int
	log     *logrus.Logger

	queue   chan ActionItem
	running sync.WaitGroup

	// guards queue against sends after close
	mu      sync.RWMutex
	started bool
	stopped bool
}

func NewOperatorDelegator(s *storage.Storage, workers int, log *logrus.Logger) *OperatorDelegator {
	return &OperatorDelegator{
		storage: s,
		workers: max(workers, 1),
		log:     log,
		queue:   make(chan ActionItem, queueSize),
	}
}

// Start launches the workers. Calling it again is a no-op.
func (d *OperatorDelegator) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true

	d.running.Add(d.workers)
	for id := range d.workers {
		go func(op *Operator) {
			defer d.running.Done()
			op.Run()
		}(NewOperator(id, d.storage, d.queue, d.log))
	}
	d.log.WithField("workers", d.workers).Info("Operator.Start")
}

// Stop closes the queue and waits for queued items to drain. Later calls to
// Process fail with ErrStopped.
func (d *OperatorDelegator) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	d.running.Wait()
	d.log.Info("Operator.Stop.drained")
}

// Process queues action for a worker and waits for its transaction to finish.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: make(chan ActionItemResponse, 1),
	}

	if err := d.submit(item); err != nil {
		return err
	}

	select {
	case resp := <-item.response:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) submit(item ActionItem) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-item.ctx.Done():
		return item.ctx.Err()
	}
}
