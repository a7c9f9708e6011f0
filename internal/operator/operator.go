package operator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expensum/internal/logging"
	"github.com/carson-networks/expensum/internal/operator/actions"
	"github.com/carson-networks/expensum/internal/storage"
)

// Operator is one worker: it takes actions off the shared queue and runs each
// in its own transaction.
type Operator struct {
	id      int
	storage *storage.Storage
	queue   <-chan ActionItem
	log     *logrus.Logger
}

func NewOperator(id int, s *storage.Storage, queue <-chan ActionItem, log *logrus.Logger) *Operator {
	return &Operator{id: id, storage: s, queue: queue, log: log}
}

// Run processes items until the queue is closed and drained.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	if err := item.ctx.Err(); err != nil {
		return err
	}

	name := item.action.Name()
	stop := logging.Timed(item.ctx, name+"Ms")
	defer stop()

	err := o.perform(item)
	if err != nil {
		o.log.WithError(err).
			WithField("operator", o.id).
			Debugf("Operator.%s.Error", name)
	}
	return err
}

// perform commits when the action succeeds and rolls back on error or panic.
func (o *Operator) perform(item ActionItem) (err error) {
	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return err
	}

	committing := false
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("operator: %s panicked: %v", item.action.Name(), r)
		}
		if err != nil && !committing {
			if rbErr := writer.Rollback(); rbErr != nil {
				o.log.WithError(rbErr).Errorf("Operator.%s.Rollback", item.action.Name())
			}
		}
	}()

	if err = item.action.Perform(item.ctx, writer); err != nil {
		return err
	}
	committing = true
	return writer.Commit()
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
