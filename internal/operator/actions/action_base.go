package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/expensum/internal/storage"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrReadonlyCategory = errors.New("category is read-only")
)

// IAction is a unit of work that runs inside a single transaction.
// Results are written back onto the action.
type IAction interface {
	// Name labels the action in logs and timings.
	Name() string
	Perform(ctx context.Context, writer *storage.Writer) error
}
