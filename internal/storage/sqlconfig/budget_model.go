package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a budgets record: one spending limit per user and month.
type Budget struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Month     int             `db:"month"`
	Year      int             `db:"year"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}

type BudgetCreate struct {
	UserID uuid.UUID
	Month  int
	Year   int
	Amount decimal.Decimal
}

// IBudgetTable defines the interface for budget storage operations.
type IBudgetTable interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Budget, error)
	FindByPeriod(ctx context.Context, userID uuid.UUID, month, year int) (*Budget, error)
	List(ctx context.Context, userID uuid.UUID, year *int) ([]*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (*Budget, error)
	UpdateAmount(ctx context.Context, userID, id uuid.UUID, amount decimal.Decimal) (*Budget, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
