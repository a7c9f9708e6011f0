package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Expense represents an expenses record.
type Expense struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	CategoryID    uuid.UUID       `db:"category_id"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"spent_at"`
	Description   string          `db:"description"`
	PaymentMethod PaymentMethod   `db:"payment_method"`
	CreatedAt     time.Time       `db:"created_at"`
}

// ExpenseCreate is the input for creating a new expense.
type ExpenseCreate struct {
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	Description   string
	PaymentMethod PaymentMethod
}

// ExpenseFilter specifies filters for listing a user's expenses.
// From is inclusive and To exclusive.
type ExpenseFilter struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// IExpenseTable defines the interface for expense storage operations.
type IExpenseTable interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Expense, error)
	List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error)
	Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Reassign(ctx context.Context, userID, fromCategoryID, toCategoryID uuid.UUID) (int64, error)
}
