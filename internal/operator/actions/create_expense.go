package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expensum/internal/storage"
	"github.com/carson-networks/expensum/internal/storage/sqlconfig"
)

// CreateExpense records an expense after checking the category belongs to the user.
type CreateExpense struct {
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	Description   string
	PaymentMethod sqlconfig.PaymentMethod

	Expense *sqlconfig.Expense
}

var _ IAction = (*CreateExpense)(nil)

func (c *CreateExpense) Name() string { return "createExpense" }

func (c *CreateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	_, err := writer.Categories.FindByID(ctx, c.UserID, c.CategoryID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrCategoryNotFound
	}
	if err != nil {
		return err
	}

	expense, err := writer.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{
		UserID:        c.UserID,
		CategoryID:    c.CategoryID,
		Amount:        c.Amount,
		Date:          c.Date,
		Description:   c.Description,
		PaymentMethod: c.PaymentMethod,
	})
	if err != nil {
		return err
	}

	c.Expense = expense
	return nil
}
