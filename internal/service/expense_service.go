package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expensum/internal/operator/actions"
	"github.com/carson-networks/expensum/internal/storage"
	"github.com/carson-networks/expensum/internal/storage/sqlconfig"
)

// ExpenseService handles expense business logic.
type ExpenseService struct {
	storage   *storage.Storage
	processor Processor
	now       func() time.Time
}

func NewExpenseService(store *storage.Storage, processor Processor) *ExpenseService {
	return &ExpenseService{storage: store, processor: processor, now: time.Now}
}

// ListExpenses returns the user's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, userID uuid.UUID, query ExpenseQuery) ([]Expense, error) {
	filter := &sqlconfig.ExpenseFilter{
		UserID:     userID,
		CategoryID: query.CategoryID,
	}
	if query.Page > 0 {
		filter.Limit = ExpensePageSize
		filter.Offset = (query.Page - 1) * ExpensePageSize
	}
	if query.Month != nil || query.Year != nil {
		from, to := s.periodBounds(query.Month, query.Year)
		filter.From = &from
		filter.To = &to
	}

	return s.list(ctx, filter)
}

// ExpensesInMonth returns every expense dated in the given month.
func (s *ExpenseService) ExpensesInMonth(ctx context.Context, userID uuid.UUID, month, year int) ([]Expense, error) {
	from, to := monthBounds(month, year)
	return s.list(ctx, &sqlconfig.ExpenseFilter{UserID: userID, From: &from, To: &to})
}

func (s *ExpenseService) GetExpense(ctx context.Context, userID, id uuid.UUID) (*Expense, error) {
	row, err := s.storage.Expenses.FindByID(ctx, userID, id)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	expense := expenseFromStorage(row)
	return &expense, nil
}

// CreateExpense records an expense against one of the user's categories.
func (s *ExpenseService) CreateExpense(ctx context.Context, userID uuid.UUID, input ExpenseInput) (*Expense, error) {
	if err := ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	date := input.Date
	if date.IsZero() {
		date = s.now()
	}

	action := &actions.CreateExpense{
		UserID:        userID,
		CategoryID:    input.CategoryID,
		Amount:        input.Amount,
		Date:          date.UTC(),
		Description:   input.Description,
		PaymentMethod: sqlconfig.PaymentMethod(input.PaymentMethod),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	expense := expenseFromStorage(action.Expense)
	return &expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	err := s.storage.Expenses.Delete(ctx, userID, id)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *ExpenseService) list(ctx context.Context, filter *sqlconfig.ExpenseFilter) ([]Expense, error) {
	rows, err := s.storage.Expenses.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	expenses := make([]Expense, len(rows))
	for i, row := range rows {
		expenses[i] = expenseFromStorage(row)
	}
	return expenses, nil
}

// periodBounds covers a whole year when only the year is given.
func (s *ExpenseService) periodBounds(month, year *int) (time.Time, time.Time) {
	y := s.now().UTC().Year()
	if year != nil {
		y = *year
	}
	if month == nil {
		from := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(1, 0, 0)
	}
	return monthBounds(*month, y)
}

func monthBounds(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
