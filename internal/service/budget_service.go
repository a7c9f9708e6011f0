package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expensum/internal/storage"
	"github.com/carson-networks/expensum/internal/storage/sqlconfig"
)

// BudgetService handles monthly budgets.
type BudgetService struct {
	storage *storage.Storage
	now     func() time.Time
}

func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{storage: store, now: time.Now}
}

// CreateBudget sets the budget for a month. Each month takes one budget.
func (s *BudgetService) CreateBudget(ctx context.Context, userID uuid.UUID, month, year int, amount decimal.Decimal) (*Budget, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	row, err := s.storage.Budgets.Insert(ctx, &sqlconfig.BudgetCreate{
		UserID: userID,
		Month:  month,
		Year:   year,
		Amount: amount,
	})
	if errors.Is(err, sqlconfig.ErrDuplicate) {
		return nil, ErrBudgetExists
	}
	if err != nil {
		return nil, err
	}
	budget := budgetFromStorage(row)
	return &budget, nil
}

// CurrentBudget returns the budget of the current month.
func (s *BudgetService) CurrentBudget(ctx context.Context, userID uuid.UUID) (*Budget, error) {
	now := s.now().UTC()
	return s.BudgetForMonth(ctx, userID, int(now.Month()), now.Year())
}

func (s *BudgetService) BudgetForMonth(ctx context.Context, userID uuid.UUID, month, year int) (*Budget, error) {
	row, err := s.storage.Budgets.FindByPeriod(ctx, userID, month, year)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	budget := budgetFromStorage(row)
	return &budget, nil
}

// ListBudgets returns the user's budgets, latest first. A nil year returns every year.
func (s *BudgetService) ListBudgets(ctx context.Context, userID uuid.UUID, year *int) ([]Budget, error) {
	rows, err := s.storage.Budgets.List(ctx, userID, year)
	if err != nil {
		return nil, err
	}
	budgets := make([]Budget, len(rows))
	for i, row := range rows {
		budgets[i] = budgetFromStorage(row)
	}
	return budgets, nil
}

func (s *BudgetService) UpdateBudget(ctx context.Context, userID, id uuid.UUID, amount decimal.Decimal) (*Budget, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	row, err := s.storage.Budgets.UpdateAmount(ctx, userID, id, amount)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	budget := budgetFromStorage(row)
	return &budget, nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, userID, id uuid.UUID) error {
	err := s.storage.Budgets.Delete(ctx, userID, id)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
