package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expensum/internal/aggregate"
)

// DashboardService builds the monthly spending summary.
type DashboardService struct {
	expenses *ExpenseService
	budgets  *BudgetService
	policy   aggregate.AlertPolicy
	now      func() time.Time
}

func NewDashboardService(expenses *ExpenseService, budgets *BudgetService, policy aggregate.AlertPolicy) *DashboardService {
	return &DashboardService{expenses: expenses, budgets: budgets, policy: policy, now: time.Now}
}

// GetDashboard summarizes the given month. Zero month or year default to the current one.
func (s *DashboardService) GetDashboard(ctx context.Context, userID uuid.UUID, month, year int) (*Dashboard, error) {
	today := s.now().UTC()
	if month == 0 {
		month = int(today.Month())
	}
	if year == 0 {
		year = today.Year()
	}

	expenses, err := s.expenses.ExpensesInMonth(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}
	entries := make([]aggregate.Entry, len(expenses))
	for i, e := range expenses {
		entries[i] = aggregate.Entry{CategoryID: e.CategoryID, Amount: e.Amount, Date: e.Date}
	}

	dashboard := &Dashboard{
		Month:      month,
		Year:       year,
		Total:      aggregate.Sum(entries),
		Daily:      aggregate.DailyTotals(entries),
		Categories: aggregate.CategoryBreakdown(entries),
	}

	budget, err := s.budgets.BudgetForMonth(ctx, userID, month, year)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return nil, err
	default:
		dashboard.Budget = &BudgetSummary{
			Budget: *budget,
			Usage:  aggregate.BudgetUsage(budget.Amount, entries, time.Month(month), year, today, s.policy),
		}
	}
	return dashboard, nil
}
