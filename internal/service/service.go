package service

import (
	"context"

	"github.com/carson-networks/expensum/internal/aggregate"
	"github.com/carson-networks/expensum/internal/operator/actions"
	"github.com/carson-networks/expensum/internal/storage"
	"github.com/carson-networks/expensum/internal/token"
)

// Processor runs an action inside a transaction.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Auth      *AuthService
	Category  *CategoryService
	Expense   *ExpenseService
	Budget    *BudgetService
	Dashboard *DashboardService
}

// NewService creates a new Service with the given storage, write processor and token service.
func NewService(store *storage.Storage, processor Processor, tokens *token.Service, policy aggregate.AlertPolicy) *Service {
	expenses := NewExpenseService(store, processor)
	budgets := NewBudgetService(store)
	return &Service{
		Auth:      NewAuthService(store, processor, tokens),
		Category:  NewCategoryService(store, processor),
		Expense:   expenses,
		Budget:    budgets,
		Dashboard: NewDashboardService(expenses, budgets, policy),
	}
}
