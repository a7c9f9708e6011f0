package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expensum/internal/aggregate"
	"github.com/carson-networks/expensum/internal/storage/sqlconfig"
)

// ExpensePageSize is the number of expenses per page when paging is requested.
const ExpensePageSize = 10

// User represents a signed-up user in the service layer. The password hash never leaves storage.
type User struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}

// Token is a signed token and the moment it stops verifying.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Session is what a successful signup or login hands back.
type Session struct {
	User    User
	Access  Token
	Refresh Token
}

type Category struct {
	ID        uuid.UUID
	Name      string
	Readonly  bool
	CreatedAt time.Time
}

type PaymentMethod string

const (
	PaymentMethodUPI       PaymentMethod = PaymentMethod(sqlconfig.PaymentMethodUPI)
	PaymentMethodDebitCard PaymentMethod = PaymentMethod(sqlconfig.PaymentMethodDebitCard)
	PaymentMethodCash      PaymentMethod = PaymentMethod(sqlconfig.PaymentMethodCash)
)

type Expense struct {
	ID            uuid.UUID
	CategoryID    uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	Description   string
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
}

// ExpenseInput is the input for recording an expense. A zero Date means now.
type ExpenseInput struct {
	CategoryID    uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	Description   string
	PaymentMethod PaymentMethod
}

// ExpenseQuery filters a user's expense list. Page 0 returns every match;
// pages start at 1. Month without Year means the current year.
type ExpenseQuery struct {
	Page       int
	CategoryID *uuid.UUID
	Month      *int
	Year       *int
}

type Budget struct {
	ID        uuid.UUID
	Month     int
	Year      int
	Amount    decimal.Decimal
	CreatedAt time.Time
}

type BudgetSummary struct {
	Budget Budget
	Usage  aggregate.Usage
}

// Dashboard summarizes one month of spending.
type Dashboard struct {
	Month      int
	Year       int
	Total      decimal.Decimal
	Daily      []aggregate.DailyTotal
	Categories []aggregate.CategoryTotal
	Budget     *BudgetSummary
}

func userFromStorage(row *sqlconfig.User) User {
	return User{ID: row.ID, Email: row.Email, CreatedAt: row.CreatedAt}
}

func categoryFromStorage(row *sqlconfig.Category) Category {
	return Category{ID: row.ID, Name: row.Name, Readonly: row.Readonly, CreatedAt: row.CreatedAt}
}

func expenseFromStorage(row *sqlconfig.Expense) Expense {
	return Expense{
		ID:            row.ID,
		CategoryID:    row.CategoryID,
		Amount:        row.Amount,
		Date:          row.Date,
		Description:   row.Description,
		PaymentMethod: PaymentMethod(row.PaymentMethod),
		CreatedAt:     row.CreatedAt,
	}
}

func budgetFromStorage(row *sqlconfig.Budget) Budget {
	return Budget{ID: row.ID, Month: row.Month, Year: row.Year, Amount: row.Amount, CreatedAt: row.CreatedAt}
}
