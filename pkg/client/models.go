package client

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Readonly  bool      `json:"readonly"`
	CreatedAt time.Time `json:"createdAt"`
}

type PaymentMethod string

const (
	PaymentMethodUPI       PaymentMethod = "UPI"
	PaymentMethodDebitCard PaymentMethod = "DEBIT_CARD"
	PaymentMethodCash      PaymentMethod = "CASH"
)

type Expense struct {
	ID            uuid.UUID       `json:"id"`
	CategoryID    uuid.UUID       `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// NewExpense is the input for CreateExpense. A zero Date lets the server use now.
type NewExpense struct {
	CategoryID    uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	Description   string
	PaymentMethod PaymentMethod
}

type newExpenseBody struct {
	Amount        string        `json:"amount"`
	Category      string        `json:"category"`
	Date          string        `json:"date,omitempty"`
	Description   string        `json:"description,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// ExpenseQuery filters Expenses. Zero fields are left out; Page 0 returns everything.
type ExpenseQuery struct {
	Page       int
	CategoryID uuid.UUID
	Month      int
	Year       int
}

type Budget struct {
	ID        uuid.UUID       `json:"id"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

type DailyTotal struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

type CategoryTotal struct {
	CategoryID uuid.UUID       `json:"category"`
	Total      decimal.Decimal `json:"total"`
	Percentage decimal.Decimal `json:"percentage"`
}

type BudgetUsage struct {
	ID             uuid.UUID       `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	Spent          decimal.Decimal `json:"spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	PercentageUsed decimal.Decimal `json:"percentageUsed"`
	Alert          string          `json:"alert"`
}

type Dashboard struct {
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Total      decimal.Decimal `json:"total"`
	Daily      []DailyTotal    `json:"daily"`
	Categories []CategoryTotal `json:"categories"`
	Budget     *BudgetUsage    `json:"budget,omitempty"`
}
