package expense

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expensum/internal/service"
)

// Expense is the API response model for an expense.
type Expense struct {
	ID            string `json:"id" doc:"Expense UUID"`
	CategoryID    string `json:"category" doc:"Category UUID"`
	Amount        string `json:"amount" doc:"Decimal amount"`
	Date          string `json:"date" doc:"RFC3339 date of the expense"`
	Description   string `json:"description,omitempty" doc:"Free-form note"`
	PaymentMethod string `json:"payment_method" enum:"UPI,DEBIT_CARD,CASH" doc:"How the expense was paid"`
	CreatedAt     string `json:"createdAt" doc:"RFC3339 creation time"`
}

func expenseToResponse(e service.Expense) Expense {
	return Expense{
		ID:            e.ID.String(),
		CategoryID:    e.CategoryID.String(),
		Amount:        e.Amount.StringFixed(2),
		Date:          e.Date.UTC().Format(time.RFC3339),
		Description:   e.Description,
		PaymentMethod: string(e.PaymentMethod),
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func expensesToResponse(expenses []service.Expense) []Expense {
	resp := make([]Expense, len(expenses))
	for i, e := range expenses {
		resp[i] = expenseToResponse(e)
	}
	return resp
}

func toHTTPError(err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "Expense not found", err)
	case errors.Is(err, service.ErrCategoryNotFound):
		return huma.NewError(http.StatusNotFound, "Category not found", err)
	case errors.Is(err, service.ErrInvalidAmount):
		return huma.NewError(http.StatusBadRequest, "Amount must be greater than zero", err)
	case errors.Is(err, service.ErrAmountPrecision):
		return huma.NewError(http.StatusBadRequest, "Amount must have at most two decimal places", err)
	case errors.Is(err, service.ErrAmountTooLarge):
		return huma.NewError(http.StatusBadRequest, "Amount is too large", err)
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}
