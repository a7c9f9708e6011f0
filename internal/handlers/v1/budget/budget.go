package budget

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expensum/internal/service"
)

// Budget is the API response model for a monthly budget.
type Budget struct {
	ID        string `json:"id" doc:"Budget UUID"`
	Month     int    `json:"month" doc:"Calendar month, 1-12"`
	Year      int    `json:"year" doc:"Calendar year"`
	Amount    string `json:"amount" doc:"Decimal budget amount"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

// AmountBody is the request body for changing a budget amount.
type AmountBody struct {
	Amount string `json:"amount" required:"true" doc:"Decimal amount greater than zero"`
}

// BudgetIDInput is the Huma input for the endpoints addressing one budget.
type BudgetIDInput struct {
	ID string `path:"id" format:"uuid" doc:"Budget UUID"`
}

func budgetToResponse(b service.Budget) Budget {
	return Budget{
		ID:        b.ID.String(),
		Month:     b.Month,
		Year:      b.Year,
		Amount:    b.Amount.StringFixed(2),
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "Invalid amount", err)
	}
	if err := service.ValidateAmount(amount); err != nil {
		return decimal.Zero, toHTTPError(err, "Invalid amount")
	}
	return amount, nil
}

func toHTTPError(err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "Budget not found", err)
	case errors.Is(err, service.ErrBudgetExists):
		return huma.NewError(http.StatusConflict, "Budget already set for this month", err)
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
