package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
	"github.com/carson-networks/expensum/internal/logging"
	"github.com/carson-networks/expensum/internal/service"
)

// CreateExpenseBody is the request body for recording an expense.
type CreateExpenseBody struct {
	Amount        string `json:"amount" required:"true" doc:"Decimal amount greater than zero"`
	Category      string `json:"category" required:"true" format:"uuid" doc:"Category UUID"`
	Date          string `json:"date,omitempty" required:"false" format:"date-time" doc:"RFC3339 date, defaults to now"`
	Description   string `json:"description,omitempty" required:"false" maxLength:"256" doc:"Free-form note"`
	PaymentMethod string `json:"payment_method" required:"true" enum:"UPI,DEBIT_CARD,CASH" doc:"How the expense was paid"`
}

// CreateExpenseInput is the Huma input for recording an expense.
type CreateExpenseInput struct {
	Body CreateExpenseBody
}

type expenseCreator interface {
	CreateExpense(ctx context.Context, userID uuid.UUID, input service.ExpenseInput) (*service.Expense, error)
}

// CreateExpenseHandler handles PUT /v1/expenses.
type CreateExpenseHandler struct {
	ExpenseService expenseCreator
	Verifier       session.Verifier
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(svc expenseCreator, verifier session.Verifier) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc, Verifier: verifier}
}

// Register registers the record expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPut,
		Path:          "/v1/expenses",
		Summary:       "Record expense",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   huma.Middlewares{session.Require(api, h.Verifier)},
	}, h.handle)
}

// parseCreateExpenseBody validates the fields the schema cannot.
func parseCreateExpenseBody(body CreateExpenseBody) (service.ExpenseInput, error) {
	var input service.ExpenseInput

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return input, huma.NewError(http.StatusBadRequest, "Invalid amount", err)
	}
	if err := service.ValidateAmount(amount); err != nil {
		return input, toHTTPError(err, "Invalid amount")
	}
	categoryID, err := uuid.FromString(body.Category)
	if err != nil {
		return input, huma.NewError(http.StatusBadRequest, "Invalid category id", err)
	}

	var date time.Time
	if body.Date != "" {
		date, err = time.Parse(time.RFC3339, body.Date)
		if err != nil {
			return input, huma.NewError(http.StatusBadRequest, "Invalid date", err)
		}
	}

	return service.ExpenseInput{
		CategoryID:    categoryID,
		Amount:        amount,
		Date:          date,
		Description:   body.Description,
		PaymentMethod: service.PaymentMethod(body.PaymentMethod),
	}, nil
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*ExpenseOutput, error) {
	userID, err := session.MustUserID(ctx)
	if err != nil {
		return nil, err
	}
	expenseInput, err := parseCreateExpenseBody(input.Body)
	if err != nil {
		return nil, err
	}

	stop := logging.Timed(ctx, "createExpenseMs")
	expense, err := h.ExpenseService.CreateExpense(ctx, userID, expenseInput)
	stop()
	if err != nil {
		return nil, toHTTPError(err, "Failed to record expense")
	}
	logging.AddData(ctx, "expenseID", expense.ID.String())

	return &ExpenseOutput{Body: envelope.Created("Expense recorded", expenseToResponse(*expense))}, nil
}
