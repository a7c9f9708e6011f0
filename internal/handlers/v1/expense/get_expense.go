package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
	"github.com/carson-networks/expensum/internal/service"
)

// ExpenseIDInput is the Huma input for fetching an expense.
type ExpenseIDInput struct {
	ID string `path:"id" format:"uuid" doc:"Expense UUID"`
}

// ExpenseOutput is the Huma output for the endpoints that return one expense.
type ExpenseOutput struct {
	Body envelope.Response[Expense]
}

type expenseGetter interface {
	GetExpense(ctx context.Context, userID, id uuid.UUID) (*service.Expense, error)
}

// GetExpenseHandler handles GET /v1/expenses/{id}.
type GetExpenseHandler struct {
	ExpenseService expenseGetter
	Verifier       session.Verifier
}

// NewGetExpenseHandler creates a new GetExpenseHandler.
func NewGetExpenseHandler(svc expenseGetter, verifier session.Verifier) *GetExpenseHandler {
	return &GetExpenseHandler{ExpenseService: svc, Verifier: verifier}
}

// Register registers the get expense endpoint with the Huma API.
func (h *GetExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expense",
		Method:      http.MethodGet,
		Path:        "/v1/expenses/{id}",
		Summary:     "Get expense",
		Tags:        []string{"Expenses"},
		Middlewares: huma.Middlewares{session.Require(api, h.Verifier)},
	}, h.handle)
}

func (h *GetExpenseHandler) handle(ctx context.Context, input *ExpenseIDInput) (*ExpenseOutput, error) {
	userID, err := session.MustUserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "Invalid expense id", err)
	}

	expense, err := h.ExpenseService.GetExpense(ctx, userID, id)
	if err != nil {
		return nil, toHTTPError(err, "Failed to load expense")
	}
	return &ExpenseOutput{Body: envelope.OK("Expense", expenseToResponse(*expense))}, nil
}
