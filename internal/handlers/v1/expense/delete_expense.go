package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
)

// DeleteExpenseOutput is the Huma output for deleting an expense.
type DeleteExpenseOutput struct {
	Body envelope.Response[*struct{}]
}

type expenseDeleter interface {
	DeleteExpense(ctx context.Context, userID, id uuid.UUID) error
}

// DeleteExpenseHandler handles DELETE /v1/expenses/{id}.
type DeleteExpenseHandler struct {
	ExpenseService expenseDeleter
	Verifier       session.Verifier
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(svc expenseDeleter, verifier session.Verifier) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc, Verifier: verifier}
}

// Register registers the delete expense endpoint with the Huma API.
func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-expense",
		Method:      http.MethodDelete,
		Path:        "/v1/expenses/{id}",
		Summary:     "Delete expense",
		Tags:        []string{"Expenses"},
		Middlewares: huma.Middlewares{session.Require(api, h.Verifier)},
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *ExpenseIDInput) (*DeleteExpenseOutput, error) {
	userID, err := session.MustUserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "Invalid expense id", err)
	}

	if err := h.ExpenseService.DeleteExpense(ctx, userID, id); err != nil {
		return nil, toHTTPError(err, "Failed to delete expense")
	}
	return &DeleteExpenseOutput{Body: envelope.OK[*struct{}]("Expense deleted", nil)}, nil
}
