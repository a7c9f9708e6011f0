package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
)

// DeleteBudgetOutput is the Huma output for deleting a budget.
type DeleteBudgetOutput struct {
	Body envelope.Response[*struct{}]
}

type budgetDeleter interface {
	DeleteBudget(ctx context.Context, userID, id uuid.UUID) error
}

// DeleteBudgetHandler handles DELETE /v1/budgets/{id}.
type DeleteBudgetHandler struct {
	BudgetService budgetDeleter
	Verifier      session.Verifier
}

// NewDeleteBudgetHandler creates a new DeleteBudgetHandler.
func NewDeleteBudgetHandler(svc budgetDeleter, verifier session.Verifier) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{BudgetService: svc, Verifier: verifier}
}

// Register registers the delete budget endpoint with the Huma API.
func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-budget",
		Method:      http.MethodDelete,
		Path:        "/v1/budgets/{id}",
		Summary:     "Delete budget",
		Tags:        []string{"Budgets"},
		Middlewares: huma.Middlewares{session.Require(api, h.Verifier)},
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *BudgetIDInput) (*DeleteBudgetOutput, error) {
	userID, err := session.MustUserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "Invalid budget id", err)
	}

	if err := h.BudgetService.DeleteBudget(ctx, userID, id); err != nil {
		return nil, toHTTPError(err, "Failed to delete budget")
	}
	return &DeleteBudgetOutput{Body: envelope.OK[*struct{}]("Budget deleted", nil)}, nil
}
