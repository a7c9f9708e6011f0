package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
	"github.com/carson-networks/expensum/internal/service"
)

type currentBudgetGetter interface {
	CurrentBudget(ctx context.Context, userID uuid.UUID) (*service.Budget, error)
}

// CurrentBudgetHandler handles GET /v1/budgets/current.
type CurrentBudgetHandler struct {
	BudgetService currentBudgetGetter
	Verifier      session.Verifier
}

// NewCurrentBudgetHandler creates a new CurrentBudgetHandler.
func NewCurrentBudgetHandler(svc currentBudgetGetter, verifier session.Verifier) *CurrentBudgetHandler {
	return &CurrentBudgetHandler{BudgetService: svc, Verifier: verifier}
}

// Register registers the get current budget endpoint with the Huma API.
func (h *CurrentBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-current-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budgets/current",
		Summary:     "Current budget",
		Description: "Returns the budget for the current month, or 404 when none is set.",
		Tags:        []string{"Budgets"},
		Middlewares: huma.Middlewares{session.Require(api, h.Verifier)},
	}, h.handle)
}

func (h *CurrentBudgetHandler) handle(ctx context.Context, _ *struct{}) (*BudgetOutput, error) {
	userID, err := session.MustUserID(ctx)
	if err != nil {
		return nil, err
	}

	budget, err := h.BudgetService.CurrentBudget(ctx, userID)
	if err != nil {
		return nil, toHTTPError(err, "Failed to load budget")
	}
	return &BudgetOutput{Body: envelope.OK("Current budget", budgetToResponse(*budget))}, nil
}
