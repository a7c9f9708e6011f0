package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
	"github.com/carson-networks/expensum/internal/service"
)

// UpdateBudgetInput is the Huma input for updating a budget.
type UpdateBudgetInput struct {
	ID   string `path:"id" format:"uuid" doc:"Budget UUID"`
	Body AmountBody
}

type budgetUpdater interface {
	UpdateBudget(ctx context.Context, userID, id uuid.UUID, amount decimal.Decimal) (*service.Budget, error)
}

// UpdateBudgetHandler handles PATCH /v1/budgets/{id}.
type UpdateBudgetHandler struct {
	BudgetService budgetUpdater
	Verifier      session.Verifier
}

// NewUpdateBudgetHandler creates a new UpdateBudgetHandler.
func NewUpdateBudgetHandler(svc budgetUpdater, verifier session.Verifier) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{BudgetService: svc, Verifier: verifier}
}

// Register registers the update budget endpoint with the Huma API.
func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPatch,
		Path:        "/v1/budgets/{id}",
		Summary:     "Change budget amount",
		Tags:        []string{"Budgets"},
		Middlewares: huma.Middlewares{session.Require(api, h.Verifier)},
	}, h.handle)
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*BudgetOutput, error) {
	userID, err := session.MustUserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "Invalid budget id", err)
	}
	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	budget, err := h.BudgetService.UpdateBudget(ctx, userID, id, amount)
	if err != nil {
		return nil, toHTTPError(err, "Failed to update budget")
	}
	return &BudgetOutput{Body: envelope.OK("Budget updated", budgetToResponse(*budget))}, nil
}
