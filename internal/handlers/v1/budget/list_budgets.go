package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
	"github.com/carson-networks/expensum/internal/logging"
	"github.com/carson-networks/expensum/internal/service"
)

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct {
	Year int `query:"year" minimum:"0" doc:"Only budgets in this year"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body envelope.Response[[]Budget]
}

type budgetLister interface {
	ListBudgets(ctx context.Context, userID uuid.UUID, year *int) ([]service.Budget, error)
}

// ListBudgetsHandler handles GET /v1/budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
	Verifier      session.Verifier
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(svc budgetLister, verifier session.Verifier) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc, Verifier: verifier}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budgets",
		Summary:     "List budgets",
		Tags:        []string{"Budgets"},
		Middlewares: huma.Middlewares{session.Require(api, h.Verifier)},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	userID, err := session.MustUserID(ctx)
	if err != nil {
		return nil, err
	}
	var year *int
	if input.Year != 0 {
		year = &input.Year
	}

	budgets, err := h.BudgetService.ListBudgets(ctx, userID, year)
	if err != nil {
		return nil, toHTTPError(err, "Failed to list budgets")
	}
	logging.AddData(ctx, "budgetCount", len(budgets))

	resp := make([]Budget, len(budgets))
	for i, b := range budgets {
		resp[i] = budgetToResponse(b)
	}
	return &ListBudgetsOutput{Body: envelope.OK("Budgets", resp)}, nil
}
