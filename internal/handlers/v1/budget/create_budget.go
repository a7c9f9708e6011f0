package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
	"github.com/carson-networks/expensum/internal/logging"
	"github.com/carson-networks/expensum/internal/service"
)

// CreateBudgetBody is the request body for setting a monthly budget.
type CreateBudgetBody struct {
	Month  int    `json:"month" required:"true" minimum:"1" maximum:"12" doc:"Calendar month"`
	Year   int    `json:"year" required:"true" minimum:"1970" maximum:"9999" doc:"Calendar year"`
	Amount string `json:"amount" required:"true" doc:"Decimal amount greater than zero"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body CreateBudgetBody
}

// BudgetOutput is the Huma output for the endpoints that return one budget.
type BudgetOutput struct {
	Body envelope.Response[Budget]
}

type budgetCreator interface {
	CreateBudget(ctx context.Context, userID uuid.UUID, month, year int, amount decimal.Decimal) (*service.Budget, error)
}

// CreateBudgetHandler handles POST /v1/budgets.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
	Verifier      session.Verifier
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(svc budgetCreator, verifier session.Verifier) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc, Verifier: verifier}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-budget",
		Method:        http.MethodPost,
		Path:          "/v1/budgets",
		Summary:       "Set budget",
		Description:   "Sets the budget for one month. Each month can only have one.",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   huma.Middlewares{session.Require(api, h.Verifier)},
	}, h.handle)
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*BudgetOutput, error) {
	userID, err := session.MustUserID(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	stop := logging.Timed(ctx, "createBudgetMs")
	budget, err := h.BudgetService.CreateBudget(ctx, userID, input.Body.Month, input.Body.Year, amount)
	stop()
	if err != nil {
		return nil, toHTTPError(err, "Failed to set budget")
	}
	return &BudgetOutput{Body: envelope.Created("Budget set", budgetToResponse(*budget))}, nil
}
