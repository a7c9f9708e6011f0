package expense

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

// ListExpensesInput is the Huma input for listing expenses. Zero values mean "not set".
type ListExpensesInput struct {
	Page     int    `query:"page" minimum:"0" doc:"1-based page of 10; omit for every expense"`
	Category string `query:"category" doc:"Only expenses in this category"`
	Month    int    `query:"month" minimum:"0" maximum:"12" doc:"Calendar month filter"`
	Year     int    `query:"year" minimum:"0" doc:"Calendar year filter"`
}

// ListExpensesOutput is the Huma output for listing expenses.
type ListExpensesOutput struct {
	Body envelope.Response[[]Expense]
}

type expenseLister interface {
	ListExpenses(ctx context.Context, userID uuid.UUID, query service.ExpenseQuery) ([]service.Expense, error)
}

// ListExpensesHandler handles GET /v1/expenses.
type ListExpensesHandler struct {
	ExpenseService expenseLister
	Verifier       session.Verifier
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(svc expenseLister, verifier session.Verifier) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc, Verifier: verifier}
}

// Register registers the list expenses endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/expenses",
		Summary:     "List expenses",
		Description: "Returns the user's expenses, newest first. Pass page to receive 10 at a time.",
		Tags:        []string{"Expenses"},
		Middlewares: huma.Middlewares{session.Require(api, h.Verifier)},
	}, h.handle)
}

// parseListExpensesInput turns query parameters into a service query.
func parseListExpensesInput(input *ListExpensesInput) (service.ExpenseQuery, error) {
	query := service.ExpenseQuery{Page: input.Page}
	if input.Category != "" {
		id, err := uuid.FromString(input.Category)
		if err != nil {
			return query, huma.NewError(http.StatusBadRequest, "Invalid category id", err)
		}
		query.CategoryID = &id
	}
	if input.Month != 0 {
		month := input.Month
		query.Month = &month
	}
	if input.Year != 0 {
		year := input.Year
		query.Year = &year
	}
	return query, nil
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	userID, err := session.MustUserID(ctx)
	if err != nil {
		return nil, err
	}
	query, err := parseListExpensesInput(input)
	if err != nil {
		return nil, err
	}

	stop := logging.Timed(ctx, "listExpensesMs")
	expenses, err := h.ExpenseService.ListExpenses(ctx, userID, query)
	stop()
	if err != nil {
		return nil, toHTTPError(err, "Failed to list expenses")
	}
	logging.AddData(ctx, "expenseCount", len(expenses))

	return &ListExpensesOutput{Body: envelope.OK("Expenses", expensesToResponse(expenses))}, nil
}
