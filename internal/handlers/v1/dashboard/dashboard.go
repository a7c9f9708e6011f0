package dashboard

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

// DailyTotal is the spend of one calendar day.
type DailyTotal struct {
	Date  string `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	Total string `json:"total" doc:"Sum of the day's expenses"`
}

// CategoryTotal is the spend of one category and its share of the month.
type CategoryTotal struct {
	Category   string `json:"category" doc:"Category UUID"`
	Total      string `json:"total" doc:"Sum of the category's expenses"`
	Percentage string `json:"percentage" doc:"Share of the month's total, 0-100"`
}

// BudgetUsage compares the month's spend against its budget.
type BudgetUsage struct {
	ID             string `json:"id" doc:"Budget UUID"`
	Amount         string `json:"amount" doc:"Budget amount"`
	Spent          string `json:"spent" doc:"Spent in the period"`
	Remaining      string `json:"remaining" doc:"Amount minus spent, may be negative"`
	PercentageUsed string `json:"percentageUsed" doc:"Spent share of the amount, capped at 100"`
	Alert          string `json:"alert" enum:"none,warning,alert" doc:"Alert level under the configured policy"`
}

// Dashboard is the response body of GET /v1/dashboard.
type Dashboard struct {
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Total      string          `json:"total" doc:"Sum of the month's expenses"`
	Daily      []DailyTotal    `json:"daily" doc:"Per-day totals, smallest first"`
	Categories []CategoryTotal `json:"categories" doc:"Per-category totals, largest first"`
	Budget     *BudgetUsage    `json:"budget,omitempty" doc:"Absent when no budget is set for the month"`
}

// GetDashboardInput is the Huma input for building the dashboard.
type GetDashboardInput struct {
	Month int `query:"month" minimum:"0" maximum:"12" doc:"Calendar month, defaults to the current one"`
	Year  int `query:"year" minimum:"0" doc:"Calendar year, defaults to the current one"`
}

// GetDashboardOutput is the Huma output for building the dashboard.
type GetDashboardOutput struct {
	Body envelope.Response[Dashboard]
}

type dashboardGetter interface {
	GetDashboard(ctx context.Context, userID uuid.UUID, month, year int) (*service.Dashboard, error)
}

// GetDashboardHandler handles GET /v1/dashboard.
type GetDashboardHandler struct {
	DashboardService dashboardGetter
	Verifier         session.Verifier
}

// NewGetDashboardHandler creates a new GetDashboardHandler.
func NewGetDashboardHandler(svc dashboardGetter, verifier session.Verifier) *GetDashboardHandler {
	return &GetDashboardHandler{DashboardService: svc, Verifier: verifier}
}

// Register registers the dashboard endpoint with the Huma API.
func (h *GetDashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard",
		Summary:     "Monthly dashboard",
		Description: "Daily and per-category totals for one month, plus budget usage when a budget is set.",
		Tags:        []string{"Dashboard"},
		Middlewares: huma.Middlewares{session.Require(api, h.Verifier)},
	}, h.handle)
}

func (h *GetDashboardHandler) handle(ctx context.Context, input *GetDashboardInput) (*GetDashboardOutput, error) {
	userID, err := session.MustUserID(ctx)
	if err != nil {
		return nil, err
	}

	stop := logging.Timed(ctx, "getDashboardMs")
	dashboard, err := h.DashboardService.GetDashboard(ctx, userID, input.Month, input.Year)
	stop()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "Failed to build dashboard", err)
	}

	return &GetDashboardOutput{Body: envelope.OK("Dashboard", dashboardToResponse(dashboard))}, nil
}

func dashboardToResponse(d *service.Dashboard) Dashboard {
	resp := Dashboard{
		Month:      d.Month,
		Year:       d.Year,
		Total:      d.Total.StringFixed(2),
		Daily:      make([]DailyTotal, len(d.Daily)),
		Categories: make([]CategoryTotal, len(d.Categories)),
	}
	for i, day := range d.Daily {
		resp.Daily[i] = DailyTotal{Date: day.Date, Total: day.Total.StringFixed(2)}
	}
	for i, c := range d.Categories {
		resp.Categories[i] = CategoryTotal{
			Category:   c.CategoryID.String(),
			Total:      c.Total.StringFixed(2),
			Percentage: c.Percentage.StringFixed(2),
		}
	}
	if d.Budget != nil {
		usage := d.Budget.Usage
		resp.Budget = &BudgetUsage{
			ID:             d.Budget.Budget.ID.String(),
			Amount:         usage.Amount.StringFixed(2),
			Spent:          usage.Spent.StringFixed(2),
			Remaining:      usage.Remaining.StringFixed(2),
			PercentageUsed: usage.PercentageUsed.StringFixed(2),
			Alert:          string(usage.Alert),
		}
	}
	return resp
}

