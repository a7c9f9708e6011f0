package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expensum/internal/aggregate"
	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/service"
	"github.com/carson-networks/expensum/internal/token"
)

type mockDashboardService struct {
	mock.Mock
}

func (m *mockDashboardService) GetDashboard(ctx context.Context, userID uuid.UUID, month, year int) (*service.Dashboard, error) {
	args := m.Called(ctx, userID, month, year)
	d, _ := args.Get(0).(*service.Dashboard)
	return d, args.Error(1)
}

func newTestAPI(t *testing.T) (humatest.TestAPI, *mockDashboardService, uuid.UUID, string) {
	t.Helper()
	tokens, err := token.NewService("test-secret", time.Minute, time.Hour)
	require.NoError(t, err)
	userID := uuid.Must(uuid.NewV4())
	access, _, err := tokens.Issue(userID, token.KindAccess)
	require.NoError(t, err)

	svc := new(mockDashboardService)
	envelope.Install()
	_, api := humatest.New(t)
	NewGetDashboardHandler(svc, tokens).Register(api)
	t.Cleanup(func() { svc.AssertExpectations(t) })
	return api, svc, userID, "Cookie: ajwt=" + access
}

func TestHTTP_GetDashboard(t *testing.T) {
	api, svc, userID, cookie := newTestAPI(t)
	food := uuid.Must(uuid.NewV4())

	svc.On("GetDashboard", mock.Anything, userID, 3, 2024).Return(&service.Dashboard{
		Month: 3,
		Year:  2024,
		Total: decimal.NewFromInt(950),
		Daily: []aggregate.DailyTotal{
			{Date: "2024-03-01", Total: decimal.NewFromInt(150)},
			{Date: "2024-03-02", Total: decimal.NewFromInt(800)},
		},
		Categories: []aggregate.CategoryTotal{
			{CategoryID: food, Total: decimal.NewFromInt(950), Percentage: decimal.NewFromInt(100)},
		},
		Budget: &service.BudgetSummary{
			Budget: service.Budget{ID: uuid.Must(uuid.NewV4()), Month: 3, Year: 2024, Amount: decimal.NewFromInt(1000)},
			Usage: aggregate.Usage{
				Amount:         decimal.NewFromInt(1000),
				Spent:          decimal.NewFromInt(950),
				Remaining:      decimal.NewFromInt(50),
				PercentageUsed: decimal.NewFromInt(95),
				Alert:          aggregate.AlertWarning,
			},
		},
	}, nil)

	resp := api.Get("/v1/dashboard?month=3&year=2024", cookie)
	require.Equal(t, http.StatusOK, resp.Code)

	var body envelope.Response[Dashboard]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "950.00", body.Body.Total)
	require.Len(t, body.Body.Daily, 2)
	assert.Equal(t, "2024-03-01", body.Body.Daily[0].Date)
	assert.Equal(t, "150.00", body.Body.Daily[0].Total)
	require.Len(t, body.Body.Categories, 1)
	assert.Equal(t, food.String(), body.Body.Categories[0].Category)
	assert.Equal(t, "100.00", body.Body.Categories[0].Percentage)
	require.NotNil(t, body.Body.Budget)
	assert.Equal(t, "95.00", body.Body.Budget.PercentageUsed)
	assert.Equal(t, "warning", body.Body.Budget.Alert)
}

func TestHTTP_GetDashboard_DefaultsAndNoBudget(t *testing.T) {
	api, svc, userID, cookie := newTestAPI(t)
	svc.On("GetDashboard", mock.Anything, userID, 0, 0).Return(&service.Dashboard{
		Month: 3,
		Year:  2024,
		Total: decimal.Zero,
	}, nil)

	resp := api.Get("/v1/dashboard", cookie)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotContains(t, resp.Body.String(), `"budget"`)

	var body envelope.Response[Dashboard]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Body.Daily)
	assert.Nil(t, body.Body.Budget)
}

func TestHTTP_GetDashboard_Error(t *testing.T) {
	api, svc, userID, cookie := newTestAPI(t)
	svc.On("GetDashboard", mock.Anything, userID, 0, 0).Return(nil, errors.New("db down"))

	resp := api.Get("/v1/dashboard", cookie)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "db down")
}

func TestHTTP_GetDashboard_Unauthenticated(t *testing.T) {
	api, _, _, _ := newTestAPI(t)

	resp := api.Get("/v1/dashboard")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
