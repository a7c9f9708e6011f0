package budget

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/service"
	"github.com/carson-networks/expensum/internal/token"
)

type mockBudgetService struct {
	mock.Mock
}

func (m *mockBudgetService) CreateBudget(ctx context.Context, userID uuid.UUID, month, year int, amount decimal.Decimal) (*service.Budget, error) {
	args := m.Called(ctx, userID, month, year, amount)
	b, _ := args.Get(0).(*service.Budget)
	return b, args.Error(1)
}

func (m *mockBudgetService) CurrentBudget(ctx context.Context, userID uuid.UUID) (*service.Budget, error) {
	args := m.Called(ctx, userID)
	b, _ := args.Get(0).(*service.Budget)
	return b, args.Error(1)
}

func (m *mockBudgetService) ListBudgets(ctx context.Context, userID uuid.UUID, year *int) ([]service.Budget, error) {
	args := m.Called(ctx, userID, year)
	b, _ := args.Get(0).([]service.Budget)
	return b, args.Error(1)
}

func (m *mockBudgetService) UpdateBudget(ctx context.Context, userID, id uuid.UUID, amount decimal.Decimal) (*service.Budget, error) {
	args := m.Called(ctx, userID, id, amount)
	b, _ := args.Get(0).(*service.Budget)
	return b, args.Error(1)
}

func (m *mockBudgetService) DeleteBudget(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type testEnv struct {
	api    humatest.TestAPI
	svc    *mockBudgetService
	userID uuid.UUID
	cookie string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	tokens, err := token.NewService("test-secret", time.Minute, time.Hour)
	require.NoError(t, err)
	userID := uuid.Must(uuid.NewV4())
	access, _, err := tokens.Issue(userID, token.KindAccess)
	require.NoError(t, err)

	svc := new(mockBudgetService)
	envelope.Install()
	_, api := humatest.New(t)
	NewCreateBudgetHandler(svc, tokens).Register(api)
	NewCurrentBudgetHandler(svc, tokens).Register(api)
	NewListBudgetsHandler(svc, tokens).Register(api)
	NewUpdateBudgetHandler(svc, tokens).Register(api)
	NewDeleteBudgetHandler(svc, tokens).Register(api)

	t.Cleanup(func() { svc.AssertExpectations(t) })
	return testEnv{api: api, svc: svc, userID: userID, cookie: "Cookie: ajwt=" + access}
}

func decimalEq(want string) any {
	expected := decimal.RequireFromString(want)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(expected) })
}

func TestHTTP_CreateBudget(t *testing.T) {
	env := newTestEnv(t)
	budget := &service.Budget{ID: uuid.Must(uuid.NewV4()), Month: 3, Year: 2024, Amount: decimal.NewFromInt(1000)}
	env.svc.On("CreateBudget", mock.Anything, env.userID, 3, 2024, decimalEq("1000")).Return(budget, nil)

	resp := env.api.Post("/v1/budgets", env.cookie, CreateBudgetBody{Month: 3, Year: 2024, Amount: "1000"})
	require.Equal(t, http.StatusCreated, resp.Code)

	var body envelope.Response[Budget]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1000.00", body.Body.Amount)
	assert.Equal(t, 3, body.Body.Month)
}

func TestHTTP_CreateBudget_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	env.svc.On("CreateBudget", mock.Anything, env.userID, 3, 2024, decimalEq("500")).Return(nil, service.ErrBudgetExists)

	resp := env.api.Post("/v1/budgets", env.cookie, CreateBudgetBody{Month: 3, Year: 2024, Amount: "500"})
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_CreateBudget_InvalidMonth(t *testing.T) {
	env := newTestEnv(t)

	resp := env.api.Post("/v1/budgets", env.cookie, CreateBudgetBody{Month: 13, Year: 2024, Amount: "500"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_CreateBudget_NegativeAmount(t *testing.T) {
	env := newTestEnv(t)

	resp := env.api.Post("/v1/budgets", env.cookie, CreateBudgetBody{Month: 1, Year: 2024, Amount: "-5"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateBudget_AmountOutsideColumn(t *testing.T) {
	for _, amount := range []string{"0.001", "250.555", "1e20"} {
		t.Run(amount, func(t *testing.T) {
			env := newTestEnv(t)

			resp := env.api.Post("/v1/budgets", env.cookie, CreateBudgetBody{Month: 1, Year: 2024, Amount: amount})
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			env.svc.AssertNotCalled(t, "CreateBudget", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHTTP_CurrentBudget_NotSet(t *testing.T) {
	env := newTestEnv(t)
	env.svc.On("CurrentBudget", mock.Anything, env.userID).Return(nil, service.ErrNotFound)

	resp := env.api.Get("/v1/budgets/current", env.cookie)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_ListBudgets_YearFilter(t *testing.T) {
	env := newTestEnv(t)
	env.svc.On("ListBudgets", mock.Anything, env.userID, mock.MatchedBy(func(y *int) bool {
		return y != nil && *y == 2024
	})).Return([]service.Budget{{ID: uuid.Must(uuid.NewV4()), Month: 1, Year: 2024, Amount: decimal.NewFromInt(10)}}, nil)

	resp := env.api.Get("/v1/budgets?year=2024", env.cookie)
	require.Equal(t, http.StatusOK, resp.Code)

	var body envelope.Response[[]Budget]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Body, 1)
}

func TestHTTP_ListBudgets_NoFilter(t *testing.T) {
	env := newTestEnv(t)
	env.svc.On("ListBudgets", mock.Anything, env.userID, (*int)(nil)).Return([]service.Budget{}, nil)

	resp := env.api.Get("/v1/budgets", env.cookie)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestHTTP_UpdateBudget_NotFound(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.Must(uuid.NewV4())
	env.svc.On("UpdateBudget", mock.Anything, env.userID, id, decimalEq("750")).Return(nil, service.ErrNotFound)

	resp := env.api.Patch("/v1/budgets/"+id.String(), env.cookie, AmountBody{Amount: "750"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteBudget(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.Must(uuid.NewV4())
	env.svc.On("DeleteBudget", mock.Anything, env.userID, id).Return(nil)

	resp := env.api.Delete("/v1/budgets/"+id.String(), env.cookie)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestHTTP_Budgets_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)

	resp := env.api.Get("/v1/budgets/current")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
