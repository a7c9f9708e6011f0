package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expensum/internal/aggregate"
	"github.com/carson-networks/expensum/internal/storage/sqlconfig"
)

func newDashboardTestService(t *testing.T) (*DashboardService, testTables) {
	t.Helper()
	store, processor, tables := newTestStorage(t)
	expenses := NewExpenseService(store, processor)
	expenses.now = fixedClock(testNow)
	budgets := NewBudgetService(store)
	budgets.now = fixedClock(testNow)
	svc := NewDashboardService(expenses, budgets, aggregate.DefaultAlertPolicy())
	svc.now = fixedClock(testNow)
	return svc, tables
}

func TestGetDashboard_DefaultsToCurrentMonth(t *testing.T) {
	svc, tables := newDashboardTestService(t)
	userID := uuid.Must(uuid.NewV4())
	food := uuid.Must(uuid.NewV4())
	rent := uuid.Must(uuid.NewV4())

	tables.expenses.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.ExpenseFilter) bool {
		return f.UserID == userID &&
			f.From.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) &&
			f.Limit == 0
	})).Return([]*sqlconfig.Expense{
		{CategoryID: food, Amount: decimal.NewFromInt(150), Date: time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)},
		{CategoryID: rent, Amount: decimal.NewFromInt(800), Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)
	tables.budgets.EXPECT().FindByPeriod(mock.Anything, userID, 3, 2024).
		Return(&sqlconfig.Budget{ID: uuid.Must(uuid.NewV4()), Month: 3, Year: 2024, Amount: decimal.NewFromInt(1000)}, nil)

	dashboard, err := svc.GetDashboard(context.Background(), userID, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.Month)
	assert.Equal(t, 2024, dashboard.Year)
	assert.True(t, decimal.NewFromInt(950).Equal(dashboard.Total))
	require.Len(t, dashboard.Daily, 2)
	assert.Equal(t, "2024-03-03", dashboard.Daily[0].Date)
	require.Len(t, dashboard.Categories, 2)
	assert.Equal(t, rent, dashboard.Categories[0].CategoryID)

	require.NotNil(t, dashboard.Budget)
	assert.Equal(t, "95", dashboard.Budget.Usage.PercentageUsed.String())
	assert.Equal(t, aggregate.AlertWarning, dashboard.Budget.Usage.Alert)
}

func TestGetDashboard_NoBudget(t *testing.T) {
	svc, tables := newDashboardTestService(t)

	tables.expenses.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Expense{}, nil)
	tables.budgets.EXPECT().FindByPeriod(mock.Anything, mock.Anything, 1, 2023).Return(nil, sqlconfig.ErrNotFound)

	dashboard, err := svc.GetDashboard(context.Background(), uuid.Must(uuid.NewV4()), 1, 2023)
	require.NoError(t, err)
	assert.Nil(t, dashboard.Budget)
	assert.Empty(t, dashboard.Daily)
	assert.True(t, dashboard.Total.IsZero())
}

func TestGetDashboard_ExpenseError(t *testing.T) {
	svc, tables := newDashboardTestService(t)

	tables.expenses.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.GetDashboard(context.Background(), uuid.Must(uuid.NewV4()), 1, 2023)
	assert.EqualError(t, err, "db down")
}
