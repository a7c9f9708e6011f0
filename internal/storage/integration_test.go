//go:build integration

package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/expensum/internal/config"
	"github.com/carson-networks/expensum/internal/logging"
	"github.com/carson-networks/expensum/internal/operator"
	"github.com/carson-networks/expensum/internal/operator/actions"
	"github.com/carson-networks/expensum/internal/storage"
	"github.com/carson-networks/expensum/internal/storage/migrations"
	"github.com/carson-networks/expensum/internal/storage/sqlconfig"
)

func newPostgresStorage(t *testing.T) *storage.Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping postgres integration test in short mode")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("expensum"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("testpassword"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := storage.NewStorage(&config.Config{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	status, err := migrations.Up(store.DB)
	require.NoError(t, err)
	require.Equal(t, uint(4), status.PostMigrationVersion)
	return store
}

func TestPostgres_SignupAndCategoryLifecycle(t *testing.T) {
	store := newPostgresStorage(t)
	ctx := context.Background()

	delegator := operator.NewOperatorDelegator(store, 2, logging.SetupLogging())
	delegator.Start()
	defer delegator.Stop()

	signup := &actions.CreateUser{Email: "a@example.com", PasswordHash: "hash"}
	require.NoError(t, delegator.Process(ctx, signup))
	userID := signup.User.ID

	duplicate := &actions.CreateUser{Email: "a@example.com", PasswordHash: "hash"}
	assert.ErrorIs(t, delegator.Process(ctx, duplicate), sqlconfig.ErrDuplicate)

	other, err := store.Categories.FindByName(ctx, userID, sqlconfig.OtherCategoryName)
	require.NoError(t, err)
	assert.True(t, other.Readonly)

	food, err := store.Categories.Insert(ctx, &sqlconfig.CategoryCreate{UserID: userID, Name: "food"})
	require.NoError(t, err)

	for _, amount := range []string{"10.00", "5.50"} {
		expense := &actions.CreateExpense{
			UserID:        userID,
			CategoryID:    food.ID,
			Amount:        decimal.RequireFromString(amount),
			Date:          time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
			PaymentMethod: sqlconfig.PaymentMethodCash,
		}
		require.NoError(t, delegator.Process(ctx, expense))
	}

	remove := &actions.DeleteCategory{UserID: userID, CategoryID: food.ID}
	require.NoError(t, delegator.Process(ctx, remove))
	assert.Equal(t, int64(2), remove.Reassigned)

	expenses, err := store.Expenses.List(ctx, &sqlconfig.ExpenseFilter{UserID: userID})
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	for _, e := range expenses {
		assert.Equal(t, other.ID, e.CategoryID)
	}

	removeOther := &actions.DeleteCategory{UserID: userID, CategoryID: other.ID}
	assert.ErrorIs(t, delegator.Process(ctx, removeOther), actions.ErrReadonlyCategory)
}

func TestPostgres_ExpenseFiltersAndBudgets(t *testing.T) {
	store := newPostgresStorage(t)
	ctx := context.Background()

	user, err := store.Users.Insert(ctx, &sqlconfig.UserCreate{Email: "b@example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	category, err := store.Categories.Insert(ctx, &sqlconfig.CategoryCreate{UserID: user.ID, Name: "rent"})
	require.NoError(t, err)

	days := []time.Time{
		time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, day := range days {
		_, err := store.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{
			UserID:        user.ID,
			CategoryID:    category.ID,
			Amount:        decimal.NewFromInt(100),
			Date:          day,
			PaymentMethod: sqlconfig.PaymentMethodUPI,
		})
		require.NoError(t, err)
	}

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	march, err := store.Expenses.List(ctx, &sqlconfig.ExpenseFilter{UserID: user.ID, From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, march, 2)
	assert.True(t, march[0].Date.After(march[1].Date))

	page, err := store.Expenses.List(ctx, &sqlconfig.ExpenseFilter{UserID: user.ID, Limit: 3, Offset: 3})
	require.NoError(t, err)
	assert.Len(t, page, 1)

	stranger := uuid.Must(uuid.NewV4())
	_, err = store.Expenses.FindByID(ctx, stranger, march[0].ID)
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)

	budget, err := store.Budgets.Insert(ctx, &sqlconfig.BudgetCreate{UserID: user.ID, Month: 3, Year: 2024, Amount: decimal.NewFromInt(1000)})
	require.NoError(t, err)
	_, err = store.Budgets.Insert(ctx, &sqlconfig.BudgetCreate{UserID: user.ID, Month: 3, Year: 2024, Amount: decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, sqlconfig.ErrDuplicate)

	found, err := store.Budgets.FindByPeriod(ctx, user.ID, 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, budget.ID, found.ID)
	assert.True(t, found.Amount.Equal(decimal.NewFromInt(1000)))

	updated, err := store.Budgets.UpdateAmount(ctx, user.ID, budget.ID, decimal.RequireFromString("1250.75"))
	require.NoError(t, err)
	assert.Equal(t, "1250.75", updated.Amount.StringFixed(2))
}

func TestPostgres_MigrationsRollBack(t *testing.T) {
	store := newPostgresStorage(t)

	status, err := migrations.Steps(store.DB, -4)
	require.NoError(t, err)
	assert.Equal(t, uint(4), status.PreMigrationVersion)
	assert.Equal(t, uint(0), status.PostMigrationVersion)
}
