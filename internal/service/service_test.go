package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expensum/internal/operator/actions"
	"github.com/carson-networks/expensum/internal/storage"
	"github.com/carson-networks/expensum/internal/storage/sqlconfig"
	"github.com/carson-networks/expensum/internal/token"
)

// writerProcessor runs actions straight against a Writer backed by the same mocks as Storage.
type writerProcessor struct {
	writer *storage.Writer
	err    error
}

func (p *writerProcessor) Process(ctx context.Context, action actions.IAction) error {
	if p.err != nil {
		return p.err
	}
	return action.Perform(ctx, p.writer)
}

type testTables struct {
	users      *sqlconfig.MockIUserTable
	categories *sqlconfig.MockICategoryTable
	expenses   *sqlconfig.MockIExpenseTable
	budgets    *sqlconfig.MockIBudgetTable
}

func newTestStorage(t *testing.T) (*storage.Storage, *writerProcessor, testTables) {
	t.Helper()
	tables := testTables{
		users:      sqlconfig.NewMockIUserTable(t),
		categories: sqlconfig.NewMockICategoryTable(t),
		expenses:   sqlconfig.NewMockIExpenseTable(t),
		budgets:    sqlconfig.NewMockIBudgetTable(t),
	}
	store := &storage.Storage{
		Users:      tables.users,
		Categories: tables.categories,
		Expenses:   tables.expenses,
		Budgets:    tables.budgets,
	}
	processor := &writerProcessor{writer: &storage.Writer{
		Users:      tables.users,
		Categories: tables.categories,
		Expenses:   tables.expenses,
		Budgets:    tables.budgets,
	}}
	return store, processor, tables
}

func newTestTokens(t *testing.T) *token.Service {
	t.Helper()
	tokens, err := token.NewService("test-secret", 15*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)
	return tokens
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
