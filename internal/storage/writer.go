package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expensum/internal/storage/sqlconfig"
)

type Writer struct {
	tx         bob.Tx
	Users      sqlconfig.IUserTable
	Categories sqlconfig.ICategoryTable
	Expenses   sqlconfig.IExpenseTable
	Budgets    sqlconfig.IBudgetTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:         tx,
		Users:      sqlconfig.NewUsersTable(tx),
		Categories: sqlconfig.NewCategoriesTable(tx),
		Expenses:   sqlconfig.NewExpensesTable(tx),
		Budgets:    sqlconfig.NewBudgetsTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
