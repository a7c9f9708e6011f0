package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expensum/internal/config"
	"github.com/carson-networks/expensum/internal/storage/sqlconfig"
)

// Storage is the read side of the database. Writes go through a Writer so they share a transaction.
type Storage struct {
	DB         *sql.DB
	db         bob.DB
	Users      sqlconfig.IUserTable
	Categories sqlconfig.ICategoryTable
	Expenses   sqlconfig.IExpenseTable
	Budgets    sqlconfig.IBudgetTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	return New(db), nil
}

// New wraps an open database handle.
func New(db *sql.DB) *Storage {
	exec := bob.NewDB(db)
	return &Storage{
		DB:         db,
		db:         exec,
		Users:      sqlconfig.NewUsersTable(exec),
		Categories: sqlconfig.NewCategoriesTable(exec),
		Expenses:   sqlconfig.NewExpensesTable(exec),
		Budgets:    sqlconfig.NewBudgetsTable(exec),
	}
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Write begins a transaction. The caller must Commit or Rollback the returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("BeginTx: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
