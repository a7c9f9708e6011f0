package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var budgetColumns = []any{"id", "user_id", "month", "year", "amount", "created_at"}

// BudgetsTable provides access to the budgets table.
type BudgetsTable struct {
	exec bob.Executor
}

// Ensure BudgetsTable implements IBudgetTable at compile time.
var _ IBudgetTable = (*BudgetsTable)(nil)

func NewBudgetsTable(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

func (t *BudgetsTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Budget, error) {
	q := psql.Select(
		sm.Columns(budgetColumns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return t.one(ctx, q)
}

// FindByPeriod retrieves the user's budget for a month and year.
func (t *BudgetsTable) FindByPeriod(ctx context.Context, userID uuid.UUID, month, year int) (*Budget, error) {
	q := psql.Select(
		sm.Columns(budgetColumns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("month").EQ(psql.Arg(month))),
		sm.Where(psql.Quote("year").EQ(psql.Arg(year))),
	)
	return t.one(ctx, q)
}

// List returns the user's budgets, latest period first. A nil year returns all.
func (t *BudgetsTable) List(ctx context.Context, userID uuid.UUID, year *int) ([]*Budget, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(budgetColumns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if year != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("year").EQ(psql.Arg(*year))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("year")).Desc(),
		sm.OrderBy(psql.Quote("month")).Desc(),
	)
	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Budget]())
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// Insert creates a budget. A second budget for the same period yields ErrDuplicate.
func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	q := psql.Insert(
		im.Into("budgets", "user_id", "month", "year", "amount"),
		im.Values(psql.Arg(create.UserID), psql.Arg(create.Month), psql.Arg(create.Year), psql.Arg(create.Amount)),
		im.Returning(budgetColumns...),
	)
	return t.one(ctx, q)
}

func (t *BudgetsTable) UpdateAmount(ctx context.Context, userID, id uuid.UUID, amount decimal.Decimal) (*Budget, error) {
	q := psql.Update(
		um.Table("budgets"),
		um.SetCol("amount").ToArg(amount),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(budgetColumns...),
	)
	return t.one(ctx, q)
}

func (t *BudgetsTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("budgets"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return expectAffected(bob.Exec(ctx, t.exec, q))
}

func (t *BudgetsTable) one(ctx context.Context, q bob.Query) (*Budget, error) {
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Budget]())
	if err != nil {
		return nil, translate(err)
	}
	return row, nil
}
