package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var expenseColumns = []any{
	"id", "user_id", "category_id", "amount", "spent_at", "description", "payment_method", "created_at",
}

// ExpensesTable provides access to the expenses table.
type ExpensesTable struct {
	exec bob.Executor
}

// Ensure ExpensesTable implements IExpenseTable at compile time.
var _ IExpenseTable = (*ExpensesTable)(nil)

func NewExpensesTable(exec bob.Executor) *ExpensesTable {
	return &ExpensesTable{exec: exec}
}

// FindByID retrieves one of the user's expenses.
func (t *ExpensesTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Expense, error) {
	q := psql.Select(
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Expense]())
	if err != nil {
		return nil, translate(err)
	}
	return row, nil
}

// List returns the user's expenses matching the filter, newest first.
func (t *ExpensesTable) List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}
	if filter.CategoryID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
	}
	if filter.From != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("spent_at").GTE(psql.Arg(*filter.From))))
	}
	if filter.To != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("spent_at").LT(psql.Arg(*filter.To))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("spent_at")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Expense]())
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// Insert creates an expense. The caller checks category ownership.
func (t *ExpensesTable) Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error) {
	q := psql.Insert(
		im.Into("expenses", "user_id", "category_id", "amount", "spent_at", "description", "payment_method"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.CategoryID),
			psql.Arg(create.Amount),
			psql.Arg(create.Date),
			psql.Arg(create.Description),
			psql.Arg(string(create.PaymentMethod)),
		),
		im.Returning(expenseColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Expense]())
	if err != nil {
		return nil, translate(err)
	}
	return row, nil
}

// Delete removes one of the user's expenses.
func (t *ExpensesTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("expenses"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return expectAffected(bob.Exec(ctx, t.exec, q))
}

// Reassign moves every expense of one category to another and reports how many moved.
func (t *ExpensesTable) Reassign(ctx context.Context, userID, fromCategoryID, toCategoryID uuid.UUID) (int64, error) {
	q := psql.Update(
		um.Table("expenses"),
		um.SetCol("category_id").ToArg(toCategoryID),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("category_id").EQ(psql.Arg(fromCategoryID))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, translate(err)
	}
	return result.RowsAffected()
}
