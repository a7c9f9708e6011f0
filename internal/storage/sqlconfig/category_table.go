package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var categoryColumns = []any{"id", "user_id", "name", "readonly", "created_at"}

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

// Ensure CategoriesTable implements ICategoryTable at compile time.
var _ ICategoryTable = (*CategoriesTable)(nil)

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

// FindByID retrieves one of the user's categories.
func (t *CategoriesTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return t.one(ctx, q)
}

// FindByName retrieves one of the user's categories by its normalized name.
func (t *CategoriesTable) FindByName(ctx context.Context, userID uuid.UUID, name string) (*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
	)
	return t.one(ctx, q)
}

// List returns the user's categories ordered by name.
func (t *CategoriesTable) List(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*Category]())
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// Insert creates a category. A name already used by the user yields ErrDuplicate.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	q := psql.Insert(
		im.Into("categories", "user_id", "name", "readonly"),
		im.Values(psql.Arg(create.UserID), psql.Arg(create.Name), psql.Arg(create.Readonly)),
		im.Returning(categoryColumns...),
	)
	return t.one(ctx, q)
}

// Rename changes the name of a writable category.
func (t *CategoriesTable) Rename(ctx context.Context, userID, id uuid.UUID, name string) (*Category, error) {
	q := psql.Update(
		um.Table("categories"),
		um.SetCol("name").ToArg(name),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("readonly").EQ(psql.Arg(false))),
		um.Returning(categoryColumns...),
	)
	return t.one(ctx, q)
}

// Delete removes a writable category.
func (t *CategoriesTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("categories"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("readonly").EQ(psql.Arg(false))),
	)
	return expectAffected(bob.Exec(ctx, t.exec, q))
}

func (t *CategoriesTable) one(ctx context.Context, q bob.Query) (*Category, error) {
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Category]())
	if err != nil {
		return nil, translate(err)
	}
	return row, nil
}
