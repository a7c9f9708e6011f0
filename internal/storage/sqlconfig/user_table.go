package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var userColumns = []any{"id", "email", "password_hash", "created_at"}

// UsersTable provides access to the users table.
type UsersTable struct {
	exec bob.Executor
}

// Ensure UsersTable implements IUserTable at compile time.
var _ IUserTable = (*UsersTable)(nil)

// NewUsersTable creates a UsersTable running on exec, which may be a DB or a Tx.
func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

// FindByID retrieves a user by primary key.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return t.one(ctx, q)
}

// FindByEmail retrieves a user by their normalized email.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(psql.Quote("email").EQ(psql.Arg(email))),
	)
	return t.one(ctx, q)
}

// Insert creates a user. A taken email yields ErrDuplicate.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	q := psql.Insert(
		im.Into("users", "email", "password_hash"),
		im.Values(psql.Arg(create.Email), psql.Arg(create.PasswordHash)),
		im.Returning(userColumns...),
	)
	return t.one(ctx, q)
}

func (t *UsersTable) one(ctx context.Context, q bob.Query) (*User, error) {
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
	if err != nil {
		return nil, translate(err)
	}
	return row, nil
}
