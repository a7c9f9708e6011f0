package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// OtherCategoryName is the system category every user owns. Expenses fall back to it.
const OtherCategoryName = "other"

// Category represents a categories record.
type Category struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Readonly  bool      `db:"readonly"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID   uuid.UUID
	Name     string
	Readonly bool
}

// ICategoryTable defines the interface for category storage operations.
// Every lookup is scoped by the owning user.
type ICategoryTable interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Category, error)
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*Category, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	Rename(ctx context.Context, userID, id uuid.UUID, name string) (*Category, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
