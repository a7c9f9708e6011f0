package actions

import (
	"context"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expensum/internal/storage"
	"github.com/carson-networks/expensum/internal/storage/sqlconfig"
)

// DeleteCategory removes a writable category and moves its expenses to the user's "other" category.
type DeleteCategory struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID

	Reassigned int64
}

var _ IAction = (*DeleteCategory)(nil)

func (d *DeleteCategory) Name() string { return "deleteCategory" }

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := writer.Categories.FindByID(ctx, d.UserID, d.CategoryID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrCategoryNotFound
	}
	if err != nil {
		return err
	}
	if IsReadonly(category) {
		return ErrReadonlyCategory
	}

	fallback, err := writer.Categories.FindByName(ctx, d.UserID, sqlconfig.OtherCategoryName)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		fallback, err = writer.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
			UserID:   d.UserID,
			Name:     sqlconfig.OtherCategoryName,
			Readonly: true,
		})
	}
	if err != nil {
		return err
	}

	d.Reassigned, err = writer.Expenses.Reassign(ctx, d.UserID, category.ID, fallback.ID)
	if err != nil {
		return err
	}

	return writer.Categories.Delete(ctx, d.UserID, category.ID)
}

// IsReadonly reports whether a category is protected from edits. Any category
// named "other" is protected whatever its flag says.
func IsReadonly(category *sqlconfig.Category) bool {
	return category.Readonly || strings.EqualFold(strings.TrimSpace(category.Name), sqlconfig.OtherCategoryName)
}
