package actions

import (
	"context"

	"github.com/carson-networks/expensum/internal/storage"
	"github.com/carson-networks/expensum/internal/storage/sqlconfig"
)

// CreateUser inserts a user together with their read-only "other" category.
type CreateUser struct {
	Email        string
	PasswordHash string

	User *sqlconfig.User
}

var _ IAction = (*CreateUser)(nil)

func (c *CreateUser) Name() string { return "createUser" }

func (c *CreateUser) Perform(ctx context.Context, writer *storage.Writer) error {
	user, err := writer.Users.Insert(ctx, &sqlconfig.UserCreate{
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
	})
	if err != nil {
		return err
	}

	_, err = writer.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		UserID:   user.ID,
		Name:     sqlconfig.OtherCategoryName,
		Readonly: true,
	})
	if err != nil {
		return err
	}

	c.User = user
	return nil
}
