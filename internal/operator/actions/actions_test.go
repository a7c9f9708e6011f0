package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expensum/internal/storage"
	"github.com/carson-networks/expensum/internal/storage/sqlconfig"
)

type writerMocks struct {
	users      *sqlconfig.MockIUserTable
	categories *sqlconfig.MockICategoryTable
	expenses   *sqlconfig.MockIExpenseTable
}

func newTestWriter(t *testing.T) (*storage.Writer, writerMocks) {
	t.Helper()
	m := writerMocks{
		users:      sqlconfig.NewMockIUserTable(t),
		categories: sqlconfig.NewMockICategoryTable(t),
		expenses:   sqlconfig.NewMockIExpenseTable(t),
	}
	writer := &storage.Writer{
		Users:      m.users,
		Categories: m.categories,
		Expenses:   m.expenses,
	}
	return writer, m
}

func TestCreateUser_CreatesOtherCategory(t *testing.T) {
	writer, m := newTestWriter(t)
	user := &sqlconfig.User{ID: uuid.Must(uuid.NewV4()), Email: "ann@example.com"}

	m.users.EXPECT().Insert(mock.Anything, &sqlconfig.UserCreate{
		Email:        "ann@example.com",
		PasswordHash: "hash",
	}).Return(user, nil)
	m.categories.EXPECT().Insert(mock.Anything, &sqlconfig.CategoryCreate{
		UserID:   user.ID,
		Name:     "other",
		Readonly: true,
	}).Return(&sqlconfig.Category{ID: uuid.Must(uuid.NewV4())}, nil)

	action := &CreateUser{Email: "ann@example.com", PasswordHash: "hash"}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, user, action.User)
}

func TestCreateUser_InsertError(t *testing.T) {
	writer, m := newTestWriter(t)

	m.users.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil, sqlconfig.ErrDuplicate)

	action := &CreateUser{Email: "ann@example.com", PasswordHash: "hash"}
	assert.ErrorIs(t, action.Perform(context.Background(), writer), sqlconfig.ErrDuplicate)
	assert.Nil(t, action.User)
}

func TestCreateExpense_Success(t *testing.T) {
	writer, m := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	date := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	expense := &sqlconfig.Expense{ID: uuid.Must(uuid.NewV4())}

	m.categories.EXPECT().FindByID(mock.Anything, userID, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, UserID: userID, Name: "food"}, nil)
	m.expenses.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.ExpenseCreate) bool {
		return c.UserID == userID &&
			c.CategoryID == categoryID &&
			c.Amount.Equal(decimal.RequireFromString("12.50")) &&
			c.Date.Equal(date) &&
			c.PaymentMethod == sqlconfig.PaymentMethodCash
	})).Return(expense, nil)

	action := &CreateExpense{
		UserID:        userID,
		CategoryID:    categoryID,
		Amount:        decimal.RequireFromString("12.50"),
		Date:          date,
		PaymentMethod: sqlconfig.PaymentMethodCash,
	}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, expense, action.Expense)
}

func TestCreateExpense_ForeignCategory(t *testing.T) {
	writer, m := newTestWriter(t)

	m.categories.EXPECT().FindByID(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, sqlconfig.ErrNotFound)

	action := &CreateExpense{UserID: uuid.Must(uuid.NewV4()), CategoryID: uuid.Must(uuid.NewV4())}
	assert.ErrorIs(t, action.Perform(context.Background(), writer), ErrCategoryNotFound)
}

func TestDeleteCategory_ReassignsToOther(t *testing.T) {
	writer, m := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	otherID := uuid.Must(uuid.NewV4())

	m.categories.EXPECT().FindByID(mock.Anything, userID, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, UserID: userID, Name: "food"}, nil)
	m.categories.EXPECT().FindByName(mock.Anything, userID, "other").
		Return(&sqlconfig.Category{ID: otherID, UserID: userID, Name: "other", Readonly: true}, nil)
	m.expenses.EXPECT().Reassign(mock.Anything, userID, categoryID, otherID).Return(int64(2), nil)
	m.categories.EXPECT().Delete(mock.Anything, userID, categoryID).Return(nil)

	action := &DeleteCategory{UserID: userID, CategoryID: categoryID}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, int64(2), action.Reassigned)
}

func TestDeleteCategory_RecreatesMissingOther(t *testing.T) {
	writer, m := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	otherID := uuid.Must(uuid.NewV4())

	m.categories.EXPECT().FindByID(mock.Anything, userID, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, UserID: userID, Name: "food"}, nil)
	m.categories.EXPECT().FindByName(mock.Anything, userID, "other").Return(nil, sqlconfig.ErrNotFound)
	m.categories.EXPECT().Insert(mock.Anything, &sqlconfig.CategoryCreate{UserID: userID, Name: "other", Readonly: true}).
		Return(&sqlconfig.Category{ID: otherID, UserID: userID, Name: "other", Readonly: true}, nil)
	m.expenses.EXPECT().Reassign(mock.Anything, userID, categoryID, otherID).Return(int64(0), nil)
	m.categories.EXPECT().Delete(mock.Anything, userID, categoryID).Return(nil)

	action := &DeleteCategory{UserID: userID, CategoryID: categoryID}
	assert.NoError(t, action.Perform(context.Background(), writer))
}

func TestDeleteCategory_RejectsOtherInAnyCase(t *testing.T) {
	for _, name := range []string{"other", "Other", "OTHER", " oThEr "} {
		t.Run(name, func(t *testing.T) {
			writer, m := newTestWriter(t)
			userID := uuid.Must(uuid.NewV4())
			categoryID := uuid.Must(uuid.NewV4())

			m.categories.EXPECT().FindByID(mock.Anything, userID, categoryID).
				Return(&sqlconfig.Category{ID: categoryID, UserID: userID, Name: name}, nil)

			action := &DeleteCategory{UserID: userID, CategoryID: categoryID}
			assert.ErrorIs(t, action.Perform(context.Background(), writer), ErrReadonlyCategory)
		})
	}
}

func TestDeleteCategory_RejectsReadonly(t *testing.T) {
	writer, m := newTestWriter(t)
	categoryID := uuid.Must(uuid.NewV4())

	m.categories.EXPECT().FindByID(mock.Anything, mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, Name: "rent", Readonly: true}, nil)

	action := &DeleteCategory{UserID: uuid.Must(uuid.NewV4()), CategoryID: categoryID}
	assert.ErrorIs(t, action.Perform(context.Background(), writer), ErrReadonlyCategory)
}

func TestDeleteCategory_ReassignError(t *testing.T) {
	writer, m := newTestWriter(t)
	categoryID := uuid.Must(uuid.NewV4())

	m.categories.EXPECT().FindByID(mock.Anything, mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, Name: "food"}, nil)
	m.categories.EXPECT().FindByName(mock.Anything, mock.Anything, "other").
		Return(&sqlconfig.Category{ID: uuid.Must(uuid.NewV4()), Name: "other", Readonly: true}, nil)
	m.expenses.EXPECT().Reassign(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), errors.New("update failed"))

	action := &DeleteCategory{UserID: uuid.Must(uuid.NewV4()), CategoryID: categoryID}
	assert.EqualError(t, action.Perform(context.Background(), writer), "update failed")
}
