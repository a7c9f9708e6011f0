package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockT interface {
	mock.TestingT
	Cleanup(func())
}

// MockIUserTable is a testify mock of IUserTable.
type MockIUserTable struct {
	mock.Mock
}

type MockIUserTable_Expecter struct {
	mock *mock.Mock
}

func NewMockIUserTable(t mockT) *MockIUserTable {
	m := &MockIUserTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIUserTable) EXPECT() *MockIUserTable_Expecter {
	return &MockIUserTable_Expecter{mock: &m.Mock}
}

func (m *MockIUserTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	args := m.Called(ctx, id)
	ret, _ := args.Get(0).(*User)
	return ret, args.Error(1)
}

func (e *MockIUserTable_Expecter) FindByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (m *MockIUserTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	ret, _ := args.Get(0).(*User)
	return ret, args.Error(1)
}

func (e *MockIUserTable_Expecter) FindByEmail(ctx, email interface{}) *mock.Call {
	return e.mock.On("FindByEmail", ctx, email)
}

func (m *MockIUserTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	args := m.Called(ctx, create)
	ret, _ := args.Get(0).(*User)
	return ret, args.Error(1)
}

func (e *MockIUserTable_Expecter) Insert(ctx, create interface{}) *mock.Call {
	return e.mock.On("Insert", ctx, create)
}

// MockICategoryTable is a testify mock of ICategoryTable.
type MockICategoryTable struct {
	mock.Mock
}

type MockICategoryTable_Expecter struct {
	mock *mock.Mock
}

func NewMockICategoryTable(t mockT) *MockICategoryTable {
	m := &MockICategoryTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockICategoryTable) EXPECT() *MockICategoryTable_Expecter {
	return &MockICategoryTable_Expecter{mock: &m.Mock}
}

func (m *MockICategoryTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Category, error) {
	args := m.Called(ctx, userID, id)
	ret, _ := args.Get(0).(*Category)
	return ret, args.Error(1)
}

func (e *MockICategoryTable_Expecter) FindByID(ctx, userID, id interface{}) *mock.Call {
	return e.mock.On("FindByID", ctx, userID, id)
}

func (m *MockICategoryTable) FindByName(ctx context.Context, userID uuid.UUID, name string) (*Category, error) {
	args := m.Called(ctx, userID, name)
	ret, _ := args.Get(0).(*Category)
	return ret, args.Error(1)
}

func (e *MockICategoryTable_Expecter) FindByName(ctx, userID, name interface{}) *mock.Call {
	return e.mock.On("FindByName", ctx, userID, name)
}

func (m *MockICategoryTable) List(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	args := m.Called(ctx, userID)
	ret, _ := args.Get(0).([]*Category)
	return ret, args.Error(1)
}

func (e *MockICategoryTable_Expecter) List(ctx, userID interface{}) *mock.Call {
	return e.mock.On("List", ctx, userID)
}

func (m *MockICategoryTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	args := m.Called(ctx, create)
	ret, _ := args.Get(0).(*Category)
	return ret, args.Error(1)
}

func (e *MockICategoryTable_Expecter) Insert(ctx, create interface{}) *mock.Call {
	return e.mock.On("Insert", ctx, create)
}

func (m *MockICategoryTable) Rename(ctx context.Context, userID, id uuid.UUID, name string) (*Category, error) {
	args := m.Called(ctx, userID, id, name)
	ret, _ := args.Get(0).(*Category)
	return ret, args.Error(1)
}

func (e *MockICategoryTable_Expecter) Rename(ctx, userID, id, name interface{}) *mock.Call {
	return e.mock.On("Rename", ctx, userID, id, name)
}

func (m *MockICategoryTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (e *MockICategoryTable_Expecter) Delete(ctx, userID, id interface{}) *mock.Call {
	return e.mock.On("Delete", ctx, userID, id)
}

// MockIExpenseTable is a testify mock of IExpenseTable.
type MockIExpenseTable struct {
	mock.Mock
}

type MockIExpenseTable_Expecter struct {
	mock *mock.Mock
}

func NewMockIExpenseTable(t mockT) *MockIExpenseTable {
	m := &MockIExpenseTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIExpenseTable) EXPECT() *MockIExpenseTable_Expecter {
	return &MockIExpenseTable_Expecter{mock: &m.Mock}
}

func (m *MockIExpenseTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Expense, error) {
	args := m.Called(ctx, userID, id)
	ret, _ := args.Get(0).(*Expense)
	return ret, args.Error(1)
}

func (e *MockIExpenseTable_Expecter) FindByID(ctx, userID, id interface{}) *mock.Call {
	return e.mock.On("FindByID", ctx, userID, id)
}

func (m *MockIExpenseTable) List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error) {
	args := m.Called(ctx, filter)
	ret, _ := args.Get(0).([]*Expense)
	return ret, args.Error(1)
}

func (e *MockIExpenseTable_Expecter) List(ctx, filter interface{}) *mock.Call {
	return e.mock.On("List", ctx, filter)
}

func (m *MockIExpenseTable) Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error) {
	args := m.Called(ctx, create)
	ret, _ := args.Get(0).(*Expense)
	return ret, args.Error(1)
}

func (e *MockIExpenseTable_Expecter) Insert(ctx, create interface{}) *mock.Call {
	return e.mock.On("Insert", ctx, create)
}

func (m *MockIExpenseTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (e *MockIExpenseTable_Expecter) Delete(ctx, userID, id interface{}) *mock.Call {
	return e.mock.On("Delete", ctx, userID, id)
}

func (m *MockIExpenseTable) Reassign(ctx context.Context, userID, fromCategoryID, toCategoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID, fromCategoryID, toCategoryID)
	ret, _ := args.Get(0).(int64)
	return ret, args.Error(1)
}

func (e *MockIExpenseTable_Expecter) Reassign(ctx, userID, fromCategoryID, toCategoryID interface{}) *mock.Call {
	return e.mock.On("Reassign", ctx, userID, fromCategoryID, toCategoryID)
}

// MockIBudgetTable is a testify mock of IBudgetTable.
type MockIBudgetTable struct {
	mock.Mock
}

type MockIBudgetTable_Expecter struct {
	mock *mock.Mock
}

func NewMockIBudgetTable(t mockT) *MockIBudgetTable {
	m := &MockIBudgetTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIBudgetTable) EXPECT() *MockIBudgetTable_Expecter {
	return &MockIBudgetTable_Expecter{mock: &m.Mock}
}

func (m *MockIBudgetTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Budget, error) {
	args := m.Called(ctx, userID, id)
	ret, _ := args.Get(0).(*Budget)
	return ret, args.Error(1)
}

func (e *MockIBudgetTable_Expecter) FindByID(ctx, userID, id interface{}) *mock.Call {
	return e.mock.On("FindByID", ctx, userID, id)
}

func (m *MockIBudgetTable) FindByPeriod(ctx context.Context, userID uuid.UUID, month, year int) (*Budget, error) {
	args := m.Called(ctx, userID, month, year)
	ret, _ := args.Get(0).(*Budget)
	return ret, args.Error(1)
}

func (e *MockIBudgetTable_Expecter) FindByPeriod(ctx, userID, month, year interface{}) *mock.Call {
	return e.mock.On("FindByPeriod", ctx, userID, month, year)
}

func (m *MockIBudgetTable) List(ctx context.Context, userID uuid.UUID, year *int) ([]*Budget, error) {
	args := m.Called(ctx, userID, year)
	ret, _ := args.Get(0).([]*Budget)
	return ret, args.Error(1)
}

func (e *MockIBudgetTable_Expecter) List(ctx, userID, year interface{}) *mock.Call {
	return e.mock.On("List", ctx, userID, year)
}

func (m *MockIBudgetTable) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	args := m.Called(ctx, create)
	ret, _ := args.Get(0).(*Budget)
	return ret, args.Error(1)
}

func (e *MockIBudgetTable_Expecter) Insert(ctx, create interface{}) *mock.Call {
	return e.mock.On("Insert", ctx, create)
}

func (m *MockIBudgetTable) UpdateAmount(ctx context.Context, userID, id uuid.UUID, amount decimal.Decimal) (*Budget, error) {
	args := m.Called(ctx, userID, id, amount)
	ret, _ := args.Get(0).(*Budget)
	return ret, args.Error(1)
}

func (e *MockIBudgetTable_Expecter) UpdateAmount(ctx, userID, id, amount interface{}) *mock.Call {
	return e.mock.On("UpdateAmount", ctx, userID, id, amount)
}

func (m *MockIBudgetTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (e *MockIBudgetTable_Expecter) Delete(ctx, userID, id interface{}) *mock.Call {
	return e.mock.On("Delete", ctx, userID, id)
}
