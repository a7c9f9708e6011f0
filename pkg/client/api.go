package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type nameBody struct {
	Name string `json:"name"`
}

type amountBody struct {
	Amount string `json:"amount"`
}

type budgetBody struct {
	Month  int    `json:"month"`
	Year   int    `json:"year"`
	Amount string `json:"amount"`
}

func (c *Client) Signup(ctx context.Context, email, password string) (*User, error) {
	return c.authenticate(ctx, http.MethodPut, authPath+"/signup", email, password)
}

func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	return c.authenticate(ctx, http.MethodPost, authPath+"/login", email, password)
}

func (c *Client) authenticate(ctx context.Context, method, path, email, password string) (*User, error) {
	var user User
	if err := c.doPublic(ctx, method, path, credentials{Email: email, Password: password}, &user); err != nil {
		return nil, err
	}
	c.setUser(&user)
	return &user, nil
}

// Logout ends the session on the server and forgets it locally, even if the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.doPublic(ctx, http.MethodPost, authPath+"/logout", nil, nil)
	c.dropSession()
	return err
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/v1/users/me", nil, &user); err != nil {
		return nil, err
	}
	c.setUser(&user)
	return &user, nil
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/v1/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) (*Category, error) {
	var category Category
	if err := c.do(ctx, http.MethodPut, "/v1/categories", nameBody{Name: name}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) RenameCategory(ctx context.Context, id uuid.UUID, name string) (*Category, error) {
	var category Category
	if err := c.do(ctx, http.MethodPatch, "/v1/categories/"+id.String(), nameBody{Name: name}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category and returns how many expenses moved to "other".
func (c *Client) DeleteCategory(ctx context.Context, id uuid.UUID) (int64, error) {
	var body struct {
		Reassigned int64 `json:"reassigned"`
	}
	if err := c.do(ctx, http.MethodDelete, "/v1/categories/"+id.String(), nil, &body); err != nil {
		return 0, err
	}
	return body.Reassigned, nil
}

func (c *Client) Expenses(ctx context.Context, query ExpenseQuery) ([]Expense, error) {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.CategoryID != uuid.Nil {
		values.Set("category", query.CategoryID.String())
	}
	if query.Month > 0 {
		values.Set("month", strconv.Itoa(query.Month))
	}
	if query.Year > 0 {
		values.Set("year", strconv.Itoa(query.Year))
	}

	var expenses []Expense
	req := request{method: http.MethodGet, path: "/v1/expenses", query: values, refreshable: true}
	if err := c.call(ctx, req, nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (c *Client) Expense(ctx context.Context, id uuid.UUID) (*Expense, error) {
	var expense Expense
	if err := c.do(ctx, http.MethodGet, "/v1/expenses/"+id.String(), nil, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (c *Client) CreateExpense(ctx context.Context, input NewExpense) (*Expense, error) {
	body := newExpenseBody{
		Amount:        input.Amount.String(),
		Category:      input.CategoryID.String(),
		Description:   input.Description,
		PaymentMethod: input.PaymentMethod,
	}
	if !input.Date.IsZero() {
		body.Date = input.Date.UTC().Format(time.RFC3339)
	}

	var expense Expense
	if err := c.do(ctx, http.MethodPut, "/v1/expenses", body, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (c *Client) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/v1/expenses/"+id.String(), nil, nil)
}

// CurrentBudget returns this month's budget. No budget is reported as an
// APIError with status 404.
func (c *Client) CurrentBudget(ctx context.Context) (*Budget, error) {
	var budget Budget
	if err := c.do(ctx, http.MethodGet, "/v1/budgets/current", nil, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

// Budgets lists budgets, limited to year when it is non-zero.
func (c *Client) Budgets(ctx context.Context, year int) ([]Budget, error) {
	values := url.Values{}
	if year > 0 {
		values.Set("year", strconv.Itoa(year))
	}
	var budgets []Budget
	req := request{method: http.MethodGet, path: "/v1/budgets", query: values, refreshable: true}
	if err := c.call(ctx, req, nil, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (c *Client) CreateBudget(ctx context.Context, month, year int, amount decimal.Decimal) (*Budget, error) {
	var budget Budget
	body := budgetBody{Month: month, Year: year, Amount: amount.String()}
	if err := c.do(ctx, http.MethodPost, "/v1/budgets", body, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Client) UpdateBudget(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*Budget, error) {
	var budget Budget
	if err := c.do(ctx, http.MethodPatch, "/v1/budgets/"+id.String(), amountBody{Amount: amount.String()}, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Client) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/v1/budgets/"+id.String(), nil, nil)
}

// Dashboard fetches the summary for a month. Zero month or year mean the current one.
func (c *Client) Dashboard(ctx context.Context, month, year int) (*Dashboard, error) {
	values := url.Values{}
	if month > 0 {
		values.Set("month", strconv.Itoa(month))
	}
	if year > 0 {
		values.Set("year", strconv.Itoa(year))
	}
	var dashboard Dashboard
	req := request{method: http.MethodGet, path: "/v1/dashboard", query: values, refreshable: true}
	if err := c.call(ctx, req, nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}
