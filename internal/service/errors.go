package service

import (
	"errors"

	"github.com/carson-networks/expensum/internal/operator/actions"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrEmailTaken          = errors.New("email already registered")
	ErrNotFound            = errors.New("not found")
	ErrCategoryNotFound    = actions.ErrCategoryNotFound
	ErrReadonlyCategory    = actions.ErrReadonlyCategory
	ErrCategoryExists      = errors.New("category already exists")
	ErrInvalidName         = errors.New("name must not be blank")
	ErrBudgetExists        = errors.New("budget already set for this month")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
)
