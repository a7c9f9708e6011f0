package category

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expensum/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID        string `json:"id" doc:"Category UUID"`
	Name      string `json:"name" doc:"Lowercased category name"`
	Readonly  bool   `json:"readonly" doc:"System categories cannot be renamed or deleted"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

// NameBody is the request body for creating or renaming a category.
type NameBody struct {
	Name string `json:"name" required:"true" minLength:"1" maxLength:"64" doc:"Category name"`
}

func categoryToResponse(c service.Category) Category {
	return Category{
		ID:        c.ID.String(),
		Name:      c.Name,
		Readonly:  c.Readonly,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func toHTTPError(err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		return huma.NewError(http.StatusNotFound, "Category not found", err)
	case errors.Is(err, service.ErrReadonlyCategory):
		return huma.NewError(http.StatusForbidden, "Category is read-only", err)
	case errors.Is(err, service.ErrCategoryExists):
		return huma.NewError(http.StatusConflict, "Category already exists", err)
	case errors.Is(err, service.ErrInvalidName):
		return huma.NewError(http.StatusBadRequest, "Category name must not be blank", err)
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}
