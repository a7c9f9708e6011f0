package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expensum/internal/operator/actions"
	"github.com/carson-networks/expensum/internal/storage"
	"github.com/carson-networks/expensum/internal/storage/sqlconfig"
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage   *storage.Storage
	processor Processor
}

func NewCategoryService(store *storage.Storage, processor Processor) *CategoryService {
	return &CategoryService{storage: store, processor: processor}
}

// NormalizeCategoryName lowercases and trims a category name.
func NormalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryFromStorage(row)
	}
	return categories, nil
}

// CreateCategory adds a writable category. Names are unique per user.
func (s *CategoryService) CreateCategory(ctx context.Context, userID uuid.UUID, name string) (*Category, error) {
	name = NormalizeCategoryName(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	row, err := s.storage.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		UserID: userID,
		Name:   name,
	})
	if errors.Is(err, sqlconfig.ErrDuplicate) {
		return nil, ErrCategoryExists
	}
	if err != nil {
		return nil, err
	}
	category := categoryFromStorage(row)
	return &category, nil
}

// RenameCategory renames a writable category.
func (s *CategoryService) RenameCategory(ctx context.Context, userID, id uuid.UUID, name string) (*Category, error) {
	name = NormalizeCategoryName(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	current, err := s.storage.Categories.FindByID(ctx, userID, id)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	if actions.IsReadonly(current) {
		return nil, ErrReadonlyCategory
	}

	row, err := s.storage.Categories.Rename(ctx, userID, id, name)
	switch {
	case errors.Is(err, sqlconfig.ErrDuplicate):
		return nil, ErrCategoryExists
	case errors.Is(err, sqlconfig.ErrNotFound):
		return nil, ErrCategoryNotFound
	case err != nil:
		return nil, err
	}
	category := categoryFromStorage(row)
	return &category, nil
}

// DeleteCategory removes a writable category and returns how many expenses moved to "other".
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	action := &actions.DeleteCategory{UserID: userID, CategoryID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		if errors.Is(err, sqlconfig.ErrNotFound) {
			return 0, ErrCategoryNotFound
		}
		return 0, err
	}
	return action.Reassigned, nil
}
