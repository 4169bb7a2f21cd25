// Package services – CategoryService
//
// Recipe categories are plain master data: full CRUD with referenced-row
// protection on delete (a category still pointed at by recipes cannot be
// removed).
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bakehouse/go-recipe-backend/internal/domain"
	"github.com/bakehouse/go-recipe-backend/internal/repo"
	"github.com/bakehouse/go-recipe-backend/internal/validation"
)

// CategoryService implements the use-cases around recipe categories.
type CategoryService struct {
	DB *gorm.DB
}

// CreateCategoryInput is the payload for creating a recipe category.
type CreateCategoryInput struct {
	Category    string  `json:"category"     validate:"required,max=100"`
	SubCategory *string `json:"sub_category" validate:"omitempty,max=100"`
}

// UpdateCategoryInput is the partial-update payload. Absent fields leave
// the stored value untouched; an explicit null clears sub_category.
type UpdateCategoryInput struct {
	Category    domain.Optional[string] `json:"category"`
	SubCategory domain.Optional[string] `json:"sub_category"`
}

// Create validates in and persists a new category.
func (s *CategoryService) Create(ctx context.Context, in CreateCategoryInput) (*domain.RecipeCategory, error) {
	var c validation.Collector
	c.Struct(in)
	if err := c.Err(); err != nil {
		return nil, err
	}

	t := now()
	row := &domain.RecipeCategory{
		Category:    in.Category,
		SubCategory: in.SubCategory,
		CreatedAt:   t,
		UpdatedAt:   t,
	}
	if err := repo.Create(ctx, s.DB, row); err != nil {
		return nil, err
	}
	return row, nil
}

// Get returns a category by id, or ErrNotFound.
func (s *CategoryService) Get(ctx context.Context, id uint) (*domain.RecipeCategory, error) {
	row, err := repo.Get[domain.RecipeCategory](ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return row, err
}

// List returns a page of categories in storage order.
func (s *CategoryService) List(ctx context.Context, offset, limit int) ([]domain.RecipeCategory, error) {
	return repo.List[domain.RecipeCategory](ctx, s.DB, offset, limit)
}

// Update applies the present fields of in to the stored category and
// refreshes updated_at. Returns ErrNotFound when the id does not exist.
func (s *CategoryService) Update(ctx context.Context, id uint, in UpdateCategoryInput) (*domain.RecipeCategory, error) {
	var c validation.Collector
	c.OptString("category", in.Category, true, 100)
	c.OptString("sub_category", in.SubCategory, false, 100)
	if err := c.Err(); err != nil {
		return nil, err
	}

	var row *domain.RecipeCategory
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		got, err := repo.Get[domain.RecipeCategory](ctx, tx, id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if v, ok := in.Category.Value(); ok {
			got.Category = v
		}
		if in.SubCategory.IsSet() {
			got.SubCategory = ptrOf(in.SubCategory)
		}
		got.UpdatedAt = now()
		if err := repo.Save(ctx, tx, got); err != nil {
			return err
		}
		row = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes a category. Fails with ErrInUse when recipes still
// reference it, ErrNotFound when it does not exist.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		n, err := repo.CountWhere[domain.Recipe](ctx, tx, "category_id = ?", id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrInUse
		}
		if err := repo.Delete[domain.RecipeCategory](ctx, tx, id); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		return nil
	})
}
