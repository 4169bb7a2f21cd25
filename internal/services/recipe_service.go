// Package services – RecipeService
//
// Recipes are the owning aggregate of their detail rows. Deleting a recipe
// removes every detail row with the same recipe_id in the same
// transaction; nothing else cascades. Status is a free enum, not a state
// machine: any of draft/active/archived can follow any other.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bakehouse/go-recipe-backend/internal/domain"
	"github.com/bakehouse/go-recipe-backend/internal/repo"
	"github.com/bakehouse/go-recipe-backend/internal/validation"
)

// RecipeService implements the use-cases around the recipe aggregate.
type RecipeService struct {
	DB *gorm.DB
}

// CreateRecipeInput is the payload for creating a recipe. Version defaults
// to 1, batch_unit to "pieces", status to "draft".
type CreateRecipeInput struct {
	RecipeName string  `json:"recipe_name" validate:"required,max=200"`
	CategoryID *uint   `json:"category_id" validate:"omitempty,gt=0"`
	Version    *int    `json:"version"     validate:"omitempty,gte=1"`
	Complexity *int    `json:"complexity"  validate:"omitempty,gte=1,lte=5"`
	Effort     *int    `json:"effort"      validate:"omitempty,gte=1,lte=5"`
	BatchSize  int     `json:"batch_size"  validate:"gt=0"`
	BatchUnit  *string `json:"batch_unit"  validate:"omitempty,max=50"`
	Status     *string `json:"status"      validate:"omitempty,oneof=draft active archived"`
}

// UpdateRecipeInput is the partial-update payload. category_id accepts an
// explicit null to detach the recipe from its category; complexity and
// effort accept null to clear the rating.
type UpdateRecipeInput struct {
	RecipeName domain.Optional[string] `json:"recipe_name"`
	CategoryID domain.Optional[uint]   `json:"category_id"`
	Version    domain.Optional[int]    `json:"version"`
	Complexity domain.Optional[int]    `json:"complexity"`
	Effort     domain.Optional[int]    `json:"effort"`
	BatchSize  domain.Optional[int]    `json:"batch_size"`
	BatchUnit  domain.Optional[string] `json:"batch_unit"`
	Status     domain.Optional[string] `json:"status"`
}

// Create validates in, resolves the optional category reference, and
// persists a new recipe in one transaction. A dangling category_id fails
// with ErrCategoryNotFound.
func (s *RecipeService) Create(ctx context.Context, in CreateRecipeInput) (*domain.Recipe, error) {
	var c validation.Collector
	c.Struct(in)
	if err := c.Err(); err != nil {
		return nil, err
	}

	var row *domain.Recipe
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if in.CategoryID != nil {
			ok, err := repo.Exists[domain.RecipeCategory](ctx, tx, *in.CategoryID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrCategoryNotFound
			}
		}

		t := now()
		row = &domain.Recipe{
			RecipeName: in.RecipeName,
			CategoryID: in.CategoryID,
			Version:    1,
			Complexity: in.Complexity,
			Effort:     in.Effort,
			BatchSize:  in.BatchSize,
			BatchUnit:  "pieces",
			Status:     domain.RecipeStatusDraft,
			CreatedAt:  t,
			UpdatedAt:  t,
		}
		if in.Version != nil {
			row.Version = *in.Version
		}
		if in.BatchUnit != nil {
			row.BatchUnit = *in.BatchUnit
		}
		if in.Status != nil {
			row.Status = *in.Status
		}
		return repo.Create(ctx, tx, row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Get returns a recipe by id, or ErrNotFound.
func (s *RecipeService) Get(ctx context.Context, id uint) (*domain.Recipe, error) {
	row, err := repo.Get[domain.Recipe](ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return row, err
}

// List returns a page of recipes in storage order.
func (s *RecipeService) List(ctx context.Context, offset, limit int) ([]domain.Recipe, error) {
	return repo.List[domain.Recipe](ctx, s.DB, offset, limit)
}

// Update applies the present fields of in, re-resolving category_id when
// it changes to a value, and refreshes updated_at.
func (s *RecipeService) Update(ctx context.Context, id uint, in UpdateRecipeInput) (*domain.Recipe, error) {
	var c validation.Collector
	c.OptString("recipe_name", in.RecipeName, true, 200)
	c.OptFK("category_id", in.CategoryID, true)
	c.OptInt("version", in.Version, false, 1, 0)
	c.OptInt("complexity", in.Complexity, true, 1, 5)
	c.OptInt("effort", in.Effort, true, 1, 5)
	c.OptInt("batch_size", in.BatchSize, false, 1, 0)
	c.OptString("batch_unit", in.BatchUnit, true, 50)
	c.OptEnum("status", in.Status, false, domain.ValidRecipeStatus)
	if err := c.Err(); err != nil {
		return nil, err
	}

	var row *domain.Recipe
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		got, err := repo.Get[domain.Recipe](ctx, tx, id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if in.CategoryID.IsSet() {
			if v, ok := in.CategoryID.Value(); ok {
				exists, err := repo.Exists[domain.RecipeCategory](ctx, tx, v)
				if err != nil {
					return err
				}
				if !exists {
					return ErrCategoryNotFound
				}
			}
			got.CategoryID = ptrOf(in.CategoryID)
		}
		if v, ok := in.RecipeName.Value(); ok {
			got.RecipeName = v
		}
		if v, ok := in.Version.Value(); ok {
			got.Version = v
		}
		if in.Complexity.IsSet() {
			got.Complexity = ptrOf(in.Complexity)
		}
		if in.Effort.IsSet() {
			got.Effort = ptrOf(in.Effort)
		}
		if v, ok := in.BatchSize.Value(); ok {
			got.BatchSize = v
		}
		if v, ok := in.BatchUnit.Value(); ok {
			got.BatchUnit = v
		}
		if v, ok := in.Status.Value(); ok {
			got.Status = v
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

// Delete removes a recipe and all of its detail rows atomically. Fails
// with ErrNotFound when the recipe does not exist; detail rows are left
// untouched in that case.
func (s *RecipeService) Delete(ctx context.Context, id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := repo.DeleteRecipeWithDetails(ctx, tx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	})
}

// ListDetails returns the recipe's detail rows ordered ascending by
// display_order. An unknown or just-deleted recipe yields an empty
// sequence, not an error.
func (s *RecipeService) ListDetails(ctx context.Context, recipeID uint) ([]domain.RecipeDetail, error) {
	return repo.ListRecipeDetails(ctx, s.DB, recipeID)
}
