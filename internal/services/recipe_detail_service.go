// Package services – RecipeDetailService
//
// Detail rows are the lines of a recipe's bill of materials. Both foreign
// keys must resolve on create, and again on update whenever they change.
// (recipe_id, display_order) is intended to be unique per recipe but the
// schema does not enforce it; duplicate orders sort stably by insertion.
package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bakehouse/go-recipe-backend/internal/domain"
	"github.com/bakehouse/go-recipe-backend/internal/repo"
	"github.com/bakehouse/go-recipe-backend/internal/validation"
)

// RecipeDetailService implements the use-cases around recipe detail rows.
type RecipeDetailService struct {
	DB *gorm.DB
}

// CreateRecipeDetailInput is the payload for creating a detail row.
type CreateRecipeDetailInput struct {
	RecipeID     uint             `json:"recipe_id"     validate:"required"`
	IngredientID uint             `json:"ingredient_id" validate:"required"`
	UsageAmount  *decimal.Decimal `json:"usage_amount"`
	UsageUnit    string           `json:"usage_unit"    validate:"required,max=50"`
	DisplayOrder int              `json:"display_order" validate:"gte=1"`
	EggType      *string          `json:"egg_type"      validate:"omitempty,oneof=whole_egg egg_white egg_yolk"`
}

// UpdateRecipeDetailInput is the partial-update payload. egg_type accepts
// an explicit null to clear the egg part marker.
type UpdateRecipeDetailInput struct {
	RecipeID     domain.Optional[uint]            `json:"recipe_id"`
	IngredientID domain.Optional[uint]            `json:"ingredient_id"`
	UsageAmount  domain.Optional[decimal.Decimal] `json:"usage_amount"`
	UsageUnit    domain.Optional[string]          `json:"usage_unit"`
	DisplayOrder domain.Optional[int]             `json:"display_order"`
	EggType      domain.Optional[string]          `json:"egg_type"`
}

// Create validates in, resolves both foreign keys, and persists the row in
// one transaction.
func (s *RecipeDetailService) Create(ctx context.Context, in CreateRecipeDetailInput) (*domain.RecipeDetail, error) {
	var c validation.Collector
	c.Struct(in)
	if in.UsageAmount == nil {
		c.Add("usage_amount", "required", "is required")
	} else {
		c.Decimal("usage_amount", *in.UsageAmount, validation.Usage)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	var row *domain.RecipeDetail
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := repo.Exists[domain.Recipe](ctx, tx, in.RecipeID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrRecipeNotFound
		}
		ok, err = repo.Exists[domain.Ingredient](ctx, tx, in.IngredientID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrIngredientNotFound
		}

		t := now()
		row = &domain.RecipeDetail{
			RecipeID:     in.RecipeID,
			IngredientID: in.IngredientID,
			UsageAmount:  *in.UsageAmount,
			UsageUnit:    in.UsageUnit,
			DisplayOrder: in.DisplayOrder,
			EggType:      in.EggType,
			CreatedAt:    t,
			UpdatedAt:    t,
		}
		return repo.Create(ctx, tx, row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Get returns a detail row by id, or ErrNotFound.
func (s *RecipeDetailService) Get(ctx context.Context, id uint) (*domain.RecipeDetail, error) {
	row, err := repo.Get[domain.RecipeDetail](ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return row, err
}

// List returns a page of detail rows in storage order. For the
// presentation ordering of one recipe use RecipeService.ListDetails.
func (s *RecipeDetailService) List(ctx context.Context, offset, limit int) ([]domain.RecipeDetail, error) {
	return repo.List[domain.RecipeDetail](ctx, s.DB, offset, limit)
}

// ListForRecipe returns all detail rows of recipeID ordered ascending by
// display_order.
func (s *RecipeDetailService) ListForRecipe(ctx context.Context, recipeID uint) ([]domain.RecipeDetail, error) {
	return repo.ListRecipeDetails(ctx, s.DB, recipeID)
}

// Update applies the present fields of in, re-resolving any changed
// foreign key, and refreshes updated_at.
func (s *RecipeDetailService) Update(ctx context.Context, id uint, in UpdateRecipeDetailInput) (*domain.RecipeDetail, error) {
	var c validation.Collector
	c.OptFK("recipe_id", in.RecipeID, false)
	c.OptFK("ingredient_id", in.IngredientID, false)
	c.OptDecimal("usage_amount", in.UsageAmount, false, validation.Usage)
	c.OptString("usage_unit", in.UsageUnit, true, 50)
	c.OptInt("display_order", in.DisplayOrder, false, 1, 0)
	c.OptEnum("egg_type", in.EggType, true, domain.ValidEggType)
	if err := c.Err(); err != nil {
		return nil, err
	}

	var row *domain.RecipeDetail
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		got, err := repo.Get[domain.RecipeDetail](ctx, tx, id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if v, ok := in.RecipeID.Value(); ok {
			exists, err := repo.Exists[domain.Recipe](ctx, tx, v)
			if err != nil {
				return err
			}
			if !exists {
				return ErrRecipeNotFound
			}
			got.RecipeID = v
		}
		if v, ok := in.IngredientID.Value(); ok {
			exists, err := repo.Exists[domain.Ingredient](ctx, tx, v)
			if err != nil {
				return err
			}
			if !exists {
				return ErrIngredientNotFound
			}
			got.IngredientID = v
		}
		if v, ok := in.UsageAmount.Value(); ok {
			got.UsageAmount = v
		}
		if v, ok := in.UsageUnit.Value(); ok {
			got.UsageUnit = v
		}
		if v, ok := in.DisplayOrder.Value(); ok {
			got.DisplayOrder = v
		}
		if in.EggType.IsSet() {
			got.EggType = ptrOf(in.EggType)
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

// Delete removes a detail row, or fails with ErrNotFound.
func (s *RecipeDetailService) Delete(ctx context.Context, id uint) error {
	err := repo.Delete[domain.RecipeDetail](ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
