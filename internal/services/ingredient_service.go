// Package services – IngredientService
//
// Ingredients are the raw-material master referenced by recipe lines and
// purchase history. Deletion is rejected while either reference exists.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bakehouse/go-recipe-backend/internal/domain"
	"github.com/bakehouse/go-recipe-backend/internal/repo"
	"github.com/bakehouse/go-recipe-backend/internal/validation"
)

// IngredientService implements the use-cases around ingredient master data.
type IngredientService struct {
	DB *gorm.DB
}

// CreateIngredientInput is the payload for creating an ingredient.
type CreateIngredientInput struct {
	ProductName       string  `json:"product_name"        validate:"required,max=200"`
	CommonName        *string `json:"common_name"         validate:"omitempty,max=200"`
	RecipeDisplayName string  `json:"recipe_display_name" validate:"required,max=200"`
	Quantity          int     `json:"quantity"            validate:"gt=0"`
	QuantityUnit      string  `json:"quantity_unit"       validate:"required,max=50"`
}

// UpdateIngredientInput is the partial-update payload.
type UpdateIngredientInput struct {
	ProductName       domain.Optional[string] `json:"product_name"`
	CommonName        domain.Optional[string] `json:"common_name"`
	RecipeDisplayName domain.Optional[string] `json:"recipe_display_name"`
	Quantity          domain.Optional[int]    `json:"quantity"`
	QuantityUnit      domain.Optional[string] `json:"quantity_unit"`
}

// Create validates in and persists a new ingredient.
func (s *IngredientService) Create(ctx context.Context, in CreateIngredientInput) (*domain.Ingredient, error) {
	var c validation.Collector
	c.Struct(in)
	if err := c.Err(); err != nil {
		return nil, err
	}

	t := now()
	row := &domain.Ingredient{
		ProductName:       in.ProductName,
		CommonName:        in.CommonName,
		RecipeDisplayName: in.RecipeDisplayName,
		Quantity:          in.Quantity,
		QuantityUnit:      in.QuantityUnit,
		CreatedAt:         t,
		UpdatedAt:         t,
	}
	if err := repo.Create(ctx, s.DB, row); err != nil {
		return nil, err
	}
	return row, nil
}

// Get returns an ingredient by id, or ErrNotFound.
func (s *IngredientService) Get(ctx context.Context, id uint) (*domain.Ingredient, error) {
	row, err := repo.Get[domain.Ingredient](ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return row, err
}

// List returns a page of ingredients in storage order.
func (s *IngredientService) List(ctx context.Context, offset, limit int) ([]domain.Ingredient, error) {
	return repo.List[domain.Ingredient](ctx, s.DB, offset, limit)
}

// Update applies the present fields of in and refreshes updated_at.
func (s *IngredientService) Update(ctx context.Context, id uint, in UpdateIngredientInput) (*domain.Ingredient, error) {
	var c validation.Collector
	c.OptString("product_name", in.ProductName, true, 200)
	c.OptString("common_name", in.CommonName, false, 200)
	c.OptString("recipe_display_name", in.RecipeDisplayName, true, 200)
	c.OptInt("quantity", in.Quantity, false, 1, 0)
	c.OptString("quantity_unit", in.QuantityUnit, true, 50)
	if err := c.Err(); err != nil {
		return nil, err
	}

	var row *domain.Ingredient
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		got, err := repo.Get[domain.Ingredient](ctx, tx, id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if v, ok := in.ProductName.Value(); ok {
			got.ProductName = v
		}
		if in.CommonName.IsSet() {
			got.CommonName = ptrOf(in.CommonName)
		}
		if v, ok := in.RecipeDisplayName.Value(); ok {
			got.RecipeDisplayName = v
		}
		if v, ok := in.Quantity.Value(); ok {
			got.Quantity = v
		}
		if v, ok := in.QuantityUnit.Value(); ok {
			got.QuantityUnit = v
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

// Delete removes an ingredient. Fails with ErrInUse while recipe lines or
// purchase history rows still reference it.
func (s *IngredientService) Delete(ctx context.Context, id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		nDetails, err := repo.CountWhere[domain.RecipeDetail](ctx, tx, "ingredient_id = ?", id)
		if err != nil {
			return err
		}
		nPurchases, err := repo.CountWhere[domain.PurchaseHistory](ctx, tx, "ingredient_id = ?", id)
		if err != nil {
			return err
		}
		if nDetails > 0 || nPurchases > 0 {
			return ErrInUse
		}
		if err := repo.Delete[domain.Ingredient](ctx, tx, id); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		return nil
	})
}
