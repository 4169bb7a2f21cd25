// Package services – PackagingMaterialService
//
// Packaging materials mirror the ingredient master but live in their own
// identity space; products and packaging purchases reference them.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bakehouse/go-recipe-backend/internal/domain"
	"github.com/bakehouse/go-recipe-backend/internal/repo"
	"github.com/bakehouse/go-recipe-backend/internal/validation"
)

// PackagingMaterialService implements the use-cases around packaging
// master data.
type PackagingMaterialService struct {
	DB *gorm.DB
}

// CreatePackagingMaterialInput is the payload for creating a packaging
// material.
type CreatePackagingMaterialInput struct {
	ProductName       string  `json:"product_name"        validate:"required,max=200"`
	CommonName        *string `json:"common_name"         validate:"omitempty,max=200"`
	RecipeDisplayName string  `json:"recipe_display_name" validate:"required,max=200"`
	Quantity          int     `json:"quantity"            validate:"gt=0"`
	QuantityUnit      string  `json:"quantity_unit"       validate:"required,max=50"`
}

// UpdatePackagingMaterialInput is the partial-update payload.
type UpdatePackagingMaterialInput struct {
	ProductName       domain.Optional[string] `json:"product_name"`
	CommonName        domain.Optional[string] `json:"common_name"`
	RecipeDisplayName domain.Optional[string] `json:"recipe_display_name"`
	Quantity          domain.Optional[int]    `json:"quantity"`
	QuantityUnit      domain.Optional[string] `json:"quantity_unit"`
}

// Create validates in and persists a new packaging material.
func (s *PackagingMaterialService) Create(ctx context.Context, in CreatePackagingMaterialInput) (*domain.PackagingMaterial, error) {
	var c validation.Collector
	c.Struct(in)
	if err := c.Err(); err != nil {
		return nil, err
	}

	t := now()
	row := &domain.PackagingMaterial{
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

// Get returns a packaging material by id, or ErrNotFound.
func (s *PackagingMaterialService) Get(ctx context.Context, id uint) (*domain.PackagingMaterial, error) {
	row, err := repo.Get[domain.PackagingMaterial](ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return row, err
}

// List returns a page of packaging materials in storage order.
func (s *PackagingMaterialService) List(ctx context.Context, offset, limit int) ([]domain.PackagingMaterial, error) {
	return repo.List[domain.PackagingMaterial](ctx, s.DB, offset, limit)
}

// Update applies the present fields of in and refreshes updated_at.
func (s *PackagingMaterialService) Update(ctx context.Context, id uint, in UpdatePackagingMaterialInput) (*domain.PackagingMaterial, error) {
	var c validation.Collector
	c.OptString("product_name", in.ProductName, true, 200)
	c.OptString("common_name", in.CommonName, false, 200)
	c.OptString("recipe_display_name", in.RecipeDisplayName, true, 200)
	c.OptInt("quantity", in.Quantity, false, 1, 0)
	c.OptString("quantity_unit", in.QuantityUnit, true, 50)
	if err := c.Err(); err != nil {
		return nil, err
	}

	var row *domain.PackagingMaterial
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		got, err := repo.Get[domain.PackagingMaterial](ctx, tx, id)
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

// Delete removes a packaging material. Fails with ErrInUse while products
// or packaging purchase rows still reference it.
func (s *PackagingMaterialService) Delete(ctx context.Context, id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		nProducts, err := repo.CountWhere[domain.Product](ctx, tx, "packaging_material_id = ?", id)
		if err != nil {
			return err
		}
		nPurchases, err := repo.CountWhere[domain.PackagingPurchaseHistory](ctx, tx, "packaging_material_id = ?", id)
		if err != nil {
			return err
		}
		if nProducts > 0 || nPurchases > 0 {
			return ErrInUse
		}
		if err := repo.Delete[domain.PackagingMaterial](ctx, tx, id); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		return nil
	})
}
