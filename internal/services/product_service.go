// Package services – ProductService
//
// Products reference a recipe and a packaging material, both optional so a
// product sheet can be drafted before its recipe is final. Selling price
// stays null while the product is under review.
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

// ProductService implements the use-cases around sellable products.
type ProductService struct {
	DB *gorm.DB
}

// CreateProductInput is the payload for creating a product. Status
// defaults to "under_review".
type CreateProductInput struct {
	ProductName         string           `json:"product_name"          validate:"required,max=200"`
	RecipeID            *uint            `json:"recipe_id"             validate:"omitempty,gt=0"`
	PiecesPerPackage    int              `json:"pieces_per_package"    validate:"gt=0"`
	PackagingMaterialID *uint            `json:"packaging_material_id" validate:"omitempty,gt=0"`
	ShelfLifeDays       *int             `json:"shelf_life_days"       validate:"omitempty,gt=0"`
	YieldPerBatch       int              `json:"yield_per_batch"       validate:"gt=0"`
	SellingPrice        *decimal.Decimal `json:"selling_price"`
	Status              *string          `json:"status"                validate:"omitempty,oneof=under_review trial selling discontinued"`
}

// UpdateProductInput is the partial-update payload. recipe_id,
// packaging_material_id, shelf_life_days, and selling_price accept
// explicit null to clear the column.
type UpdateProductInput struct {
	ProductName         domain.Optional[string]          `json:"product_name"`
	RecipeID            domain.Optional[uint]            `json:"recipe_id"`
	PiecesPerPackage    domain.Optional[int]             `json:"pieces_per_package"`
	PackagingMaterialID domain.Optional[uint]            `json:"packaging_material_id"`
	ShelfLifeDays       domain.Optional[int]             `json:"shelf_life_days"`
	YieldPerBatch       domain.Optional[int]             `json:"yield_per_batch"`
	SellingPrice        domain.Optional[decimal.Decimal] `json:"selling_price"`
	Status              domain.Optional[string]          `json:"status"`
}

// Create validates in, resolves the optional references, and persists a
// new product in one transaction.
func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	var c validation.Collector
	c.Struct(in)
	c.DecimalPtr("selling_price", in.SellingPrice, validation.Price)
	if err := c.Err(); err != nil {
		return nil, err
	}

	var row *domain.Product
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if in.RecipeID != nil {
			ok, err := repo.Exists[domain.Recipe](ctx, tx, *in.RecipeID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrRecipeNotFound
			}
		}
		if in.PackagingMaterialID != nil {
			ok, err := repo.Exists[domain.PackagingMaterial](ctx, tx, *in.PackagingMaterialID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrPackagingMaterialNotFound
			}
		}

		t := now()
		row = &domain.Product{
			ProductName:         in.ProductName,
			RecipeID:            in.RecipeID,
			PiecesPerPackage:    in.PiecesPerPackage,
			PackagingMaterialID: in.PackagingMaterialID,
			ShelfLifeDays:       in.ShelfLifeDays,
			YieldPerBatch:       in.YieldPerBatch,
			SellingPrice:        in.SellingPrice,
			Status:              domain.ProductStatusUnderReview,
			CreatedAt:           t,
			UpdatedAt:           t,
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

// Get returns a product by id, or ErrNotFound.
func (s *ProductService) Get(ctx context.Context, id uint) (*domain.Product, error) {
	row, err := repo.Get[domain.Product](ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return row, err
}

// List returns a page of products in storage order.
func (s *ProductService) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	return repo.List[domain.Product](ctx, s.DB, offset, limit)
}

// Update applies the present fields of in, re-resolving any changed
// reference, and refreshes updated_at.
func (s *ProductService) Update(ctx context.Context, id uint, in UpdateProductInput) (*domain.Product, error) {
	var c validation.Collector
	c.OptString("product_name", in.ProductName, true, 200)
	c.OptFK("recipe_id", in.RecipeID, true)
	c.OptInt("pieces_per_package", in.PiecesPerPackage, false, 1, 0)
	c.OptFK("packaging_material_id", in.PackagingMaterialID, true)
	c.OptInt("shelf_life_days", in.ShelfLifeDays, true, 1, 0)
	c.OptInt("yield_per_batch", in.YieldPerBatch, false, 1, 0)
	c.OptDecimal("selling_price", in.SellingPrice, true, validation.Price)
	c.OptEnum("status", in.Status, false, domain.ValidProductStatus)
	if err := c.Err(); err != nil {
		return nil, err
	}

	var row *domain.Product
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		got, err := repo.Get[domain.Product](ctx, tx, id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if in.RecipeID.IsSet() {
			if v, ok := in.RecipeID.Value(); ok {
				exists, err := repo.Exists[domain.Recipe](ctx, tx, v)
				if err != nil {
					return err
				}
				if !exists {
					return ErrRecipeNotFound
				}
			}
			got.RecipeID = ptrOf(in.RecipeID)
		}
		if in.PackagingMaterialID.IsSet() {
			if v, ok := in.PackagingMaterialID.Value(); ok {
				exists, err := repo.Exists[domain.PackagingMaterial](ctx, tx, v)
				if err != nil {
					return err
				}
				if !exists {
					return ErrPackagingMaterialNotFound
				}
			}
			got.PackagingMaterialID = ptrOf(in.PackagingMaterialID)
		}
		if v, ok := in.ProductName.Value(); ok {
			got.ProductName = v
		}
		if v, ok := in.PiecesPerPackage.Value(); ok {
			got.PiecesPerPackage = v
		}
		if in.ShelfLifeDays.IsSet() {
			got.ShelfLifeDays = ptrOf(in.ShelfLifeDays)
		}
		if v, ok := in.YieldPerBatch.Value(); ok {
			got.YieldPerBatch = v
		}
		if in.SellingPrice.IsSet() {
			got.SellingPrice = ptrOf(in.SellingPrice)
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

// Delete removes a product, or fails with ErrNotFound. Nothing references
// products, so no in-use check applies.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	err := repo.Delete[domain.Product](ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
