// Package services – purchase history services
//
// Two symmetric services record purchases: one against the ingredient
// master, one against the packaging master. Each purchase stores the net
// price (decimal 10,2) plus the tax and discount rates (decimal 5,4)
// applicable on the purchase date; tax defaults to the 10% consumption
// rate, discount to zero.
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

// Rate defaults applied when a create payload omits them.
var (
	defaultTaxRate      = decimal.New(10, -2) // 0.10
	defaultDiscountRate = decimal.New(0, -2)  // 0.00
)

// CreatePurchaseInput is the payload for recording a purchase. The same
// shape serves both purchase tables; only the foreign key target differs.
type CreatePurchaseInput struct {
	PurchaseDate      string           `json:"purchase_date" validate:"required,datetime=2006-01-02"`
	ReferenceID       uint             `json:"-"`
	PriceExcludingTax *decimal.Decimal `json:"price_excluding_tax"`
	TaxRate           *decimal.Decimal `json:"tax_rate"`
	DiscountRate      *decimal.Decimal `json:"discount_rate"`
	Supplier          *string          `json:"supplier"      validate:"omitempty,max=200"`
}

// UpdatePurchaseInput is the partial-update payload for either purchase
// table.
type UpdatePurchaseInput struct {
	PurchaseDate      domain.Optional[string]          `json:"purchase_date"`
	ReferenceID       domain.Optional[uint]            `json:"-"`
	PriceExcludingTax domain.Optional[decimal.Decimal] `json:"price_excluding_tax"`
	TaxRate           domain.Optional[decimal.Decimal] `json:"tax_rate"`
	DiscountRate      domain.Optional[decimal.Decimal] `json:"discount_rate"`
	Supplier          domain.Optional[string]          `json:"supplier"`
}

// validateCreatePurchase runs the shared field rules for a purchase create.
func validateCreatePurchase(in CreatePurchaseInput, fkField string) error {
	var c validation.Collector
	c.Struct(in)
	if in.PriceExcludingTax == nil {
		c.Add("price_excluding_tax", "required", "is required")
	} else {
		c.Decimal("price_excluding_tax", *in.PriceExcludingTax, validation.Price)
	}
	c.DecimalPtr("tax_rate", in.TaxRate, validation.Rate)
	c.DecimalPtr("discount_rate", in.DiscountRate, validation.Rate)
	if in.ReferenceID == 0 {
		c.Add(fkField, "required", "is required")
	}
	return c.Err()
}

// validateUpdatePurchase runs the shared field rules for a purchase update.
func validateUpdatePurchase(in UpdatePurchaseInput, fkField string) error {
	var c validation.Collector
	c.OptDate("purchase_date", in.PurchaseDate)
	c.OptFK(fkField, in.ReferenceID, false)
	c.OptDecimal("price_excluding_tax", in.PriceExcludingTax, false, validation.Price)
	c.OptDecimal("tax_rate", in.TaxRate, false, validation.Rate)
	c.OptDecimal("discount_rate", in.DiscountRate, false, validation.Rate)
	c.OptString("supplier", in.Supplier, false, 200)
	return c.Err()
}

// orDefault applies a create-time rate default.
func orDefault(d *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if d == nil {
		return def
	}
	return *d
}

// PurchaseService implements the use-cases around ingredient purchases.
type PurchaseService struct {
	DB *gorm.DB
}

// Create validates in, checks the ingredient reference, and persists the
// purchase row in one transaction. A dangling ingredient_id fails with
// ErrIngredientNotFound.
func (s *PurchaseService) Create(ctx context.Context, in CreatePurchaseInput) (*domain.PurchaseHistory, error) {
	if err := validateCreatePurchase(in, "ingredient_id"); err != nil {
		return nil, err
	}

	var row *domain.PurchaseHistory
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := repo.Exists[domain.Ingredient](ctx, tx, in.ReferenceID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrIngredientNotFound
		}

		t := now()
		row = &domain.PurchaseHistory{
			PurchaseDate:      in.PurchaseDate,
			IngredientID:      in.ReferenceID,
			PriceExcludingTax: *in.PriceExcludingTax,
			TaxRate:           orDefault(in.TaxRate, defaultTaxRate),
			DiscountRate:      orDefault(in.DiscountRate, defaultDiscountRate),
			Supplier:          in.Supplier,
			CreatedAt:         t,
			UpdatedAt:         t,
		}
		return repo.Create(ctx, tx, row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Get returns a purchase row by id, or ErrNotFound.
func (s *PurchaseService) Get(ctx context.Context, id uint) (*domain.PurchaseHistory, error) {
	row, err := repo.Get[domain.PurchaseHistory](ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return row, err
}

// List returns a page of purchase rows in storage order.
func (s *PurchaseService) List(ctx context.Context, offset, limit int) ([]domain.PurchaseHistory, error) {
	return repo.List[domain.PurchaseHistory](ctx, s.DB, offset, limit)
}

// Update applies the present fields of in, re-resolving the ingredient
// reference when it changes, and refreshes updated_at.
func (s *PurchaseService) Update(ctx context.Context, id uint, in UpdatePurchaseInput) (*domain.PurchaseHistory, error) {
	if err := validateUpdatePurchase(in, "ingredient_id"); err != nil {
		return nil, err
	}

	var row *domain.PurchaseHistory
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		got, err := repo.Get[domain.PurchaseHistory](ctx, tx, id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if v, ok := in.ReferenceID.Value(); ok {
			exists, err := repo.Exists[domain.Ingredient](ctx, tx, v)
			if err != nil {
				return err
			}
			if !exists {
				return ErrIngredientNotFound
			}
			got.IngredientID = v
		}
		if v, ok := in.PurchaseDate.Value(); ok {
			got.PurchaseDate = v
		}
		if v, ok := in.PriceExcludingTax.Value(); ok {
			got.PriceExcludingTax = v
		}
		if v, ok := in.TaxRate.Value(); ok {
			got.TaxRate = v
		}
		if v, ok := in.DiscountRate.Value(); ok {
			got.DiscountRate = v
		}
		if in.Supplier.IsSet() {
			got.Supplier = ptrOf(in.Supplier)
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

// Delete removes a purchase row, or fails with ErrNotFound.
func (s *PurchaseService) Delete(ctx context.Context, id uint) error {
	err := repo.Delete[domain.PurchaseHistory](ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// PackagingPurchaseService implements the use-cases around packaging
// material purchases. It is symmetric to PurchaseService with the foreign
// key resolved against the packaging master instead of the ingredient one.
type PackagingPurchaseService struct {
	DB *gorm.DB
}

// Create validates in, checks the packaging material reference, and
// persists the purchase row in one transaction.
func (s *PackagingPurchaseService) Create(ctx context.Context, in CreatePurchaseInput) (*domain.PackagingPurchaseHistory, error) {
	if err := validateCreatePurchase(in, "packaging_material_id"); err != nil {
		return nil, err
	}

	var row *domain.PackagingPurchaseHistory
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := repo.Exists[domain.PackagingMaterial](ctx, tx, in.ReferenceID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrPackagingMaterialNotFound
		}

		t := now()
		row = &domain.PackagingPurchaseHistory{
			PurchaseDate:        in.PurchaseDate,
			PackagingMaterialID: in.ReferenceID,
			PriceExcludingTax:   *in.PriceExcludingTax,
			TaxRate:             orDefault(in.TaxRate, defaultTaxRate),
			DiscountRate:        orDefault(in.DiscountRate, defaultDiscountRate),
			Supplier:            in.Supplier,
			CreatedAt:           t,
			UpdatedAt:           t,
		}
		return repo.Create(ctx, tx, row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Get returns a packaging purchase row by id, or ErrNotFound.
func (s *PackagingPurchaseService) Get(ctx context.Context, id uint) (*domain.PackagingPurchaseHistory, error) {
	row, err := repo.Get[domain.PackagingPurchaseHistory](ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return row, err
}

// List returns a page of packaging purchase rows in storage order.
func (s *PackagingPurchaseService) List(ctx context.Context, offset, limit int) ([]domain.PackagingPurchaseHistory, error) {
	return repo.List[domain.PackagingPurchaseHistory](ctx, s.DB, offset, limit)
}

// Update applies the present fields of in, re-resolving the packaging
// material reference when it changes, and refreshes updated_at.
func (s *PackagingPurchaseService) Update(ctx context.Context, id uint, in UpdatePurchaseInput) (*domain.PackagingPurchaseHistory, error) {
	if err := validateUpdatePurchase(in, "packaging_material_id"); err != nil {
		return nil, err
	}

	var row *domain.PackagingPurchaseHistory
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		got, err := repo.Get[domain.PackagingPurchaseHistory](ctx, tx, id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if v, ok := in.ReferenceID.Value(); ok {
			exists, err := repo.Exists[domain.PackagingMaterial](ctx, tx, v)
			if err != nil {
				return err
			}
			if !exists {
				return ErrPackagingMaterialNotFound
			}
			got.PackagingMaterialID = v
		}
		if v, ok := in.PurchaseDate.Value(); ok {
			got.PurchaseDate = v
		}
		if v, ok := in.PriceExcludingTax.Value(); ok {
			got.PriceExcludingTax = v
		}
		if v, ok := in.TaxRate.Value(); ok {
			got.TaxRate = v
		}
		if v, ok := in.DiscountRate.Value(); ok {
			got.DiscountRate = v
		}
		if in.Supplier.IsSet() {
			got.Supplier = ptrOf(in.Supplier)
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

// Delete removes a packaging purchase row, or fails with ErrNotFound.
func (s *PackagingPurchaseService) Delete(ctx context.Context, id uint) error {
	err := repo.Delete[domain.PackagingPurchaseHistory](ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
