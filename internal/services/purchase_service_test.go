package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/go-recipe-backend/internal/domain"
)

func TestPurchase_Create_AppliesRateDefaults(t *testing.T) {
	db := newTestDB(t)
	ing := seedIngredientSvc(t, &IngredientService{DB: db})
	svc := &PurchaseService{DB: db}

	price := decimal.RequireFromString("12.34")
	row, err := svc.Create(context.Background(), CreatePurchaseInput{
		PurchaseDate:      "2025-03-14",
		ReferenceID:       ing.ID,
		PriceExcludingTax: &price,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if row.TaxRate.String() != "0.10" {
		t.Fatalf("expected default tax rate 0.10, got %s", row.TaxRate)
	}
	if row.DiscountRate.String() != "0.00" {
		t.Fatalf("expected default discount rate 0.00, got %s", row.DiscountRate)
	}
	if row.Supplier != nil {
		t.Fatal("supplier must stay nil when omitted")
	}
}

func TestPurchase_DecimalScaleSurvivesReload(t *testing.T) {
	db := newTestDB(t)
	ing := seedIngredientSvc(t, &IngredientService{DB: db})
	svc := &PurchaseService{DB: db}

	price := decimal.RequireFromString("12.34")
	rate := decimal.RequireFromString("0.0800")
	row, err := svc.Create(context.Background(), CreatePurchaseInput{
		PurchaseDate:      "2025-03-14",
		ReferenceID:       ing.ID,
		PriceExcludingTax: &price,
		TaxRate:           &rate,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Assert against a reload, not the in-memory row: the storage engine
	// drops trailing zeros and reads restore the column scale.
	got, err := svc.Get(context.Background(), row.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PriceExcludingTax.String() != "12.34" {
		t.Fatalf("expected 12.34, got %s", got.PriceExcludingTax)
	}
	if got.TaxRate.String() != "0.0800" {
		t.Fatalf("expected 0.0800, got %s", got.TaxRate)
	}
	if got.DiscountRate.String() != "0.0000" {
		t.Fatalf("expected 0.0000, got %s", got.DiscountRate)
	}
}

func TestPurchase_Create_RejectsExcessScale(t *testing.T) {
	db := newTestDB(t)
	ing := seedIngredientSvc(t, &IngredientService{DB: db})
	svc := &PurchaseService{DB: db}

	price := decimal.RequireFromString("12.345")
	_, err := svc.Create(context.Background(), CreatePurchaseInput{
		PurchaseDate:      "2025-03-14",
		ReferenceID:       ing.ID,
		PriceExcludingTax: &price,
	})
	verr := asValidation(t, err)
	if verr.Fields[0].Field != "price_excluding_tax" || verr.Fields[0].Rule != "scale" {
		t.Fatalf("expected a scale violation on price_excluding_tax, got %+v", verr.Fields)
	}
}

func TestPurchase_Create_UnknownIngredient(t *testing.T) {
	db := newTestDB(t)
	svc := &PurchaseService{DB: db}

	price := decimal.RequireFromString("12.34")
	_, err := svc.Create(context.Background(), CreatePurchaseInput{
		PurchaseDate:      "2025-03-14",
		ReferenceID:       999,
		PriceExcludingTax: &price,
	})
	if !errors.Is(err, ErrIngredientNotFound) {
		t.Fatalf("expected ErrIngredientNotFound, got %v", err)
	}
	if !errors.Is(err, ErrBadReference) {
		t.Fatal("ErrIngredientNotFound must wrap ErrBadReference")
	}

	// Nothing persisted.
	rows, err := svc.List(context.Background(), 0, 100)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestPurchase_Create_BadDate(t *testing.T) {
	db := newTestDB(t)
	ing := seedIngredientSvc(t, &IngredientService{DB: db})
	svc := &PurchaseService{DB: db}

	price := decimal.RequireFromString("12.34")
	_, err := svc.Create(context.Background(), CreatePurchaseInput{
		PurchaseDate:      "14/03/2025",
		ReferenceID:       ing.ID,
		PriceExcludingTax: &price,
	})
	asValidation(t, err)
}

func TestPurchase_Create_MissingReference(t *testing.T) {
	db := newTestDB(t)
	svc := &PurchaseService{DB: db}

	price := decimal.RequireFromString("12.34")
	_, err := svc.Create(context.Background(), CreatePurchaseInput{
		PurchaseDate:      "2025-03-14",
		PriceExcludingTax: &price,
	})
	verr := asValidation(t, err)
	if verr.Fields[0].Field != "ingredient_id" {
		t.Fatalf("expected a violation on ingredient_id, got %+v", verr.Fields)
	}
}

func TestPurchase_Update_ChangedReferenceChecked(t *testing.T) {
	db := newTestDB(t)
	ing := seedIngredientSvc(t, &IngredientService{DB: db})
	svc := &PurchaseService{DB: db}

	price := decimal.RequireFromString("12.34")
	row, err := svc.Create(context.Background(), CreatePurchaseInput{
		PurchaseDate:      "2025-03-14",
		ReferenceID:       ing.ID,
		PriceExcludingTax: &price,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(context.Background(), row.ID, UpdatePurchaseInput{
		ReferenceID: domain.Some(uint(999)),
	})
	if !errors.Is(err, ErrIngredientNotFound) {
		t.Fatalf("expected ErrIngredientNotFound, got %v", err)
	}

	// The stored row is untouched after the failed update.
	got, err := svc.Get(context.Background(), row.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.IngredientID != ing.ID {
		t.Fatalf("ingredient_id must be unchanged, got %d", got.IngredientID)
	}
}

func TestPurchase_Update_Fields(t *testing.T) {
	db := newTestDB(t)
	ing := seedIngredientSvc(t, &IngredientService{DB: db})
	svc := &PurchaseService{DB: db}

	price := decimal.RequireFromString("12.34")
	row, err := svc.Create(context.Background(), CreatePurchaseInput{
		PurchaseDate:      "2025-03-14",
		ReferenceID:       ing.ID,
		PriceExcludingTax: &price,
		Supplier:          strPtr("Mill & Co"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newPrice := decimal.RequireFromString("13.50")
	upd, err := svc.Update(context.Background(), row.ID, UpdatePurchaseInput{
		PriceExcludingTax: domain.Some(newPrice),
		Supplier:          domain.Null[string](),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.PriceExcludingTax.String() != "13.50" {
		t.Fatalf("expected 13.50, got %s", upd.PriceExcludingTax)
	}
	if upd.Supplier != nil {
		t.Fatal("explicit null must clear supplier")
	}
	if upd.PurchaseDate != "2025-03-14" {
		t.Fatal("absent purchase_date must stay untouched")
	}
}

func TestPackagingPurchase_Create_UnknownMaterial(t *testing.T) {
	db := newTestDB(t)
	svc := &PackagingPurchaseService{DB: db}

	price := decimal.RequireFromString("45.00")
	_, err := svc.Create(context.Background(), CreatePurchaseInput{
		PurchaseDate:      "2025-03-14",
		ReferenceID:       999,
		PriceExcludingTax: &price,
	})
	if !errors.Is(err, ErrPackagingMaterialNotFound) {
		t.Fatalf("expected ErrPackagingMaterialNotFound, got %v", err)
	}
}

func TestPackagingPurchase_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	pkg := seedPackagingSvc(t, &PackagingMaterialService{DB: db})
	svc := &PackagingPurchaseService{DB: db}

	price := decimal.RequireFromString("45.00")
	rate := decimal.RequireFromString("0.1000")
	row, err := svc.Create(context.Background(), CreatePurchaseInput{
		PurchaseDate:      "2025-03-14",
		ReferenceID:       pkg.ID,
		PriceExcludingTax: &price,
		TaxRate:           &rate,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(context.Background(), row.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PackagingMaterialID != pkg.ID {
		t.Fatalf("expected material %d, got %d", pkg.ID, got.PackagingMaterialID)
	}

	if err := svc.Delete(context.Background(), row.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), row.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
