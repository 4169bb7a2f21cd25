package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/go-recipe-backend/internal/domain"
)

func seedPackagingSvc(t *testing.T, svc *PackagingMaterialService) *domain.PackagingMaterial {
	t.Helper()
	row, err := svc.Create(context.Background(), CreatePackagingMaterialInput{
		ProductName:       "Kraft Box 100pc",
		RecipeDisplayName: "kraft box",
		Quantity:          100,
		QuantityUnit:      "pieces",
	})
	if err != nil {
		t.Fatalf("create packaging material: %v", err)
	}
	return row
}

func TestPackaging_CreateAndUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := &PackagingMaterialService{DB: db}
	row := seedPackagingSvc(t, svc)

	upd, err := svc.Update(context.Background(), row.ID, UpdatePackagingMaterialInput{
		CommonName: domain.Some("box"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.CommonName == nil || *upd.CommonName != "box" {
		t.Fatalf("unexpected common_name: %+v", upd.CommonName)
	}
}

func TestPackaging_Delete_RejectedWhileInProduct(t *testing.T) {
	db := newTestDB(t)
	pkgSvc := &PackagingMaterialService{DB: db}
	prodSvc := &ProductService{DB: db}

	pkg := seedPackagingSvc(t, pkgSvc)
	if _, err := prodSvc.Create(context.Background(), CreateProductInput{
		ProductName:         "Brioche 6-pack",
		PiecesPerPackage:    6,
		PackagingMaterialID: &pkg.ID,
		YieldPerBatch:       4,
	}); err != nil {
		t.Fatalf("create product: %v", err)
	}

	if err := pkgSvc.Delete(context.Background(), pkg.ID); !errors.Is(err, ErrInUse) {
		t.Fatalf("expected ErrInUse, got %v", err)
	}
}

func TestPackaging_Delete_RejectedWhileInPurchaseHistory(t *testing.T) {
	db := newTestDB(t)
	pkgSvc := &PackagingMaterialService{DB: db}
	purSvc := &PackagingPurchaseService{DB: db}

	pkg := seedPackagingSvc(t, pkgSvc)
	price := decimal.RequireFromString("45.00")
	if _, err := purSvc.Create(context.Background(), CreatePurchaseInput{
		PurchaseDate:      "2025-03-14",
		ReferenceID:       pkg.ID,
		PriceExcludingTax: &price,
	}); err != nil {
		t.Fatalf("create purchase: %v", err)
	}

	if err := pkgSvc.Delete(context.Background(), pkg.ID); !errors.Is(err, ErrInUse) {
		t.Fatalf("expected ErrInUse, got %v", err)
	}
}

func TestPackaging_Delete_Unreferenced(t *testing.T) {
	db := newTestDB(t)
	svc := &PackagingMaterialService{DB: db}
	row := seedPackagingSvc(t, svc)

	if err := svc.Delete(context.Background(), row.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), row.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
