package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/go-recipe-backend/internal/domain"
)

func TestEggMaster_Create_Defaults(t *testing.T) {
	db := newTestDB(t)
	svc := &EggMasterService{DB: db}

	row, err := svc.Create(context.Background(), CreateEggMasterInput{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if row.WholeEggWeight.String() != "50.00" {
		t.Fatalf("expected whole 50.00, got %s", row.WholeEggWeight)
	}
	if row.EggWhiteWeight.String() != "30.00" {
		t.Fatalf("expected white 30.00, got %s", row.EggWhiteWeight)
	}
	if row.EggYolkWeight.String() != "20.00" {
		t.Fatalf("expected yolk 20.00, got %s", row.EggYolkWeight)
	}
}

func TestEggMaster_Create_ExplicitWeights(t *testing.T) {
	db := newTestDB(t)
	svc := &EggMasterService{DB: db}

	whole := decimal.RequireFromString("62.50")
	row, err := svc.Create(context.Background(), CreateEggMasterInput{
		WholeEggWeight: &whole,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if row.WholeEggWeight.String() != "62.50" {
		t.Fatalf("expected 62.50, got %s", row.WholeEggWeight)
	}
	if row.EggWhiteWeight.String() != "30.00" {
		t.Fatal("omitted weights must still default")
	}
}

func TestEggMaster_Create_BadWeight(t *testing.T) {
	db := newTestDB(t)
	svc := &EggMasterService{DB: db}

	over := decimal.RequireFromString("1000.00")
	_, err := svc.Create(context.Background(), CreateEggMasterInput{
		EggYolkWeight: &over,
	})
	asValidation(t, err)
}

func TestEggMaster_Update(t *testing.T) {
	db := newTestDB(t)
	svc := &EggMasterService{DB: db}

	row, err := svc.Create(context.Background(), CreateEggMasterInput{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	upd, err := svc.Update(context.Background(), row.ID, UpdateEggMasterInput{
		WholeEggWeight: domain.Some(decimal.RequireFromString("55.25")),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.WholeEggWeight.String() != "55.25" {
		t.Fatalf("expected 55.25, got %s", upd.WholeEggWeight)
	}
	if upd.EggWhiteWeight.String() != "30.00" {
		t.Fatal("absent weights must stay untouched")
	}

	// The weight columns are not-null; explicit null is rejected.
	if _, err := svc.Update(context.Background(), row.ID, UpdateEggMasterInput{
		EggYolkWeight: domain.Null[decimal.Decimal](),
	}); err == nil {
		t.Fatal("null weight must fail validation")
	}
}

func TestEggMaster_GetListDelete(t *testing.T) {
	db := newTestDB(t)
	svc := &EggMasterService{DB: db}

	row, err := svc.Create(context.Background(), CreateEggMasterInput{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(context.Background(), row.ID); err != nil {
		t.Fatalf("get: %v", err)
	}
	rows, err := svc.List(context.Background(), 0, 100)
	if err != nil || len(rows) != 1 {
		t.Fatalf("expected 1 row, got (%d, %v)", len(rows), err)
	}

	if err := svc.Delete(context.Background(), row.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), row.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
