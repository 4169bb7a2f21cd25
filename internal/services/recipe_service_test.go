package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/go-recipe-backend/internal/domain"
)

func seedRecipeSvc(t *testing.T, svc *RecipeService) *domain.Recipe {
	t.Helper()
	row, err := svc.Create(context.Background(), CreateRecipeInput{
		RecipeName: "brioche",
		BatchSize:  12,
	})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	return row
}

func TestRecipe_Create_Defaults(t *testing.T) {
	db := newTestDB(t)
	svc := &RecipeService{DB: db}

	row := seedRecipeSvc(t, svc)
	if row.Version != 1 {
		t.Fatalf("expected version 1, got %d", row.Version)
	}
	if row.BatchUnit != "pieces" {
		t.Fatalf("expected batch_unit pieces, got %q", row.BatchUnit)
	}
	if row.Status != domain.RecipeStatusDraft {
		t.Fatalf("expected status draft, got %q", row.Status)
	}
	if row.CategoryID != nil {
		t.Fatal("category_id must stay nil when omitted")
	}
}

func TestRecipe_Create_ExplicitValuesWin(t *testing.T) {
	db := newTestDB(t)
	svc := &RecipeService{DB: db}

	version := 3
	unit := "loaves"
	status := domain.RecipeStatusActive
	row, err := svc.Create(context.Background(), CreateRecipeInput{
		RecipeName: "baguette",
		Version:    &version,
		BatchSize:  20,
		BatchUnit:  &unit,
		Status:     &status,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if row.Version != 3 || row.BatchUnit != "loaves" || row.Status != domain.RecipeStatusActive {
		t.Fatalf("explicit values must win over defaults: %+v", row)
	}
}

func TestRecipe_Create_UnknownCategory(t *testing.T) {
	db := newTestDB(t)
	svc := &RecipeService{DB: db}

	missing := uint(999)
	_, err := svc.Create(context.Background(), CreateRecipeInput{
		RecipeName: "brioche",
		CategoryID: &missing,
		BatchSize:  12,
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if !errors.Is(err, ErrBadReference) {
		t.Fatal("ErrCategoryNotFound must wrap ErrBadReference")
	}
}

func TestRecipe_Create_BadStatus(t *testing.T) {
	db := newTestDB(t)
	svc := &RecipeService{DB: db}

	bad := "published"
	_, err := svc.Create(context.Background(), CreateRecipeInput{
		RecipeName: "brioche",
		BatchSize:  12,
		Status:     &bad,
	})
	asValidation(t, err)
}

func TestRecipe_Create_ComplexityOutOfRange(t *testing.T) {
	db := newTestDB(t)
	svc := &RecipeService{DB: db}

	six := 6
	_, err := svc.Create(context.Background(), CreateRecipeInput{
		RecipeName: "brioche",
		BatchSize:  12,
		Complexity: &six,
	})
	verr := asValidation(t, err)
	if verr.Fields[0].Field != "complexity" {
		t.Fatalf("expected a violation on complexity, got %+v", verr.Fields)
	}
}

func TestRecipe_Update_DetachCategory(t *testing.T) {
	db := newTestDB(t)
	catSvc := &CategoryService{DB: db}
	svc := &RecipeService{DB: db}

	cat, err := catSvc.Create(context.Background(), CreateCategoryInput{Category: "bread"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	rec, err := svc.Create(context.Background(), CreateRecipeInput{
		RecipeName: "brioche",
		CategoryID: &cat.ID,
		BatchSize:  12,
	})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	upd, err := svc.Update(context.Background(), rec.ID, UpdateRecipeInput{
		CategoryID: domain.Null[uint](),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.CategoryID != nil {
		t.Fatal("explicit null must detach the category")
	}

	// The category is free to delete afterwards.
	if err := catSvc.Delete(context.Background(), cat.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
}

func TestRecipe_Update_UnknownCategory(t *testing.T) {
	db := newTestDB(t)
	svc := &RecipeService{DB: db}
	rec := seedRecipeSvc(t, svc)

	_, err := svc.Update(context.Background(), rec.ID, UpdateRecipeInput{
		CategoryID: domain.Some(uint(999)),
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestRecipe_Update_ComplexityRange(t *testing.T) {
	db := newTestDB(t)
	svc := &RecipeService{DB: db}
	rec := seedRecipeSvc(t, svc)

	_, err := svc.Update(context.Background(), rec.ID, UpdateRecipeInput{
		Complexity: domain.Some(6),
	})
	asValidation(t, err)

	upd, err := svc.Update(context.Background(), rec.ID, UpdateRecipeInput{
		Complexity: domain.Some(4),
		Effort:     domain.Some(2),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Complexity == nil || *upd.Complexity != 4 || upd.Effort == nil || *upd.Effort != 2 {
		t.Fatalf("unexpected ratings: %+v", upd)
	}

	// Ratings clear with explicit null.
	upd, err = svc.Update(context.Background(), rec.ID, UpdateRecipeInput{
		Complexity: domain.Null[int](),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Complexity != nil {
		t.Fatal("explicit null must clear complexity")
	}
	if upd.Effort == nil || *upd.Effort != 2 {
		t.Fatal("absent effort must stay untouched")
	}
}

func TestRecipe_Delete_CascadesDetails(t *testing.T) {
	db := newTestDB(t)
	svc := &RecipeService{DB: db}
	detSvc := &RecipeDetailService{DB: db}
	ing := seedIngredientSvc(t, &IngredientService{DB: db})

	rec := seedRecipeSvc(t, svc)
	amount := decimal.RequireFromString("250.5")
	for order := 1; order <= 3; order++ {
		if _, err := detSvc.Create(context.Background(), CreateRecipeDetailInput{
			RecipeID:     rec.ID,
			IngredientID: ing.ID,
			UsageAmount:  &amount,
			UsageUnit:    "g",
			DisplayOrder: order,
		}); err != nil {
			t.Fatalf("create detail: %v", err)
		}
	}

	if err := svc.Delete(context.Background(), rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), rec.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Listing details of the deleted recipe yields an empty sequence.
	rows, err := svc.ListDetails(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("list details: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no surviving details, got %d", len(rows))
	}
}

func TestRecipe_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := &RecipeService{DB: db}

	if err := svc.Delete(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecipe_ListDetails_Ordered(t *testing.T) {
	db := newTestDB(t)
	svc := &RecipeService{DB: db}
	detSvc := &RecipeDetailService{DB: db}
	ing := seedIngredientSvc(t, &IngredientService{DB: db})

	rec := seedRecipeSvc(t, svc)
	amount := decimal.RequireFromString("100")
	for _, order := range []int{3, 1, 2} {
		if _, err := detSvc.Create(context.Background(), CreateRecipeDetailInput{
			RecipeID:     rec.ID,
			IngredientID: ing.ID,
			UsageAmount:  &amount,
			UsageUnit:    "g",
			DisplayOrder: order,
		}); err != nil {
			t.Fatalf("create detail: %v", err)
		}
	}

	rows, err := svc.ListDetails(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("list details: %v", err)
	}
	for i, want := range []int{1, 2, 3} {
		if rows[i].DisplayOrder != want {
			t.Fatalf("row %d: expected order %d, got %d", i, want, rows[i].DisplayOrder)
		}
	}
}
