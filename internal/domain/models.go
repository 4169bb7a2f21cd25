// Package domain defines the persistence models for the recipe manager:
// ingredient and packaging masters, purchase histories, recipes with their
// ordered ingredient compositions, and the finished products built from
// them. These types are mapped with GORM and form the core data layer of
// the application.
//
// Monetary and quantity columns use shopspring/decimal so that values keep
// exact scale through storage round-trips; float64 is never used for money.
// CreatedAt/UpdatedAt are written exclusively by the repo layer.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Recipe lifecycle states. The enum is enforced at validation time; no
// state machine constrains transitions between them.
const (
	RecipeStatusDraft    = "draft"
	RecipeStatusActive   = "active"
	RecipeStatusArchived = "archived"
)

// Product lifecycle states.
const (
	ProductStatusUnderReview  = "under_review"
	ProductStatusTrial        = "trial"
	ProductStatusSelling      = "selling"
	ProductStatusDiscontinued = "discontinued"
)

// Egg part designators usable on a recipe line.
const (
	EggTypeWhole = "whole_egg"
	EggTypeWhite = "egg_white"
	EggTypeYolk  = "egg_yolk"
)

// ValidRecipeStatus reports whether s is a member of the recipe status enum.
func ValidRecipeStatus(s string) bool {
	switch s {
	case RecipeStatusDraft, RecipeStatusActive, RecipeStatusArchived:
		return true
	}
	return false
}

// ValidProductStatus reports whether s is a member of the product status enum.
func ValidProductStatus(s string) bool {
	switch s {
	case ProductStatusUnderReview, ProductStatusTrial, ProductStatusSelling, ProductStatusDiscontinued:
		return true
	}
	return false
}

// ValidEggType reports whether s is a member of the egg type enum.
func ValidEggType(s string) bool {
	switch s {
	case EggTypeWhole, EggTypeWhite, EggTypeYolk:
		return true
	}
	return false
}

// RecipeCategory groups recipes into a category and optional sub-category
// (e.g. "Cakes" / "Sponge"). Categories are referenced by recipes, never
// owned by them: deleting a category that recipes still point at is
// rejected by the service layer.
type RecipeCategory struct {
	ID          uint      `json:"category_id"  gorm:"primaryKey"`
	Category    string    `json:"category"     gorm:"type:varchar(100);not null"`
	SubCategory *string   `json:"sub_category" gorm:"type:varchar(100)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for RecipeCategory.
func (RecipeCategory) TableName() string { return "recipe_categories" }

// Ingredient is a raw-material master record. ProductName is the name on
// the supplier's label, CommonName an optional colloquial alias, and
// RecipeDisplayName the name printed on recipe sheets. Quantity and
// QuantityUnit describe one purchasable unit (e.g. a 1000 g bag).
type Ingredient struct {
	ID                uint      `json:"ingredient_id"       gorm:"primaryKey"`
	ProductName       string    `json:"product_name"        gorm:"type:varchar(200);not null"`
	CommonName        *string   `json:"common_name"         gorm:"type:varchar(200)"`
	RecipeDisplayName string    `json:"recipe_display_name" gorm:"type:varchar(200);not null"`
	Quantity          int       `json:"quantity"            gorm:"not null"`
	QuantityUnit      string    `json:"quantity_unit"       gorm:"type:varchar(50);not null"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName returns the database table name for Ingredient.
func (Ingredient) TableName() string { return "ingredients" }

// PackagingMaterial is a packaging master record. It carries the same shape
// as Ingredient but lives in a distinct identity space: packaging IDs and
// ingredient IDs are never interchangeable.
type PackagingMaterial struct {
	ID                uint      `json:"packaging_material_id" gorm:"primaryKey"`
	ProductName       string    `json:"product_name"          gorm:"type:varchar(200);not null"`
	CommonName        *string   `json:"common_name"           gorm:"type:varchar(200)"`
	RecipeDisplayName string    `json:"recipe_display_name"   gorm:"type:varchar(200);not null"`
	Quantity          int       `json:"quantity"              gorm:"not null"`
	QuantityUnit      string    `json:"quantity_unit"         gorm:"type:varchar(50);not null"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName returns the database table name for PackagingMaterial.
func (PackagingMaterial) TableName() string { return "packaging_materials" }

// PurchaseHistory records one purchase of an ingredient: net price, the
// tax and discount rates applicable at purchase time, and the supplier.
//
// Fields:
//   - PurchaseDate: ISO calendar date (yyyy-mm-dd), no time component.
//   - PriceExcludingTax: decimal(10,2), >= 0.
//   - TaxRate / DiscountRate: decimal(5,4) in [0,1]; tax defaults to 0.10.
type PurchaseHistory struct {
	ID                uint            `json:"id"                  gorm:"primaryKey"`
	PurchaseDate      string          `json:"purchase_date"       gorm:"type:date;not null"`
	IngredientID      uint            `json:"ingredient_id"       gorm:"not null;index"`
	PriceExcludingTax decimal.Decimal `json:"price_excluding_tax" gorm:"type:decimal(10,2);not null"`
	TaxRate           decimal.Decimal `json:"tax_rate"            gorm:"type:decimal(5,4);not null"`
	DiscountRate      decimal.Decimal `json:"discount_rate"       gorm:"type:decimal(5,4);not null"`
	Supplier          *string         `json:"supplier"            gorm:"type:varchar(200)"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	Ingredient *Ingredient `json:"-" gorm:"foreignKey:IngredientID"`
}

// TableName returns the database table name for PurchaseHistory.
func (PurchaseHistory) TableName() string { return "purchase_history" }

// PackagingPurchaseHistory mirrors PurchaseHistory for packaging materials.
type PackagingPurchaseHistory struct {
	ID                  uint            `json:"id"                    gorm:"primaryKey"`
	PurchaseDate        string          `json:"purchase_date"         gorm:"type:date;not null"`
	PackagingMaterialID uint            `json:"packaging_material_id" gorm:"not null;index"`
	PriceExcludingTax   decimal.Decimal `json:"price_excluding_tax"   gorm:"type:decimal(10,2);not null"`
	TaxRate             decimal.Decimal `json:"tax_rate"              gorm:"type:decimal(5,4);not null"`
	DiscountRate        decimal.Decimal `json:"discount_rate"         gorm:"type:decimal(5,4);not null"`
	Supplier            *string         `json:"supplier"              gorm:"type:varchar(200)"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`

	PackagingMaterial *PackagingMaterial `json:"-" gorm:"foreignKey:PackagingMaterialID"`
}

// TableName returns the database table name for PackagingPurchaseHistory.
func (PackagingPurchaseHistory) TableName() string { return "packaging_purchase_history" }

// Recipe is the owning aggregate of its RecipeDetail rows: deleting a
// recipe removes its detail rows in the same transaction. Category,
// ingredients and packaging are referenced, not owned.
//
// Complexity and Effort are optional 1..5 ratings. BatchSize/BatchUnit
// describe one production batch ("pieces" by default). Yield figures live
// on Product, not here.
type Recipe struct {
	ID         uint      `json:"recipe_id"   gorm:"primaryKey"`
	RecipeName string    `json:"recipe_name" gorm:"type:varchar(200);not null"`
	CategoryID *uint     `json:"category_id" gorm:"index"`
	Version    int       `json:"version"     gorm:"not null;default:1"`
	Complexity *int      `json:"complexity"`
	Effort     *int      `json:"effort"`
	BatchSize  int       `json:"batch_size"  gorm:"not null"`
	BatchUnit  string    `json:"batch_unit"  gorm:"type:varchar(50);not null;default:'pieces'"`
	Status     string    `json:"status"      gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Category *RecipeCategory `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName returns the database table name for Recipe.
func (Recipe) TableName() string { return "recipes" }

// RecipeDetail is one line of a recipe's bill of materials: which
// ingredient, how much of it, and where the line sits on the recipe sheet
// (DisplayOrder, ascending). EggType optionally marks the line as using a
// specific egg part so sheet rendering can substitute master egg weights.
type RecipeDetail struct {
	ID           uint            `json:"id"            gorm:"primaryKey"`
	RecipeID     uint            `json:"recipe_id"     gorm:"not null;index"`
	IngredientID uint            `json:"ingredient_id" gorm:"not null;index"`
	UsageAmount  decimal.Decimal `json:"usage_amount"  gorm:"type:decimal(10,3);not null"`
	UsageUnit    string          `json:"usage_unit"    gorm:"type:varchar(50);not null"`
	DisplayOrder int             `json:"display_order" gorm:"not null"`
	EggType      *string         `json:"egg_type"      gorm:"type:varchar(20)"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	Recipe     *Recipe     `json:"-" gorm:"foreignKey:RecipeID"`
	Ingredient *Ingredient `json:"-" gorm:"foreignKey:IngredientID"`
}

// TableName returns the database table name for RecipeDetail.
func (RecipeDetail) TableName() string { return "recipe_details" }

// Product is a sellable item derived from a recipe: how many pieces go in
// a package, which packaging material wraps it, how many packages one
// batch yields, and the selling price (decimal(10,2), optional while the
// product is still under review).
type Product struct {
	ID                  uint             `json:"product_id"            gorm:"primaryKey"`
	ProductName         string           `json:"product_name"          gorm:"type:varchar(200);not null"`
	RecipeID            *uint            `json:"recipe_id"             gorm:"index"`
	PiecesPerPackage    int              `json:"pieces_per_package"    gorm:"not null"`
	PackagingMaterialID *uint            `json:"packaging_material_id" gorm:"index"`
	ShelfLifeDays       *int             `json:"shelf_life_days"`
	YieldPerBatch       int              `json:"yield_per_batch"       gorm:"not null"`
	SellingPrice        *decimal.Decimal `json:"selling_price"         gorm:"type:decimal(10,2)"`
	Status              string           `json:"status"                gorm:"type:varchar(20);not null;default:'under_review'"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`

	Recipe            *Recipe            `json:"-" gorm:"foreignKey:RecipeID"`
	PackagingMaterial *PackagingMaterial `json:"-" gorm:"foreignKey:PackagingMaterialID"`
}

// TableName returns the database table name for Product.
func (Product) TableName() string { return "products" }

// EggMaster holds the reference weights (grams, decimal(5,2)) used when a
// recipe line is expressed in egg parts rather than grams. A single row is
// typical; the table is plain CRUD like everything else.
type EggMaster struct {
	ID             uint            `json:"egg_id"           gorm:"primaryKey"`
	WholeEggWeight decimal.Decimal `json:"whole_egg_weight" gorm:"type:decimal(5,2);not null"`
	EggWhiteWeight decimal.Decimal `json:"egg_white_weight" gorm:"type:decimal(5,2);not null"`
	EggYolkWeight  decimal.Decimal `json:"egg_yolk_weight"  gorm:"type:decimal(5,2);not null"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TableName returns the database table name for EggMaster.
func (EggMaster) TableName() string { return "egg_master" }

// SQLite gives decimal columns NUMERIC affinity, which strips trailing zeros
// in storage: 2.000 comes back as 2. Each model with decimal columns rescales
// them to the declared column scale after a read so loaded rows render with
// the exact number of fractional digits the column defines.

// rescaled pads d to the given number of decimal places. Adding a zero with
// the target exponent rescales without changing the value; a d that already
// carries more places keeps them.
func rescaled(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Add(decimal.New(0, -places))
}

func (p *PurchaseHistory) AfterFind(*gorm.DB) error {
	p.PriceExcludingTax = rescaled(p.PriceExcludingTax, 2)
	p.TaxRate = rescaled(p.TaxRate, 4)
	p.DiscountRate = rescaled(p.DiscountRate, 4)
	return nil
}

func (p *PackagingPurchaseHistory) AfterFind(*gorm.DB) error {
	p.PriceExcludingTax = rescaled(p.PriceExcludingTax, 2)
	p.TaxRate = rescaled(p.TaxRate, 4)
	p.DiscountRate = rescaled(p.DiscountRate, 4)
	return nil
}

func (d *RecipeDetail) AfterFind(*gorm.DB) error {
	d.UsageAmount = rescaled(d.UsageAmount, 3)
	return nil
}

func (p *Product) AfterFind(*gorm.DB) error {
	if p.SellingPrice != nil {
		sp := rescaled(*p.SellingPrice, 2)
		p.SellingPrice = &sp
	}
	return nil
}

func (e *EggMaster) AfterFind(*gorm.DB) error {
	e.WholeEggWeight = rescaled(e.WholeEggWeight, 2)
	e.EggWhiteWeight = rescaled(e.EggWhiteWeight, 2)
	e.EggYolkWeight = rescaled(e.EggYolkWeight, 2)
	return nil
}
