// Package handlers – shared handler state and request parsing helpers.
//
// Handlers in this package are transport-thin: they bind input, delegate
// to the service layer, and translate errors through respondError. No
// business rules live here.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bakehouse/go-recipe-backend/internal/services"
	"github.com/bakehouse/go-recipe-backend/internal/utils"
)

// Services bundles the per-entity services the handlers delegate to.
type Services struct {
	Categories         *services.CategoryService
	Ingredients        *services.IngredientService
	PackagingMaterials *services.PackagingMaterialService
	Purchases          *services.PurchaseService
	PackagingPurchases *services.PackagingPurchaseService
	Recipes            *services.RecipeService
	RecipeDetails      *services.RecipeDetailService
	Products           *services.ProductService
	EggMaster          *services.EggMasterService
}

// Handlers carries the dependencies of every HTTP endpoint.
type Handlers struct {
	svc Services
}

// New constructs the handler set from its service dependencies.
func New(svc Services) *Handlers {
	return &Handlers{svc: svc}
}

// idParam parses the :id path segment as an unsigned integer. On failure
// it writes a 400 and returns false; handlers must return immediately.
func idParam(c *gin.Context) (uint, bool) {
	return namedIDParam(c, "id")
}

// namedIDParam is idParam for routes whose id segment carries another name.
func namedIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// pageParams reads the skip/limit query parameters, applying the default
// page (skip 0, limit 100) and clamping negatives.
func pageParams(c *gin.Context) (offset, limit int) {
	offset = utils.AtoiDefault(c.Query("skip"), 0)
	limit = utils.AtoiDefault(c.Query("limit"), utils.DefaultPageLimit)
	return utils.NormalizePage(offset, limit)
}

// bindJSON binds the request body into dst, writing a 400 on malformed
// JSON. Field rules are enforced by the validation layer, not here.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return false
	}
	return true
}
