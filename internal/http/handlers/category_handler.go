// Recipe category HTTP handlers.
//
// Endpoints:
//   - POST   /recipe-categories
//   - GET    /recipe-categories
//   - GET    /recipe-categories/{id}
//   - PUT    /recipe-categories/{id}   (partial update)
//   - DELETE /recipe-categories/{id}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bakehouse/go-recipe-backend/internal/services"
)

// CreateCategory godoc
// @ID          createCategory
// @Summary     Create a recipe category
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       body body services.CreateCategoryInput true "Category payload"
// @Success     201 {object} domain.RecipeCategory
// @Failure     400 {object} handlers.ErrorResponse "Validation failed"
// @Router      /recipe-categories [post]
func (h *Handlers) CreateCategory(c *gin.Context) {
	var in services.CreateCategoryInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.Categories.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, row)
}

// ListCategories godoc
// @ID          listCategories
// @Summary     List recipe categories
// @Tags        Categories
// @Produce     json
// @Param       skip  query int false "Offset (default 0)"
// @Param       limit query int false "Page size (default 100)"
// @Success     200 {array} domain.RecipeCategory
// @Router      /recipe-categories [get]
func (h *Handlers) ListCategories(c *gin.Context) {
	offset, limit := pageParams(c)
	rows, err := h.svc.Categories.List(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

// GetCategory godoc
// @ID          getCategory
// @Summary     Get a recipe category by id
// @Tags        Categories
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {object} domain.RecipeCategory
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /recipe-categories/{id} [get]
func (h *Handlers) GetCategory(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	row, err := h.svc.Categories.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// UpdateCategory godoc
// @ID          updateCategory
// @Summary     Partially update a recipe category
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       id   path int true "Category ID"
// @Param       body body services.UpdateCategoryInput true "Fields to change"
// @Success     200 {object} domain.RecipeCategory
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /recipe-categories/{id} [put]
func (h *Handlers) UpdateCategory(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	var in services.UpdateCategoryInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.Categories.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// DeleteCategory godoc
// @ID          deleteCategory
// @Summary     Delete a recipe category
// @Description Fails with 409 while recipes still reference the category.
// @Tags        Categories
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {object} handlers.DeleteResponse
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Failure     409 {object} handlers.ErrorResponse "Still referenced"
// @Router      /recipe-categories/{id} [delete]
func (h *Handlers) DeleteCategory(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	if err := h.svc.Categories.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Recipe category deleted successfully")
}
