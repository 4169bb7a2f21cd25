// Ingredient HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bakehouse/go-recipe-backend/internal/services"
)

// CreateIngredient godoc
// @ID          createIngredient
// @Summary     Create an ingredient
// @Tags        Ingredients
// @Accept      json
// @Produce     json
// @Param       body body services.CreateIngredientInput true "Ingredient payload"
// @Success     201 {object} domain.Ingredient
// @Failure     400 {object} handlers.ErrorResponse "Validation failed"
// @Router      /ingredients [post]
func (h *Handlers) CreateIngredient(c *gin.Context) {
	var in services.CreateIngredientInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.Ingredients.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, row)
}

// ListIngredients godoc
// @ID          listIngredients
// @Summary     List ingredients
// @Tags        Ingredients
// @Produce     json
// @Param       skip  query int false "Offset (default 0)"
// @Param       limit query int false "Page size (default 100)"
// @Success     200 {array} domain.Ingredient
// @Router      /ingredients [get]
func (h *Handlers) ListIngredients(c *gin.Context) {
	offset, limit := pageParams(c)
	rows, err := h.svc.Ingredients.List(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

// GetIngredient godoc
// @ID          getIngredient
// @Summary     Get an ingredient by id
// @Tags        Ingredients
// @Produce     json
// @Param       id path int true "Ingredient ID"
// @Success     200 {object} domain.Ingredient
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /ingredients/{id} [get]
func (h *Handlers) GetIngredient(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	row, err := h.svc.Ingredients.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// UpdateIngredient godoc
// @ID          updateIngredient
// @Summary     Partially update an ingredient
// @Tags        Ingredients
// @Accept      json
// @Produce     json
// @Param       id   path int true "Ingredient ID"
// @Param       body body services.UpdateIngredientInput true "Fields to change"
// @Success     200 {object} domain.Ingredient
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /ingredients/{id} [put]
func (h *Handlers) UpdateIngredient(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	var in services.UpdateIngredientInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.Ingredients.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// DeleteIngredient godoc
// @ID          deleteIngredient
// @Summary     Delete an ingredient
// @Description Fails with 409 while recipe details or purchase history still
// @Description reference the ingredient.
// @Tags        Ingredients
// @Produce     json
// @Param       id path int true "Ingredient ID"
// @Success     200 {object} handlers.DeleteResponse
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Failure     409 {object} handlers.ErrorResponse "Still referenced"
// @Router      /ingredients/{id} [delete]
func (h *Handlers) DeleteIngredient(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	if err := h.svc.Ingredients.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Ingredient deleted successfully")
}
