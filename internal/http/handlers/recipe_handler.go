// Recipe HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bakehouse/go-recipe-backend/internal/services"
)

// CreateRecipe godoc
// @ID          createRecipe
// @Summary     Create a recipe
// @Description New recipes start at version 1 in draft status with a
// @Description batch unit of pieces unless the payload says otherwise.
// @Tags        Recipes
// @Accept      json
// @Produce     json
// @Param       body body services.CreateRecipeInput true "Recipe payload"
// @Success     201 {object} domain.Recipe
// @Failure     400 {object} handlers.ErrorResponse "Validation failed"
// @Failure     422 {object} handlers.ErrorResponse "Unknown category"
// @Router      /recipes [post]
func (h *Handlers) CreateRecipe(c *gin.Context) {
	var in services.CreateRecipeInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.Recipes.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, row)
}

// ListRecipes godoc
// @ID          listRecipes
// @Summary     List recipes
// @Tags        Recipes
// @Produce     json
// @Param       skip  query int false "Offset (default 0)"
// @Param       limit query int false "Page size (default 100)"
// @Success     200 {array} domain.Recipe
// @Router      /recipes [get]
func (h *Handlers) ListRecipes(c *gin.Context) {
	offset, limit := pageParams(c)
	rows, err := h.svc.Recipes.List(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

// GetRecipe godoc
// @ID          getRecipe
// @Summary     Get a recipe by id
// @Tags        Recipes
// @Produce     json
// @Param       id path int true "Recipe ID"
// @Success     200 {object} domain.Recipe
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /recipes/{id} [get]
func (h *Handlers) GetRecipe(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	row, err := h.svc.Recipes.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// UpdateRecipe godoc
// @ID          updateRecipe
// @Summary     Partially update a recipe
// @Tags        Recipes
// @Accept      json
// @Produce     json
// @Param       id   path int true "Recipe ID"
// @Param       body body services.UpdateRecipeInput true "Fields to change"
// @Success     200 {object} domain.Recipe
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Failure     422 {object} handlers.ErrorResponse "Unknown category"
// @Router      /recipes/{id} [put]
func (h *Handlers) UpdateRecipe(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	var in services.UpdateRecipeInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.Recipes.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// DeleteRecipe godoc
// @ID          deleteRecipe
// @Summary     Delete a recipe and its detail lines
// @Description Removes the recipe together with every recipe detail that
// @Description belongs to it, atomically.
// @Tags        Recipes
// @Produce     json
// @Param       id path int true "Recipe ID"
// @Success     200 {object} handlers.DeleteResponse
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /recipes/{id} [delete]
func (h *Handlers) DeleteRecipe(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	if err := h.svc.Recipes.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Recipe and its details deleted successfully")
}

// ListRecipeDetailsForRecipe godoc
// @ID          listRecipeDetailsForRecipe
// @Summary     List the detail lines of one recipe
// @Description Returns the recipe's ingredient lines ordered by
// @Description display_order. An unknown recipe id yields an empty list.
// @Tags        Recipes
// @Produce     json
// @Param       id path int true "Recipe ID"
// @Success     200 {array} domain.RecipeDetail
// @Router      /recipes/{id}/details [get]
func (h *Handlers) ListRecipeDetailsForRecipe(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	rows, err := h.svc.Recipes.ListDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}
