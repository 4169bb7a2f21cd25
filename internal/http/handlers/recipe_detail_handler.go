// Recipe detail HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bakehouse/go-recipe-backend/internal/services"
)

// CreateRecipeDetail godoc
// @ID          createRecipeDetail
// @Summary     Add an ingredient line to a recipe
// @Tags        RecipeDetails
// @Accept      json
// @Produce     json
// @Param       body body services.CreateRecipeDetailInput true "Detail payload"
// @Success     201 {object} domain.RecipeDetail
// @Failure     400 {object} handlers.ErrorResponse "Validation failed"
// @Failure     422 {object} handlers.ErrorResponse "Unknown recipe or ingredient"
// @Router      /recipe-details [post]
func (h *Handlers) CreateRecipeDetail(c *gin.Context) {
	var in services.CreateRecipeDetailInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.RecipeDetails.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, row)
}

// ListRecipeDetails godoc
// @ID          listRecipeDetails
// @Summary     List recipe detail lines across all recipes
// @Tags        RecipeDetails
// @Produce     json
// @Param       skip  query int false "Offset (default 0)"
// @Param       limit query int false "Page size (default 100)"
// @Success     200 {array} domain.RecipeDetail
// @Router      /recipe-details [get]
func (h *Handlers) ListRecipeDetails(c *gin.Context) {
	offset, limit := pageParams(c)
	rows, err := h.svc.RecipeDetails.List(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

// ListRecipeDetailsByRecipe godoc
// @ID          listRecipeDetailsByRecipe
// @Summary     List the detail lines of one recipe
// @Tags        RecipeDetails
// @Produce     json
// @Param       recipe_id path int true "Recipe ID"
// @Success     200 {array} domain.RecipeDetail
// @Router      /recipe-details/recipe/{recipe_id} [get]
func (h *Handlers) ListRecipeDetailsByRecipe(c *gin.Context) {
	id, okID := namedIDParam(c, "recipe_id")
	if !okID {
		return
	}
	rows, err := h.svc.RecipeDetails.ListForRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

// GetRecipeDetail godoc
// @ID          getRecipeDetail
// @Summary     Get a recipe detail line by id
// @Tags        RecipeDetails
// @Produce     json
// @Param       id path int true "Detail ID"
// @Success     200 {object} domain.RecipeDetail
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /recipe-details/{id} [get]
func (h *Handlers) GetRecipeDetail(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	row, err := h.svc.RecipeDetails.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// UpdateRecipeDetail godoc
// @ID          updateRecipeDetail
// @Summary     Partially update a recipe detail line
// @Tags        RecipeDetails
// @Accept      json
// @Produce     json
// @Param       id   path int true "Detail ID"
// @Param       body body services.UpdateRecipeDetailInput true "Fields to change"
// @Success     200 {object} domain.RecipeDetail
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Failure     422 {object} handlers.ErrorResponse "Unknown recipe or ingredient"
// @Router      /recipe-details/{id} [put]
func (h *Handlers) UpdateRecipeDetail(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	var in services.UpdateRecipeDetailInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.RecipeDetails.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// DeleteRecipeDetail godoc
// @ID          deleteRecipeDetail
// @Summary     Delete a recipe detail line
// @Tags        RecipeDetails
// @Produce     json
// @Param       id path int true "Detail ID"
// @Success     200 {object} handlers.DeleteResponse
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /recipe-details/{id} [delete]
func (h *Handlers) DeleteRecipeDetail(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	if err := h.svc.RecipeDetails.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Recipe detail deleted successfully")
}
