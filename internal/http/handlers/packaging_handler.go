// Packaging material HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bakehouse/go-recipe-backend/internal/services"
)

// CreatePackagingMaterial godoc
// @ID          createPackagingMaterial
// @Summary     Create a packaging material
// @Tags        Packaging
// @Accept      json
// @Produce     json
// @Param       body body services.CreatePackagingMaterialInput true "Packaging material payload"
// @Success     201 {object} domain.PackagingMaterial
// @Failure     400 {object} handlers.ErrorResponse "Validation failed"
// @Router      /packaging-materials [post]
func (h *Handlers) CreatePackagingMaterial(c *gin.Context) {
	var in services.CreatePackagingMaterialInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.PackagingMaterials.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, row)
}

// ListPackagingMaterials godoc
// @ID          listPackagingMaterials
// @Summary     List packaging materials
// @Tags        Packaging
// @Produce     json
// @Param       skip  query int false "Offset (default 0)"
// @Param       limit query int false "Page size (default 100)"
// @Success     200 {array} domain.PackagingMaterial
// @Router      /packaging-materials [get]
func (h *Handlers) ListPackagingMaterials(c *gin.Context) {
	offset, limit := pageParams(c)
	rows, err := h.svc.PackagingMaterials.List(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

// GetPackagingMaterial godoc
// @ID          getPackagingMaterial
// @Summary     Get a packaging material by id
// @Tags        Packaging
// @Produce     json
// @Param       id path int true "Packaging material ID"
// @Success     200 {object} domain.PackagingMaterial
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /packaging-materials/{id} [get]
func (h *Handlers) GetPackagingMaterial(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	row, err := h.svc.PackagingMaterials.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// UpdatePackagingMaterial godoc
// @ID          updatePackagingMaterial
// @Summary     Partially update a packaging material
// @Tags        Packaging
// @Accept      json
// @Produce     json
// @Param       id   path int true "Packaging material ID"
// @Param       body body services.UpdatePackagingMaterialInput true "Fields to change"
// @Success     200 {object} domain.PackagingMaterial
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /packaging-materials/{id} [put]
func (h *Handlers) UpdatePackagingMaterial(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	var in services.UpdatePackagingMaterialInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.PackagingMaterials.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// DeletePackagingMaterial godoc
// @ID          deletePackagingMaterial
// @Summary     Delete a packaging material
// @Description Fails with 409 while products or packaging purchase history
// @Description still reference the material.
// @Tags        Packaging
// @Produce     json
// @Param       id path int true "Packaging material ID"
// @Success     200 {object} handlers.DeleteResponse
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Failure     409 {object} handlers.ErrorResponse "Still referenced"
// @Router      /packaging-materials/{id} [delete]
func (h *Handlers) DeletePackagingMaterial(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	if err := h.svc.PackagingMaterials.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Packaging material deleted successfully")
}
