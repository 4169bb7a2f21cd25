// Egg master HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bakehouse/go-recipe-backend/internal/services"
)

// CreateEggMaster godoc
// @ID          createEggMaster
// @Summary     Create an egg master row
// @Description Weights default to 50.00g whole, 30.00g white and 20.00g
// @Description yolk when omitted.
// @Tags        EggMaster
// @Accept      json
// @Produce     json
// @Param       body body services.CreateEggMasterInput true "Egg master payload"
// @Success     201 {object} domain.EggMaster
// @Failure     400 {object} handlers.ErrorResponse "Validation failed"
// @Router      /egg-master [post]
func (h *Handlers) CreateEggMaster(c *gin.Context) {
	var in services.CreateEggMasterInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.EggMaster.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, row)
}

// ListEggMaster godoc
// @ID          listEggMaster
// @Summary     List egg master rows
// @Tags        EggMaster
// @Produce     json
// @Param       skip  query int false "Offset (default 0)"
// @Param       limit query int false "Page size (default 100)"
// @Success     200 {array} domain.EggMaster
// @Router      /egg-master [get]
func (h *Handlers) ListEggMaster(c *gin.Context) {
	offset, limit := pageParams(c)
	rows, err := h.svc.EggMaster.List(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

// GetEggMaster godoc
// @ID          getEggMaster
// @Summary     Get an egg master row by id
// @Tags        EggMaster
// @Produce     json
// @Param       id path int true "Egg master ID"
// @Success     200 {object} domain.EggMaster
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /egg-master/{id} [get]
func (h *Handlers) GetEggMaster(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	row, err := h.svc.EggMaster.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// UpdateEggMaster godoc
// @ID          updateEggMaster
// @Summary     Partially update an egg master row
// @Tags        EggMaster
// @Accept      json
// @Produce     json
// @Param       id   path int true "Egg master ID"
// @Param       body body services.UpdateEggMasterInput true "Fields to change"
// @Success     200 {object} domain.EggMaster
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /egg-master/{id} [put]
func (h *Handlers) UpdateEggMaster(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	var in services.UpdateEggMasterInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.EggMaster.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// DeleteEggMaster godoc
// @ID          deleteEggMaster
// @Summary     Delete an egg master row
// @Tags        EggMaster
// @Produce     json
// @Param       id path int true "Egg master ID"
// @Success     200 {object} handlers.DeleteResponse
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /egg-master/{id} [delete]
func (h *Handlers) DeleteEggMaster(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	if err := h.svc.EggMaster.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Egg master deleted successfully")
}
