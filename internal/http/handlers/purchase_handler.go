// Purchase history HTTP handlers for both purchase tables.
//
// The two tables share one payload shape in the services layer; the
// request wrappers here restore the table-specific foreign key name on
// the wire (ingredient_id vs packaging_material_id).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bakehouse/go-recipe-backend/internal/domain"
	"github.com/bakehouse/go-recipe-backend/internal/services"
)

type createPurchaseRequest struct {
	services.CreatePurchaseInput
	IngredientID uint `json:"ingredient_id"`
}

type updatePurchaseRequest struct {
	services.UpdatePurchaseInput
	IngredientID domain.Optional[uint] `json:"ingredient_id"`
}

type createPackagingPurchaseRequest struct {
	services.CreatePurchaseInput
	PackagingMaterialID uint `json:"packaging_material_id"`
}

type updatePackagingPurchaseRequest struct {
	services.UpdatePurchaseInput
	PackagingMaterialID domain.Optional[uint] `json:"packaging_material_id"`
}

// CreatePurchase godoc
// @ID          createPurchase
// @Summary     Record an ingredient purchase
// @Tags        Purchases
// @Accept      json
// @Produce     json
// @Param       body body handlers.createPurchaseRequest true "Purchase payload"
// @Success     201 {object} domain.PurchaseHistory
// @Failure     400 {object} handlers.ErrorResponse "Validation failed"
// @Failure     422 {object} handlers.ErrorResponse "Unknown ingredient"
// @Router      /purchase-history [post]
func (h *Handlers) CreatePurchase(c *gin.Context) {
	var req createPurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ReferenceID = req.IngredientID
	row, err := h.svc.Purchases.Create(c.Request.Context(), req.CreatePurchaseInput)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, row)
}

// ListPurchases godoc
// @ID          listPurchases
// @Summary     List ingredient purchases
// @Tags        Purchases
// @Produce     json
// @Param       skip  query int false "Offset (default 0)"
// @Param       limit query int false "Page size (default 100)"
// @Success     200 {array} domain.PurchaseHistory
// @Router      /purchase-history [get]
func (h *Handlers) ListPurchases(c *gin.Context) {
	offset, limit := pageParams(c)
	rows, err := h.svc.Purchases.List(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

// GetPurchase godoc
// @ID          getPurchase
// @Summary     Get an ingredient purchase by id
// @Tags        Purchases
// @Produce     json
// @Param       id path int true "Purchase ID"
// @Success     200 {object} domain.PurchaseHistory
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /purchase-history/{id} [get]
func (h *Handlers) GetPurchase(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	row, err := h.svc.Purchases.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// UpdatePurchase godoc
// @ID          updatePurchase
// @Summary     Partially update an ingredient purchase
// @Tags        Purchases
// @Accept      json
// @Produce     json
// @Param       id   path int true "Purchase ID"
// @Param       body body handlers.updatePurchaseRequest true "Fields to change"
// @Success     200 {object} domain.PurchaseHistory
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Failure     422 {object} handlers.ErrorResponse "Unknown ingredient"
// @Router      /purchase-history/{id} [put]
func (h *Handlers) UpdatePurchase(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	var req updatePurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ReferenceID = req.IngredientID
	row, err := h.svc.Purchases.Update(c.Request.Context(), id, req.UpdatePurchaseInput)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// DeletePurchase godoc
// @ID          deletePurchase
// @Summary     Delete an ingredient purchase
// @Tags        Purchases
// @Produce     json
// @Param       id path int true "Purchase ID"
// @Success     200 {object} handlers.DeleteResponse
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /purchase-history/{id} [delete]
func (h *Handlers) DeletePurchase(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	if err := h.svc.Purchases.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Purchase history deleted successfully")
}

// CreatePackagingPurchase godoc
// @ID          createPackagingPurchase
// @Summary     Record a packaging material purchase
// @Tags        Purchases
// @Accept      json
// @Produce     json
// @Param       body body handlers.createPackagingPurchaseRequest true "Purchase payload"
// @Success     201 {object} domain.PackagingPurchaseHistory
// @Failure     400 {object} handlers.ErrorResponse "Validation failed"
// @Failure     422 {object} handlers.ErrorResponse "Unknown packaging material"
// @Router      /packaging-purchase-history [post]
func (h *Handlers) CreatePackagingPurchase(c *gin.Context) {
	var req createPackagingPurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ReferenceID = req.PackagingMaterialID
	row, err := h.svc.PackagingPurchases.Create(c.Request.Context(), req.CreatePurchaseInput)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, row)
}

// ListPackagingPurchases godoc
// @ID          listPackagingPurchases
// @Summary     List packaging material purchases
// @Tags        Purchases
// @Produce     json
// @Param       skip  query int false "Offset (default 0)"
// @Param       limit query int false "Page size (default 100)"
// @Success     200 {array} domain.PackagingPurchaseHistory
// @Router      /packaging-purchase-history [get]
func (h *Handlers) ListPackagingPurchases(c *gin.Context) {
	offset, limit := pageParams(c)
	rows, err := h.svc.PackagingPurchases.List(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

// GetPackagingPurchase godoc
// @ID          getPackagingPurchase
// @Summary     Get a packaging material purchase by id
// @Tags        Purchases
// @Produce     json
// @Param       id path int true "Purchase ID"
// @Success     200 {object} domain.PackagingPurchaseHistory
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /packaging-purchase-history/{id} [get]
func (h *Handlers) GetPackagingPurchase(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	row, err := h.svc.PackagingPurchases.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// UpdatePackagingPurchase godoc
// @ID          updatePackagingPurchase
// @Summary     Partially update a packaging material purchase
// @Tags        Purchases
// @Accept      json
// @Produce     json
// @Param       id   path int true "Purchase ID"
// @Param       body body handlers.updatePackagingPurchaseRequest true "Fields to change"
// @Success     200 {object} domain.PackagingPurchaseHistory
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Failure     422 {object} handlers.ErrorResponse "Unknown packaging material"
// @Router      /packaging-purchase-history/{id} [put]
func (h *Handlers) UpdatePackagingPurchase(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	var req updatePackagingPurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ReferenceID = req.PackagingMaterialID
	row, err := h.svc.PackagingPurchases.Update(c.Request.Context(), id, req.UpdatePurchaseInput)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// DeletePackagingPurchase godoc
// @ID          deletePackagingPurchase
// @Summary     Delete a packaging material purchase
// @Tags        Purchases
// @Produce     json
// @Param       id path int true "Purchase ID"
// @Success     200 {object} handlers.DeleteResponse
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /packaging-purchase-history/{id} [delete]
func (h *Handlers) DeletePackagingPurchase(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	if err := h.svc.PackagingPurchases.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Packaging purchase history deleted successfully")
}
