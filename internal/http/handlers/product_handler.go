// Product HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bakehouse/go-recipe-backend/internal/services"
)

// CreateProduct godoc
// @ID          createProduct
// @Summary     Create a product
// @Description New products start in under_review status unless the
// @Description payload says otherwise.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       body body services.CreateProductInput true "Product payload"
// @Success     201 {object} domain.Product
// @Failure     400 {object} handlers.ErrorResponse "Validation failed"
// @Failure     422 {object} handlers.ErrorResponse "Unknown recipe or packaging material"
// @Router      /products [post]
func (h *Handlers) CreateProduct(c *gin.Context) {
	var in services.CreateProductInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.Products.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, row)
}

// ListProducts godoc
// @ID          listProducts
// @Summary     List products
// @Tags        Products
// @Produce     json
// @Param       skip  query int false "Offset (default 0)"
// @Param       limit query int false "Page size (default 100)"
// @Success     200 {array} domain.Product
// @Router      /products [get]
func (h *Handlers) ListProducts(c *gin.Context) {
	offset, limit := pageParams(c)
	rows, err := h.svc.Products.List(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

// GetProduct godoc
// @ID          getProduct
// @Summary     Get a product by id
// @Tags        Products
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} domain.Product
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /products/{id} [get]
func (h *Handlers) GetProduct(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	row, err := h.svc.Products.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// UpdateProduct godoc
// @ID          updateProduct
// @Summary     Partially update a product
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       id   path int true "Product ID"
// @Param       body body services.UpdateProductInput true "Fields to change"
// @Success     200 {object} domain.Product
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Failure     422 {object} handlers.ErrorResponse "Unknown recipe or packaging material"
// @Router      /products/{id} [put]
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	var in services.UpdateProductInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.Products.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// DeleteProduct godoc
// @ID          deleteProduct
// @Summary     Delete a product
// @Tags        Products
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} handlers.DeleteResponse
// @Failure     404 {object} handlers.ErrorResponse "Not found"
// @Router      /products/{id} [delete]
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		return
	}
	if err := h.svc.Products.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Product deleted successfully")
}
