package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/service"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	catalog service.CatalogService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// DeleteResponse is returned by a successful delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, products)
}

// CreateProduct godoc
// @Summary Create product
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body map[string]interface{} true "Product fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	payload, err := bindObject(c)
	if err != nil {
		return errorResponse(err)
	}

	product, err := h.catalog.CreateProduct(c.Request().Context(), payload)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, product)
}

// UpdateProduct godoc
// @Summary Update product
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body map[string]interface{} true "Fields to overwrite"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	payload, err := bindObject(c)
	if err != nil {
		return errorResponse(err)
	}

	product, err := h.catalog.UpdateProduct(c.Request().Context(), c.Param("id"), payload)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} DeleteResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.catalog.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
