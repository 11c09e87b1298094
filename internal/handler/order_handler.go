package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/service"
)

// OrderHandler handles order intake.
type OrderHandler struct {
	orders service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// PlaceOrder godoc
// @Summary Place an order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body map[string]interface{} true "customer, items and total"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	payload, err := bindObject(c)
	if err != nil {
		return errorResponse(err)
	}

	order, err := h.orders.PlaceOrder(c.Request().Context(), payload)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, order)
}
