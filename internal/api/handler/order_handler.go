package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/commerce-api/internal/core/ports"
)

type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List handles GET /api/orders/:id and GET /api/orders/:id/search/:search.
//
// @Summary      List a user's orders
// @Description  Also served under /api/orders/{id}/search/{search}; search matches productName, case-insensitively.
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {array}   domain.Order
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.ListByUser(c.Request().Context(), c.Param("id"), c.Param("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}
