package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/ports"
)

// HeaderIdempotencyKey lets a client retry add-to-cart safely.
const HeaderIdempotencyKey = "Idempotency-Key"

// CartHandler serves carts and checkout.
type CartHandler struct {
	carts ports.CartService
}

func NewCartHandler(carts ports.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// List handles GET /api/carts/:id.
//
// @Summary      List a user's cart
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {array}   domain.CartItem
// @Failure      401  {object}  errorBody
// @Router       /api/carts/{id} [get]
func (h *CartHandler) List(c echo.Context) error {
	items, err := h.carts.List(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Add handles POST /api/carts/:id.
//
// @Summary      Add an item to a cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id               path      string           true   "User id"
// @Param        Idempotency-Key  header    string           false  "Retry key"
// @Param        body             body      cartItemRequest  true   "Item"
// @Success      200              {object}  domain.CartItem
// @Failure      409              {object}  errorBody
// @Router       /api/carts/{id} [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req cartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.carts.Add(c.Request().Context(), c.Param("id"), ports.CartItemInput{
		URLImg:      req.URLImg,
		ProductName: req.ProductName,
		Size:        req.Size,
		Price:       req.Price,
	}, c.Request().Header.Get(HeaderIdempotencyKey))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Remove handles DELETE /api/carts/:id/:idOrder and answers with what is
// left in the cart.
//
// @Summary      Remove an item from a cart
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "User id"
// @Param        idOrder  path      string  true  "Cart item id"
// @Success      200      {array}   domain.CartItem
// @Failure      400      {object}  errorBody
// @Router       /api/carts/{id}/{idOrder} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	_, remaining, err := h.carts.Remove(c.Request().Context(), c.Param("id"), c.Param("idOrder"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, remaining)
}

// Checkout handles POST /api/carts/checkout/:id.
//
// @Summary      Check out a cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "User id"
// @Param        body  body      checkoutRequest  true  "Shipping information"
// @Success      200   {array}   domain.Order
// @Router       /api/carts/checkout/{id} [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	orders, err := h.carts.Checkout(c.Request().Context(), c.Param("id"), domain.ShippingInfo{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}
