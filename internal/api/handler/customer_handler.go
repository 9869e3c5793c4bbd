package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/commerce-api/internal/core/ports"
)

type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

var customerNotFound = notFoundMessage("customer")

// Page handles the paged customer listings.
//
// @Summary      Page through customers
// @Description  Also served under /search/{search} (name) and /city/{city} (exact city) prefixes.
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        skip  path      string  true  "Records to skip (default 0)"
// @Param        top   path      string  true  "Page size (default 10)"
// @Success      200   {object}  customerPage
// @Router       /api/customers/page/{skip}/{top} [get]
func (h *CustomerHandler) Page(c echo.Context) error {
	page, err := h.service.Query(c.Request().Context(), specFromPath(c, "city"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get handles GET /api/customers/:id.
//
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  domain.Customer
// @Failure      400  {object}  errorBody
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := intID(c, customerNotFound)
	if err != nil {
		return err
	}
	cust, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cust)
}
