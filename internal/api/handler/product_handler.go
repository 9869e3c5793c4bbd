package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/commerce-api/internal/core/ports"
)

// ProductHandler serves the product catalogue.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

var productNotFound = notFoundMessage("product")

// All handles GET /api/products.
//
// @Summary      List every product
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Router       /api/products [get]
func (h *ProductHandler) All(c echo.Context) error {
	products, err := h.service.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Page handles every paged product listing. Whichever of type, search and
// sort segments the matched route carries are applied; the rest are skipped.
//
// @Summary      Page through products
// @Description  Also served under /type/{type}, /search/{search} and /sort/{sortBy}/{sortVal} prefixes and their combinations.
// @Tags         products
// @Produce      json
// @Param        skip     path      string  true   "Records to skip (default 0)"
// @Param        top      path      string  true   "Page size (default 10)"
// @Success      200      {object}  productPage
// @Router       /api/products/page/{skip}/{top} [get]
func (h *ProductHandler) Page(c echo.Context) error {
	page, err := h.service.Query(c.Request().Context(), specFromPath(c, "type"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  errorBody
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := intID(c, productNotFound)
	if err != nil {
		return err
	}
	p, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /api/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product"
// @Success      200   {object}  domain.Product
// @Failure      401   {object}  errorBody
// @Failure      403   {object}  errorBody
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Update handles PUT /api/products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Product id"
// @Param        body  body      productRequest  true  "Product"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  errorBody
// @Failure      403   {object}  errorBody
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := intID(c, productNotFound)
	if err != nil {
		return err
	}
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.service.Update(c.Request().Context(), id, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/products/:id and answers with the removed product.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  errorBody
// @Failure      403  {object}  errorBody
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := intID(c, productNotFound)
	if err != nil {
		return err
	}
	p, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (r productRequest) input() ports.ProductInput {
	return ports.ProductInput{
		Name:      r.Name,
		Price:     r.Price,
		Color:     r.Color,
		Thumbnail: r.Thumbnail,
		DetailImg: r.DetailImg,
		ColorImg:  r.ColorImg,
		Size:      r.Size,
		Type:      r.Type,
		Gender:    r.Gender,
	}
}
