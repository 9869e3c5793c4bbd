package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/query"
)

// specFromPath assembles a query spec from whichever of the list-route path
// parameters are present. Malformed skip or top fall back to the defaults.
func specFromPath(c echo.Context, filterParam string) query.Spec {
	spec := query.Spec{
		Search:    c.Param("search"),
		SortField: c.Param("sortBy"),
		SortDir:   query.ParseDirection(c.Param("sortVal")),
		Skip:      query.ParseSkip(c.Param("skip")),
		Limit:     query.ParseLimit(c.Param("top")),
	}
	if filterParam != "" {
		spec.Filter = c.Param(filterParam)
	}
	return spec
}

// intID parses the :id path parameter by its leading digits. An id with none
// cannot match any record, so it is reported as not found.
func intID(c echo.Context, notFound func(raw string) error) (int, error) {
	raw := c.Param("id")
	id, ok := query.ParseID(raw)
	if !ok {
		return 0, notFound(raw)
	}
	return id, nil
}

func notFoundMessage(entity string) func(raw string) error {
	return func(raw string) error {
		return domain.NewError(domain.ErrNotFound, "id", "Cannot find "+entity+" with id:"+raw)
	}
}

// bindAndValidate decodes the request body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.NewError(domain.ErrValidation, "", "invalid payload")
	}
	return c.Validate(req)
}
