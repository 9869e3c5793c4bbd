package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/commerce-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	NameInput string `json:"nameInput,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders {"error": "<kind>", "message": "...", "nameInput": "<field>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{
			Error:   http.StatusText(he.Code),
			Message: fmt.Sprintf("%v", he.Message),
		}
	}

	if code, ok := statusOf(err); ok {
		return code, errorResponse{
			Error:     domain.KindName(err),
			Message:   err.Error(),
			NameInput: domain.FieldOf(err),
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{
		Error:   domain.KindName(err),
		Message: "internal server error",
	}
}

// statusOf maps a known error kind to its HTTP status. Unresolved ids answer
// 400 rather than 404, matching what existing clients expect.
func statusOf(err error) (int, bool) {
	switch {
	case errors.Is(err, domain.ErrMissingToken),
		errors.Is(err, domain.ErrInvalidOrExpiredToken):
		return http.StatusUnauthorized, true
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden, true
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrEmailConflict),
		errors.Is(err, domain.ErrPasswordMismatch),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, true
	case errors.Is(err, domain.ErrDuplicateRequest):
		return http.StatusConflict, true
	}
	return 0, false
}
