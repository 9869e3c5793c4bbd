package service

import (
	"errors"

	"github.com/99minutos/commerce-api/internal/core/domain"
)

// notFoundAs swaps a bare repository ErrNotFound for a descriptive one and
// passes every other error through.
func notFoundAs(err, replacement error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return replacement
	}
	return err
}
