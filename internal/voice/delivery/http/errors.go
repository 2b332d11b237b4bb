package http

import (
	pkgErrors "voice-task-parser/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// The use case resolves every extraction failure itself, so anything that
// reaches here is unexpected.
func (h *handler) mapError(err error) error {
	return pkgErrors.ErrInternalServerError
}
