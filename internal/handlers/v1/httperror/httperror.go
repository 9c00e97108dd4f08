// Package httperror maps service-layer error types onto HTTP status codes.
package httperror

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-engine/internal/service"
)

// FromService wraps a service error in a huma error with the matching HTTP
// status: ValidationError 400, NotFoundError 404, ConflictError 409,
// anything else 500.
func FromService(err error, msg string) error {
	switch {
	case service.IsValidationError(err):
		return huma.NewError(http.StatusBadRequest, msg, err)
	case service.IsNotFoundError(err):
		return huma.NewError(http.StatusNotFound, msg, err)
	case service.IsConflictError(err):
		return huma.NewError(http.StatusConflict, msg, err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
