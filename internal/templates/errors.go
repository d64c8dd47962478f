package templates

import (
	"errors"
	"net/http"
)

// Domain errors for template operations.
var (
	ErrNotFound        = errors.New("template not found")
	ErrDuplicate       = errors.New("template already exists")
	ErrInvalidTemplate = errors.New("invalid template")
)

// MapHTTPStatus maps template domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidTemplate) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
