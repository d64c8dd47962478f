package extract

import (
	"errors"
	"net/http"
)

// Domain errors for table extraction.
var (
	ErrNoTableFound      = errors.New("no grade table found in document")
	ErrUnsupportedSource = errors.New("unsupported source type")
	ErrInvalidDocument   = errors.New("invalid document")
)

// MapHTTPStatus maps extraction errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNoTableFound) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrUnsupportedSource) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrInvalidDocument) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
