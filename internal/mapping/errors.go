package mapping

import (
	"errors"
	"net/http"
)

// Domain errors for mapping operations.
var (
	ErrSourceMismatch = errors.New("template source type does not match table origin")
)

// MapHTTPStatus maps mapping errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrSourceMismatch) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
