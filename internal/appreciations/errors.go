package appreciations

import (
	"errors"
	"net/http"
)

// Domain errors for appreciation request operations.
var (
	ErrInvalidTone  = errors.New("unknown appreciation tone")
	ErrSubmitFailed = errors.New("generation request submission failed")
)

// MapHTTPStatus maps appreciation errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidTone) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrSubmitFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
