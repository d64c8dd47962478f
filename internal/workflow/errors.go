package workflow

import (
	"errors"
	"net/http"

	"github.com/lmercier/bulletin/internal/extract"
	"github.com/lmercier/bulletin/internal/mapping"
	"github.com/lmercier/bulletin/internal/templates"
)

// Stage errors for pipeline execution.
var (
	ErrExtractFailed = errors.New("extract stage failed")
	ErrMapFailed     = errors.New("map stage failed")
)

// MapHTTPStatus maps pipeline errors to appropriate HTTP status codes by
// delegating to the failing stage's domain.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, extract.ErrNoTableFound),
		errors.Is(err, extract.ErrUnsupportedSource),
		errors.Is(err, extract.ErrInvalidDocument):
		return extract.MapHTTPStatus(err)
	case errors.Is(err, templates.ErrNotFound):
		return templates.MapHTTPStatus(err)
	case errors.Is(err, mapping.ErrSourceMismatch):
		return mapping.MapHTTPStatus(err)
	}
	return http.StatusInternalServerError
}
