package templates

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for template domain operations.
//
// Save and Delete are atomic with respect to the stored collection, but the
// store provides no cross-call locking: the surrounding single-threaded
// execution serializes template mutations.
type System interface {
	Handler() *Handler

	// List returns all stored templates. A corrupt or unreadable store
	// degrades to an empty slice with the cause logged, never an error.
	List(ctx context.Context) ([]MappingTemplate, error)

	// Find returns the template with the given id, or ErrNotFound.
	Find(ctx context.Context, id uuid.UUID) (*MappingTemplate, error)

	// Save creates or fully replaces a template. An existing id preserves the
	// original DateCreated; a zero id assigns a new one with DateCreated set
	// to now. LastUsed is set to now in both cases.
	Save(ctx context.Context, tpl MappingTemplate) (*MappingTemplate, error)

	// Delete removes a template, reporting whether an entry existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// TouchLastUsed updates only the last-used timestamp of a template.
	// A missing id is a no-op.
	TouchLastUsed(ctx context.Context, id uuid.UUID) error
}
