// Package templates implements the mapping template domain. A template is a
// named, persisted configuration describing how raw bulletin table columns
// map to logical student and grade fields, reusable across uploads of the
// same bulletin layout.
package templates

import (
	"time"

	"github.com/google/uuid"

	"github.com/lmercier/bulletin/internal/extract"
)

// MappingTemplate is a persisted column-mapping configuration.
//
// ID is assigned once at creation and immutable thereafter. DateCreated is
// fixed at first save and never changes on update. LastUsed moves every time
// the template is saved or applied to a bulletin.
type MappingTemplate struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description *string            `json:"description"`
	DateCreated time.Time          `json:"dateCreated"`
	LastUsed    time.Time          `json:"lastUsed"`
	SourceType  extract.SourceType `json:"sourceType"`
	Mapping     Mapping            `json:"mappingConfig"`
}

// Validate checks the identity-independent fields of a template: a non-empty
// name, a known source type, and a well-formed mapping. Malformed templates
// fail at save time, not at map time.
func (t *MappingTemplate) Validate() error {
	if t.Name == "" {
		return ErrInvalidTemplate
	}
	if _, err := extract.ParseSourceType(string(t.SourceType)); err != nil {
		return ErrInvalidTemplate
	}
	return t.Mapping.Validate()
}
