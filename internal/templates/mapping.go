package templates

import (
	"fmt"
	"regexp"
	"slices"
)

// Field names the logical columns a bulletin row resolves into.
type Field string

// Logical fields a mapping may bind.
const (
	FieldStudentName  Field = "student_name"
	FieldSubject      Field = "subject"
	FieldGrade        Field = "grade"
	FieldClassAverage Field = "class_average"
)

var fields = []Field{
	FieldStudentName,
	FieldSubject,
	FieldGrade,
	FieldClassAverage,
}

// RequiredFields are the fields every usable mapping must bind.
var RequiredFields = []Field{FieldStudentName, FieldGrade}

// Fields returns the list of known logical fields.
func Fields() []Field {
	return fields
}

// UnmarshalText validates map keys when a mapping is decoded from JSON.
func (f *Field) UnmarshalText(data []byte) error {
	v := Field(data)
	if !slices.Contains(fields, v) {
		return fmt.Errorf("%w: unknown field %q", ErrInvalidTemplate, string(data))
	}
	*f = v
	return nil
}

// Locator addresses one table column, either by zero-based index or by a
// regular expression matched against the header row. Exactly one of the two
// forms must be set.
type Locator struct {
	Index  *int   `json:"index,omitempty"`
	Header string `json:"header,omitempty"`
}

// Validate checks that the locator uses exactly one addressing form and that
// a header pattern compiles.
func (l Locator) Validate() error {
	switch {
	case l.Index != nil && l.Header != "":
		return fmt.Errorf("%w: locator sets both index and header", ErrInvalidTemplate)
	case l.Index == nil && l.Header == "":
		return fmt.Errorf("%w: locator sets neither index nor header", ErrInvalidTemplate)
	case l.Index != nil && *l.Index < 0:
		return fmt.Errorf("%w: negative column index %d", ErrInvalidTemplate, *l.Index)
	case l.Header != "":
		if _, err := regexp.Compile("(?i)" + l.Header); err != nil {
			return fmt.Errorf("%w: header pattern %q: %v", ErrInvalidTemplate, l.Header, err)
		}
	}
	return nil
}

// Pattern compiles the header pattern, case-insensitive. Valid only after
// Validate has passed.
func (l Locator) Pattern() *regexp.Regexp {
	return regexp.MustCompile("(?i)" + l.Header)
}

// Mapping binds logical fields to column locators.
type Mapping map[Field]Locator

// Validate checks every locator and the presence of all required fields.
func (m Mapping) Validate() error {
	for _, required := range RequiredFields {
		if _, ok := m[required]; !ok {
			return fmt.Errorf("%w: missing required field %q", ErrInvalidTemplate, required)
		}
	}
	for field, locator := range m {
		if err := locator.Validate(); err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}
	}
	return nil
}
