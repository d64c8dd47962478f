package extract

import (
	"encoding/json"
	"slices"
)

// SourceType identifies the document format a grade table was extracted from.
type SourceType string

// Supported bulletin source formats.
const (
	SourcePDF   SourceType = "pdf"
	SourceExcel SourceType = "excel"
	SourceCSV   SourceType = "csv"
)

var sources = []SourceType{
	SourcePDF,
	SourceExcel,
	SourceCSV,
}

// Sources returns the list of supported source types.
func Sources() []SourceType {
	return sources
}

// UnmarshalJSON validates that the decoded string is a known source type.
func (s *SourceType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := SourceType(raw)
	if !slices.Contains(sources, v) {
		return ErrUnsupportedSource
	}
	*s = v
	return nil
}

// ParseSourceType validates a string as a known source type.
// Returns ErrUnsupportedSource if the value is not recognized.
func ParseSourceType(s string) (SourceType, error) {
	v := SourceType(s)
	if !slices.Contains(sources, v) {
		return "", ErrUnsupportedSource
	}
	return v, nil
}
