// Package mapping resolves raw grade table rows through a mapping template
// into normalized per-student grade records.
package mapping

import "github.com/lmercier/bulletin/internal/templates"

// StudentGradeRecord is one bulletin row resolved into named fields.
// Row is the zero-based data row index in the source table.
type StudentGradeRecord struct {
	Student      string   `json:"student"`
	Subject      string   `json:"subject,omitempty"`
	Grade        float64  `json:"grade"`
	ClassAverage *float64 `json:"class_average,omitempty"`
	Row          int      `json:"row"`
}

// RowError describes why one data row was excluded from the mapped output.
// Bulletins routinely carry a trailing notes row or merged header remnants;
// these are collected, not fatal.
type RowError struct {
	Row   int             `json:"row"`
	Field templates.Field `json:"field"`
	Cause string          `json:"cause"`
}

// Result carries the partial success of one mapping operation: the rows that
// resolved cleanly plus a parallel list of per-row failures.
type Result struct {
	Records   []StudentGradeRecord `json:"records"`
	RowErrors []RowError           `json:"row_errors"`
}
