package mapping

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/lmercier/bulletin/internal/extract"
	"github.com/lmercier/bulletin/internal/templates"
)

// Map applies a template to an extracted grade table. The template's source
// type must match the table's origin; a mismatch fails fast before any row
// is processed. Rows that miss a required field or fail numeric coercion are
// excluded into Result.RowErrors, and the operation succeeds with whatever
// resolved cleanly.
func Map(table *extract.GradeTable, tpl *templates.MappingTemplate) (*Result, error) {
	if tpl.SourceType != table.Source {
		return nil, fmt.Errorf(
			"%w: template %s, table %s",
			ErrSourceMismatch, tpl.SourceType, table.Source,
		)
	}

	columns := resolveColumns(table.Header, tpl.Mapping)

	result := &Result{
		Records:   make([]StudentGradeRecord, 0, len(table.Rows)),
		RowErrors: []RowError{},
	}

	for i, row := range table.Rows {
		record, rowErr := mapRow(i, row, columns)
		if rowErr != nil {
			result.RowErrors = append(result.RowErrors, *rowErr)
			continue
		}
		result.Records = append(result.Records, *record)
	}

	return result, nil
}

// column is a resolved field binding. index is -1 when the locator could not
// be resolved against this table's header.
type column struct {
	field templates.Field
	index int
}

// resolveColumns binds each mapped field to a concrete column index once,
// before row processing. Header patterns are matched case-insensitively
// against trimmed header cells; the first match wins.
func resolveColumns(header []string, m templates.Mapping) []column {
	columns := make([]column, 0, len(m))

	for field, locator := range m {
		idx := -1
		switch {
		case locator.Index != nil:
			if *locator.Index < len(header) {
				idx = *locator.Index
			}
		default:
			pattern := locator.Pattern()
			for i, cell := range header {
				if pattern.MatchString(strings.TrimSpace(cell)) {
					idx = i
					break
				}
			}
		}
		columns = append(columns, column{field: field, index: idx})
	}

	// Stable field order keeps row errors deterministic.
	slices.SortFunc(columns, func(a, b column) int {
		return strings.Compare(string(a.field), string(b.field))
	})

	return columns
}

func mapRow(rowIdx int, row []string, columns []column) (*StudentGradeRecord, *RowError) {
	record := &StudentGradeRecord{Row: rowIdx}

	for _, col := range columns {
		required := slices.Contains(templates.RequiredFields, col.field)

		if col.index < 0 {
			if required {
				return nil, &RowError{
					Row:   rowIdx,
					Field: col.field,
					Cause: "column not resolved in header",
				}
			}
			continue
		}

		value := strings.TrimSpace(row[col.index])
		if value == "" {
			if required {
				return nil, &RowError{
					Row:   rowIdx,
					Field: col.field,
					Cause: "empty cell",
				}
			}
			continue
		}

		switch col.field {
		case templates.FieldStudentName:
			record.Student = value
		case templates.FieldSubject:
			record.Subject = value
		case templates.FieldGrade:
			grade, err := parseNumber(value)
			if err != nil {
				return nil, &RowError{
					Row:   rowIdx,
					Field: col.field,
					Cause: fmt.Sprintf("invalid number %q", value),
				}
			}
			record.Grade = grade
		case templates.FieldClassAverage:
			avg, err := parseNumber(value)
			if err != nil {
				return nil, &RowError{
					Row:   rowIdx,
					Field: col.field,
					Cause: fmt.Sprintf("invalid number %q", value),
				}
			}
			record.ClassAverage = &avg
		}
	}

	return record, nil
}

// parseNumber coerces a grade cell to a float. Bulletins are French exports,
// so comma decimal separators are accepted.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}
