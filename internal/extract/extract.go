// Package extract implements grade table extraction from bulletin documents.
// It converts raw PDF, Excel, or CSV bytes into a rectangular GradeTable.
//
// Bulletins covered by this service place the grade table at a fixed position:
// the first table of the first page is canonical. Multi-table pages are a
// known limitation, not handled generically.
package extract

import "regexp"

// Options configures table extraction.
//
// MergeThreshold applies to the PDF path: bulletins use proportional-width
// layouts where column boundaries are inferred from horizontal gaps, not
// fixed coordinates. Adjacent text fragments closer than the threshold
// (in points) are merged into one cell; wider gaps start a new column.
//
// Ignore patterns are matched against every extracted PDF text fragment
// before table assembly, so institutional boilerplate (page footers,
// letterhead) never pollutes the matrix.
type Options struct {
	MergeThreshold float64
	Ignore         []*regexp.Regexp
}

// DefaultMergeThreshold is the fragment gap, in points, beyond which
// adjacent PDF text fragments are treated as separate columns.
const DefaultMergeThreshold = 12.0

// Extract parses one document and returns its canonical grade table.
// Returns ErrNoTableFound when no table can be located, ErrUnsupportedSource
// for an undeclared source type, and ErrInvalidDocument when the bytes do
// not parse as the declared format.
func Extract(data []byte, source SourceType, opts Options) (*GradeTable, error) {
	if opts.MergeThreshold <= 0 {
		opts.MergeThreshold = DefaultMergeThreshold
	}

	var (
		table *GradeTable
		err   error
	)

	switch source {
	case SourcePDF:
		table, err = extractPDF(data, opts)
	case SourceExcel:
		table, err = extractExcel(data)
	case SourceCSV:
		table, err = extractCSV(data)
	default:
		return nil, ErrUnsupportedSource
	}

	if err != nil {
		return nil, err
	}

	table.Source = source
	table.normalize()
	return table, nil
}
