package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// extractCSV reads a delimited bulletin export as the grade table.
// French exports commonly use semicolons; the delimiter is sniffed from the
// first line.
func extractCSV(data []byte) (*GradeTable, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	rows = dropEmptyRows(rows)
	if len(rows) == 0 {
		return nil, ErrNoTableFound
	}

	return &GradeTable{
		Header: rows[0],
		Rows:   rows[1:],
	}, nil
}

func sniffDelimiter(data []byte) rune {
	line, _, _ := strings.Cut(string(data), "\n")
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}
