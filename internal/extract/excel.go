package extract

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// extractExcel reads the first sheet of a workbook as the grade table.
func extractExcel(data []byte) (*GradeTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoTableFound
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
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

func dropEmptyRows(rows [][]string) [][]string {
	out := rows[:0]
	for _, row := range rows {
		if !rowEmpty(row) {
			out = append(out, row)
		}
	}
	return out
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
