package extract

// RaggedRow records a data row whose original cell count deviated from the
// header width before normalization. Callers surface these as defects rather
// than dropping the rows.
type RaggedRow struct {
	Index int `json:"index"`
	Cells int `json:"cells"`
}

// GradeTable is a rectangular matrix of text cells extracted from one bulletin.
// Header is row 0 of the source table; Rows holds the data rows, each padded
// or truncated to the header width. Ragged lists rows that required adjustment.
type GradeTable struct {
	Source SourceType  `json:"source"`
	Header []string    `json:"header"`
	Rows   [][]string  `json:"rows"`
	Ragged []RaggedRow `json:"ragged,omitempty"`
}

// Width returns the column count of the table, defined by the header row.
func (t *GradeTable) Width() int {
	return len(t.Header)
}

// normalize pads or truncates every data row to the header width, recording
// the original cell count of each adjusted row.
func (t *GradeTable) normalize() {
	width := t.Width()
	for i, row := range t.Rows {
		if len(row) == width {
			continue
		}

		t.Ragged = append(t.Ragged, RaggedRow{Index: i, Cells: len(row)})

		if len(row) > width {
			t.Rows[i] = row[:width]
			continue
		}

		padded := make([]string, width)
		copy(padded, row)
		t.Rows[i] = padded
	}
}
