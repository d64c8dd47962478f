package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// yTolerance is the vertical jitter, in points, within which text fragments
// are considered part of the same line.
const yTolerance = 2.0

type fragment struct {
	x, y, w float64
	text    string
}

// extractPDF locates the grade table on the first page of a PDF bulletin.
// The document is structurally validated with pdfcpu before positioned text
// fragments are read; fragments matching an ignore pattern are discarded,
// the rest are grouped into lines by vertical position and split into cells
// wherever the horizontal gap reaches the merge threshold.
func extractPDF(data []byte, opts Options) (*GradeTable, error) {
	if err := validatePDF(data); err != nil {
		return nil, err
	}

	frags, err := readPageFragments(data, opts.Ignore)
	if err != nil {
		return nil, err
	}

	lines := groupLines(frags)

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, splitCells(line, opts.MergeThreshold))
	}

	table := selectTable(rows)
	if table == nil {
		return nil, ErrNoTableFound
	}

	return table, nil
}

func validatePDF(data []byte) error {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if ctx.PageCount == 0 {
		return ErrNoTableFound
	}
	return nil
}

func readPageFragments(data []byte, ignore []*regexp.Regexp) ([]fragment, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if r.NumPage() == 0 {
		return nil, ErrNoTableFound
	}

	page := r.Page(1)
	if page.V.IsNull() {
		return nil, ErrNoTableFound
	}

	var frags []fragment
	for _, t := range page.Content().Text {
		s := strings.TrimSpace(t.S)
		if s == "" || matchesAny(ignore, s) {
			continue
		}
		frags = append(frags, fragment{x: t.X, y: t.Y, w: t.W, text: s})
	}

	if len(frags) == 0 {
		return nil, ErrNoTableFound
	}

	return frags, nil
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// groupLines buckets fragments into lines by vertical position. PDF origin
// is bottom-left, so lines are emitted top of page first.
func groupLines(frags []fragment) [][]fragment {
	sort.SliceStable(frags, func(i, j int) bool {
		if frags[i].y != frags[j].y {
			return frags[i].y > frags[j].y
		}
		return frags[i].x < frags[j].x
	})

	var lines [][]fragment
	for _, f := range frags {
		if len(lines) > 0 {
			last := lines[len(lines)-1]
			if last[0].y-f.y <= yTolerance {
				lines[len(lines)-1] = append(last, f)
				continue
			}
		}
		lines = append(lines, []fragment{f})
	}

	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool {
			return line[i].x < line[j].x
		})
	}

	return lines
}

// splitCells merges adjacent fragments of one line into cells; a horizontal
// gap of at least threshold points starts a new column.
func splitCells(line []fragment, threshold float64) []string {
	var cells []string
	var cell strings.Builder
	var right float64

	for i, f := range line {
		if i > 0 && f.x-right >= threshold {
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		}
		if cell.Len() > 0 {
			cell.WriteByte(' ')
		}
		cell.WriteString(f.text)
		if f.x+f.w > right {
			right = f.x + f.w
		}
	}

	if cell.Len() > 0 {
		cells = append(cells, strings.TrimSpace(cell.String()))
	}

	return cells
}

// selectTable picks the first maximal run of consecutive multi-cell lines as
// the canonical grade table: header first, data rows after. Runs shorter than
// two lines are page prose, not tables.
func selectTable(rows [][]string) *GradeTable {
	start := -1
	for i, row := range rows {
		if len(row) >= 2 {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			if t := tableFromRun(rows[start:i]); t != nil {
				return t
			}
			start = -1
		}
	}

	if start != -1 {
		return tableFromRun(rows[start:])
	}

	return nil
}

func tableFromRun(run [][]string) *GradeTable {
	if len(run) < 2 {
		return nil
	}
	return &GradeTable{
		Header: run[0],
		Rows:   run[1:],
	}
}
