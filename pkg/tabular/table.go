// Package tabular parses uploaded CSV data into a generic table and renders
// excerpts of it as plain text for prompt context.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table is a parsed CSV file: one header row plus data rows. Ragged rows
// are allowed; short rows are padded with empty cells on access.
type Table struct {
	Header []string
	Rows   [][]string
}

// ParseCSV reads an entire CSV stream into a Table. The first record is
// treated as the header. Returns an error for empty input or malformed CSV.
func ParseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file is empty")
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	return &Table{Header: header, Rows: records[1:]}, nil
}

// Records converts the data rows into header-keyed maps, one per row.
// Cells beyond the header width are dropped; missing cells become "".
func (t *Table) Records() []map[string]string {
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Header))
		for i, key := range t.Header {
			if i < len(row) {
				rec[key] = strings.TrimSpace(row[i])
			} else {
				rec[key] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// Cell returns the value at (row, col), or "" when out of range.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][col])
}

// RenderHead renders the header and the first n data rows as aligned
// columns of plain text, suitable for embedding in a prompt.
func (t *Table) RenderHead(n int) string {
	rows := t.Rows
	if n < len(rows) {
		rows = rows[:n]
	}

	// Widths count runes, not bytes, so multi-byte cells stay aligned.
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := utf8.RuneCountInString(strings.TrimSpace(row[i])); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = strings.TrimSpace(cells[i])
			}
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", w-utf8.RuneCountInString(cell)))
		}
		// Extra cells past the header (e.g. trailing error codes) still matter.
		for i := len(widths); i < len(cells); i++ {
			b.WriteString("  ")
			b.WriteString(strings.TrimSpace(cells[i]))
		}
		b.WriteString("\n")
	}

	writeRow(t.Header)
	for _, row := range rows {
		writeRow(row)
	}
	return strings.TrimRight(b.String(), " \n")
}
