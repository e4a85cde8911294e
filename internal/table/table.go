// Package table renders rows of typed values as a fixed-width text
// table with centered cells and pipe borders.
package table

//go:generate go run ./gen -max 6 -out typed_gen.go

import (
	"io"
	"strings"

	"github.com/replit/iotable/internal/util"
)

// New creates a new table with the given headers. The table has no
// rows; add them with AddRow. The number of headers fixes the number
// of cells in every row.
func New(headers ...string) Table {
	return Table{headers: append([]string{}, headers...)}
}

// AddRow adds a row at the end of a table. The length of the row must
// be the same as the number of headers in the table, and each cell
// must have the kind of the cells already in its column, or a panic
// will be generated. The first row fixes the column kinds.
func (t *Table) AddRow(row ...Cell) {
	if len(row) != len(t.headers) {
		util.Panicf(
			"wrong number of columns in table row (%d != %d)",
			len(row), len(t.headers),
		)
	}
	if t.kinds == nil {
		t.kinds = make([]Kind, len(row))
		for j, cell := range row {
			t.kinds[j] = cell.Kind()
		}
	} else {
		for j, cell := range row {
			if cell.Kind() != t.kinds[j] {
				util.Panicf(
					"wrong kind in column %q (%s != %s)",
					t.headers[j], cell.Kind(), t.kinds[j],
				)
			}
		}
	}
	t.rows = append(t.rows, append([]Cell(nil), row...))
}

// Clone returns an independent copy of the table. Later changes to
// either table are not visible in the other.
func (t *Table) Clone() Table {
	clone := Table{
		headers: append([]string{}, t.headers...),
		kinds:   append([]Kind(nil), t.kinds...),
		rows:    make([][]Cell, len(t.rows)),
	}
	for i, row := range t.rows {
		clone.rows[i] = append([]Cell(nil), row...)
	}
	return clone
}

// Move returns a table holding t's headers and rows and leaves t
// empty, with no headers and no rows.
func (t *Table) Move() Table {
	moved := *t
	*t = Table{}
	return moved
}

// Headers returns a copy of the table headers.
func (t *Table) Headers() []string {
	return append([]string{}, t.headers...)
}

// Kinds returns a copy of the column kinds, or nil if the table has
// no rows yet.
func (t *Table) Kinds() []Kind {
	if t.kinds == nil {
		return nil
	}
	return append([]Kind(nil), t.kinds...)
}

// NumRows returns the number of rows added so far.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Records returns the formatted text of every cell, one slice per
// row, in insertion order.
func (t *Table) Records() [][]string {
	records := make([][]string, len(t.rows))
	for i, row := range t.rows {
		records[i] = make([]string, len(row))
		for j, cell := range row {
			records[i][j] = Format(cell)
		}
	}
	return records
}

// Widths returns the display width of every column: the longest of
// the header and the formatted cells, counted in bytes.
func (t *Table) Widths() []int {
	widths := make([]int, len(t.headers))
	for j := range t.headers {
		widths[j] = len(t.headers[j])
	}
	for i := range t.rows {
		for j := range t.rows[i] {
			if n := len(Format(t.rows[i][j])); n > widths[j] {
				widths[j] = n
			}
		}
	}
	return widths
}

// LineWidth returns the length in bytes of each line of the rendered
// table, not counting the newline.
func (t *Table) LineWidth() int {
	return lineWidth(t.Widths())
}

func lineWidth(widths []int) int {
	total := 1
	for _, w := range widths {
		total += w + 3
	}
	return total
}

// center pads text with spaces to width+2 bytes. There is always at
// least one space on each side; an odd remainder goes to the right.
func center(b *strings.Builder, text string, width int) {
	if len(text) > width {
		util.Panicf("table: %q is wider than its column (%d > %d)", text, len(text), width)
	}
	gap := width - len(text)
	b.WriteString(strings.Repeat(" ", gap/2+1))
	b.WriteString(text)
	b.WriteString(strings.Repeat(" ", gap/2+gap%2+1))
}

// render builds the whole table: header line, divider, one line per
// row, and a final blank line.
func (t *Table) render() string {
	widths := t.Widths()

	var b strings.Builder
	b.Grow((lineWidth(widths)+1)*(len(t.rows)+2) + 1)

	b.WriteByte('|')
	for j, header := range t.headers {
		center(&b, header, widths[j])
		b.WriteByte('|')
	}
	b.WriteByte('\n')

	b.WriteByte('|')
	for j := range t.headers {
		b.WriteString(strings.Repeat("-", widths[j]+2))
		b.WriteByte('|')
	}
	b.WriteByte('\n')

	for _, row := range t.rows {
		b.WriteByte('|')
		for j, cell := range row {
			center(&b, Format(cell), widths[j])
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	return b.String()
}

// String returns the rendered table.
func (t *Table) String() string {
	return t.render()
}

// WriteTo writes the rendered table to w. The bytes are the same as
// those returned by String.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.render())
	return int64(n), err
}
