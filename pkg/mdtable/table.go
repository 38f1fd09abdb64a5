// Package mdtable renders aligned markdown tables for the text report.
package mdtable

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment specifies column alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// minSeparatorWidth is the markdown minimum of three dashes.
const minSeparatorWidth = 3

// Table is a markdown table whose columns are padded to their display width,
// so emoji severity markers stay aligned in a terminal.
type Table struct {
	headers    []string
	alignments []Alignment
	rows       [][]string
}

// New creates a Table with left-aligned columns.
func New(headers ...string) *Table {
	return &Table{
		headers:    headers,
		alignments: make([]Alignment, len(headers)),
	}
}

// SetAlignment sets the alignment of column col. Out-of-range columns are ignored.
func (t *Table) SetAlignment(col int, align Alignment) *Table {
	if col >= 0 && col < len(t.alignments) {
		t.alignments[col] = align
	}

	return t
}

// AddRow appends a row, padding or truncating it to the header count.
func (t *Table) AddRow(cells ...string) *Table {
	row := make([]string, len(t.headers))
	copy(row, cells)

	t.rows = append(t.rows, row)

	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table, one line per row, each terminated by a newline.
func (t *Table) String() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := t.widths()

	var sb strings.Builder

	t.writeRow(&sb, t.headers, widths)
	t.writeSeparator(&sb, widths)

	for _, row := range t.rows {
		t.writeRow(&sb, row, widths)
	}

	return sb.String()
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.headers))

	for i, h := range t.headers {
		widths[i] = max(minSeparatorWidth, runewidth.StringWidth(sanitize(h)))
	}

	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(sanitize(cell)))
		}
	}

	return widths
}

func (t *Table) writeRow(sb *strings.Builder, cells []string, widths []int) {
	sb.WriteString("|")

	for i, cell := range cells {
		s := sanitize(cell)
		pad := strings.Repeat(" ", widths[i]-runewidth.StringWidth(s))

		sb.WriteString(" ")

		if t.alignments[i] == AlignRight {
			sb.WriteString(pad + s)
		} else {
			sb.WriteString(s + pad)
		}

		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}

// writeSeparator writes |:---|---:| style dashes spanning the padded cell.
func (t *Table) writeSeparator(sb *strings.Builder, widths []int) {
	sb.WriteString("|")

	for i, w := range widths {
		dashes := strings.Repeat("-", w+1)

		if t.alignments[i] == AlignRight {
			sb.WriteString(dashes + ":")
		} else {
			sb.WriteString(":" + dashes)
		}

		sb.WriteString("|")
	}

	sb.WriteString("\n")
}

// sanitize flattens a cell onto one line and escapes pipes.
func sanitize(s string) string {
	s = strings.Join(strings.Fields(s), " ")

	return strings.ReplaceAll(s, "|", `\|`)
}
