// Package formatter renders aligned markdown tables.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment of a table column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table is a markdown table with a header row.
type Table struct {
	Headers []string
	Align   []Alignment
	Rows    [][]string
}

// NewTable creates a left-aligned table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		Headers: headers,
		Align:   make([]Alignment, len(headers)),
	}
}

// AlignRight right-aligns the column at idx, typically a count.
func (t *Table) AlignRight(idx int) *Table {
	if idx >= 0 && idx < len(t.Align) {
		t.Align[idx] = AlignRight
	}

	return t
}

// AddRow appends a row. Missing trailing cells render empty.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render returns the table with every column padded to its widest cell,
// measured in display width so wide runes line up.
func (t *Table) Render() string {
	colCount := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return ""
	}

	colWidths := make([]int, colCount)

	measure := func(row []string) {
		for i := 0; i < len(row) && i < colCount; i++ {
			width := runewidth.StringWidth(strings.TrimSpace(row[i]))
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	measure(t.Headers)

	for _, row := range t.Rows {
		measure(row)
	}

	// Ensure min width for separator (usually 3 dashes "---")
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	var sb strings.Builder

	t.writeRow(&sb, t.Headers, colWidths)
	t.writeSeparator(&sb, colWidths)

	for _, row := range t.Rows {
		t.writeRow(&sb, row, colWidths)
	}

	return sb.String()
}

func (t *Table) alignment(col int) Alignment {
	if col < len(t.Align) {
		return t.Align[col]
	}

	return AlignLeft
}

func (t *Table) writeRow(sb *strings.Builder, row []string, colWidths []int) {
	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = strings.TrimSpace(row[j])
		}

		padding := strings.Repeat(" ", width-runewidth.StringWidth(content))

		sb.WriteString(" ")

		if t.alignment(j) == AlignRight {
			sb.WriteString(padding)
			sb.WriteString(content)
		} else {
			sb.WriteString(content)
			sb.WriteString(padding)
		}

		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}

func (t *Table) writeSeparator(sb *strings.Builder, colWidths []int) {
	sb.WriteString("|")

	for j, width := range colWidths {
		sb.WriteString(" ")

		if t.alignment(j) == AlignRight {
			sb.WriteString(strings.Repeat("-", width-1))
			sb.WriteString(":")
		} else {
			sb.WriteString(strings.Repeat("-", width))
		}

		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}
