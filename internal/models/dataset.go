// Package models defines the raw and cleaned catalog record shapes.
package models

// Record is one raw row keyed by column name. A key that is absent means the
// cell was missing in the source.
type Record map[string]string

// Lookup returns the raw value and whether the cell was present and non-empty.
func (r Record) Lookup(column string) (string, bool) {
	v, ok := r[column]
	if !ok || v == "" {
		return "", false
	}

	return v, true
}

// Dataset is an ordered sequence of raw records sharing one header.
type Dataset struct {
	Columns []string
	Rows    []Record
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}

	return len(d.Rows)
}

// HasColumn reports whether the header contains column.
func (d *Dataset) HasColumn(column string) bool {
	for _, c := range d.Columns {
		if c == column {
			return true
		}
	}

	return false
}
