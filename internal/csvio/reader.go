// Package csvio reads raw catalog files and writes cleaned ones.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"catalogclean/internal/models"
)

// Read errors.
var (
	ErrEmptyInput = errors.New("input has no header row")
	ErrRowWidth   = errors.New("row width does not match header")
)

const utf8BOM = "\ufeff"

// ReadFile reads a delimited catalog file from path.
func ReadFile(path string) (*models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// Read parses CSV from r. The header is kept verbatim and rows keep their
// order. Empty cells are left out of the record, marking them missing.
func Read(r io.Reader) (*models.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	ds := &models.Dataset{Columns: append([]string(nil), header...)}

	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		if len(fields) != len(header) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrRowWidth, line, len(fields), len(header))
		}

		rec := make(models.Record, len(fields))

		for i, v := range fields {
			if v != "" {
				rec[header[i]] = v
			}
		}

		ds.Rows = append(ds.Rows, rec)
	}

	return ds, nil
}
