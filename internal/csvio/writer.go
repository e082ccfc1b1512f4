package csvio

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"catalogclean/internal/models"
)

// DateLayout is how cleaned dates are written.
const DateLayout = "2006-01-02"

// WriteFile writes ds to path. Output goes to a temporary file in the same
// directory that is renamed over path only once fully written.
func WriteFile(path string, ds *models.CleanDataset) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp output: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, ds); err != nil {
		return err
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp output: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}

// Write serializes ds as CSV: a header of output columns, then one row per
// title. Missing values are empty cells and lists are JSON arrays.
func Write(w io.Writer, ds *models.CleanDataset) error {
	cw := csv.NewWriter(w)
	columns := ds.OutputColumns()

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range ds.Titles {
		row, err := Row(&ds.Titles[i], columns)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

// Row renders the cells of t for the given columns.
func Row(t *models.Title, columns []string) ([]string, error) {
	row := make([]string, len(columns))

	for i, col := range columns {
		cell, err := cell(t, col)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col, err)
		}

		row[i] = cell
	}

	return row, nil
}

func cell(t *models.Title, column string) (string, error) {
	switch column {
	case models.ColumnDateAdded:
		if t.DateAdded == nil {
			return "", nil
		}

		return t.DateAdded.Format(DateLayout), nil
	case models.ColumnYearAdded:
		return intCell(t.YearAdded), nil
	case models.ColumnMonthAdded:
		return intCell(t.MonthAdded), nil
	case models.ColumnDurationValue:
		return intCell(t.Duration.Value), nil
	case models.ColumnDurationUnit:
		return stringCell(t.Duration.Unit), nil
	case models.ColumnDurationMinutes:
		return intCell(t.Duration.Minutes), nil
	case models.ColumnCountry:
		return t.Country, nil
	case models.ColumnRating:
		return t.Rating, nil
	case models.ColumnListedIn:
		return listCell(t.ListedIn)
	case models.ColumnCast:
		return listCell(t.Cast)
	case models.ColumnDirector:
		return listCell(t.Director)
	case models.ColumnMainGenre:
		return stringCell(t.MainGenre), nil
	case models.ColumnContentCategory:
		return t.ContentCategory, nil
	default:
		v, _ := t.Field(column)
		return v, nil
	}
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}

	return strconv.Itoa(*v)
}

func stringCell(v *string) string {
	if v == nil {
		return ""
	}

	return *v
}

func listCell(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(items); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
