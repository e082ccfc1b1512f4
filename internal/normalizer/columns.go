package normalizer

import (
	"fmt"
	"strings"

	"catalogclean/internal/models"
)

// NormalizeColumnName trims the name, lower-cases it and replaces spaces with
// underscores, so "  Date Added" becomes "date_added".
func NormalizeColumnName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// normalizeColumns returns a copy of ds with every column name normalized.
// The input dataset is left untouched.
func normalizeColumns(ds *models.Dataset) (*models.Dataset, error) {
	renamed := make(map[string]string, len(ds.Columns))
	columns := make([]string, 0, len(ds.Columns))
	seen := make(map[string]string, len(ds.Columns))

	for _, raw := range ds.Columns {
		name := NormalizeColumnName(raw)
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q and %q both normalize to %q", ErrDuplicateColumn, prev, raw, name)
		}

		seen[name] = raw
		renamed[raw] = name
		columns = append(columns, name)
	}

	rows := make([]models.Record, len(ds.Rows))

	for i, row := range ds.Rows {
		out := make(models.Record, len(row))

		for k, v := range row {
			if name, ok := renamed[k]; ok {
				out[name] = v
			} else {
				out[NormalizeColumnName(k)] = v
			}
		}

		rows[i] = out
	}

	return &models.Dataset{Columns: columns, Rows: rows}, nil
}
