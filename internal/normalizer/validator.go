package normalizer

import (
	"errors"
	"fmt"

	"catalogclean/internal/models"
)

// Schema errors. They mean the upstream file format changed and are never
// recovered per row.
var (
	ErrNilDataset      = errors.New("dataset is nil")
	ErrMissingColumn   = errors.New("required column missing")
	ErrDuplicateColumn = errors.New("duplicate column after normalization")
)

// RequiredColumns are the normalized columns every input dataset must carry.
var RequiredColumns = []string{
	models.ColumnDateAdded,
	models.ColumnDuration,
	models.ColumnCountry,
	models.ColumnRating,
	models.ColumnListedIn,
	models.ColumnCast,
	models.ColumnDirector,
}

// Validator checks that a dataset has the shape the transformer relies on.
type Validator struct {
	required []string
}

// NewValidator creates a validator for RequiredColumns.
func NewValidator() *Validator {
	return &Validator{required: RequiredColumns}
}

// Validate checks a dataset whose column names are already normalized.
func (v *Validator) Validate(ds *models.Dataset) error {
	if ds == nil {
		return ErrNilDataset
	}

	for _, col := range v.required {
		if !ds.HasColumn(col) {
			return fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	return nil
}
