// Package normalizer turns a raw catalog dataset into cleaned titles with
// typed dates, durations, genre lists and a coarse content category.
package normalizer

import (
	"fmt"

	"catalogclean/internal/logger"
	"catalogclean/internal/models"
)

// Processor validates the dataset schema, then transforms every row.
type Processor struct {
	validator   *Validator
	transformer *Transformer
	log         *logger.Logger
}

// NewProcessor creates a processor. A nil log discards debug output.
func NewProcessor(opts Options, log *logger.Logger) *Processor {
	if log == nil {
		log = logger.Discard()
	}

	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(opts),
		log:         log,
	}
}

// Process normalizes column names, checks the schema and derives one title per
// input row, in order. The input dataset is not modified. The only errors are
// schema errors; per-row problems are reflected in the returned Stats.
func (p *Processor) Process(ds *models.Dataset) (*models.CleanDataset, Stats, error) {
	var stats Stats

	if ds == nil {
		return nil, stats, ErrNilDataset
	}

	normalized, err := normalizeColumns(ds)
	if err != nil {
		return nil, stats, fmt.Errorf("schema check failed: %w", err)
	}

	if err := p.validator.Validate(normalized); err != nil {
		return nil, stats, fmt.Errorf("schema check failed: %w", err)
	}

	out := &models.CleanDataset{
		Columns: normalized.Columns,
		Titles:  make([]models.Title, 0, len(normalized.Rows)),
	}

	for i, rec := range normalized.Rows {
		before := stats
		title := p.transformer.Transform(rec, &stats)

		if stats.UnparsedDates > before.UnparsedDates {
			p.log.Debug("unparseable date_added", "row", i, "value", rec[models.ColumnDateAdded])
		}

		if stats.UnparsedDurations > before.UnparsedDurations {
			p.log.Debug("duration without a number", "row", i, "value", rec[models.ColumnDuration])
		}

		out.Titles = append(out.Titles, title)
	}

	return out, stats, nil
}

// Normalize cleans ds with the default options.
func Normalize(ds *models.Dataset) (*models.CleanDataset, error) {
	out, _, err := NewProcessor(DefaultOptions(), nil).Process(ds)
	return out, err
}
