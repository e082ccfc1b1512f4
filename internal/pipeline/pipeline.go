// Package pipeline runs one cleaning pass: read the raw file, normalize it,
// write the cleaned copy and an optional summary report.
package pipeline

import (
	"fmt"
	"os"
	"time"

	"catalogclean/internal/config"
	"catalogclean/internal/csvio"
	"catalogclean/internal/logger"
	"catalogclean/internal/models"
	"catalogclean/internal/normalizer"
	"catalogclean/internal/report"
)

// Result describes a completed run.
type Result struct {
	OutputPath string
	ReportPath string
	Stats      normalizer.Stats
	Summary    *report.Summary
	Elapsed    time.Duration
}

// Run executes the pipeline described by cfg. A failed run leaves no cleaned
// output behind.
func Run(cfg *config.Config, log *logger.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	start := time.Now()

	log = log.With("input", cfg.Input.Path)
	log.Debug("effective configuration", "config", cfg.String())
	log.Info("reading raw catalog")

	raw, err := csvio.ReadFile(cfg.Input.Path)
	if err != nil {
		return nil, err
	}

	log.Info("loaded rows", "rows", raw.Len(), "columns", len(raw.Columns))

	processor := normalizer.NewProcessor(cfg.NormalizerOptions(), log)

	cleaned, stats, err := processor.Process(raw)
	if err != nil {
		return nil, err
	}

	logStats(log, stats)

	if err := csvio.WriteFile(cfg.Output.Path, cleaned); err != nil {
		return nil, err
	}

	res := &Result{
		OutputPath: cfg.Output.Path,
		Stats:      stats,
		Summary:    report.Build(cleaned),
	}

	if cfg.Output.ReportPath != "" {
		if err := res.Summary.WriteFile(cfg.Output.ReportPath); err != nil {
			if rmErr := os.Remove(cfg.Output.Path); rmErr != nil {
				log.Warn("failed to remove cleaned output after report error", "path", cfg.Output.Path, "error", rmErr)
			}

			return nil, err
		}

		res.ReportPath = cfg.Output.ReportPath
	}

	res.Elapsed = time.Since(start)

	log.Info("cleaning complete", "output", res.OutputPath, "rows", cleaned.Len(), "elapsed", res.Elapsed)

	return res, nil
}

func logStats(log *logger.Logger, s normalizer.Stats) {
	log.Info("normalized rows",
		"rows", s.Rows,
		"missing_"+models.ColumnDateAdded, s.MissingDates,
		"unparsed_"+models.ColumnDateAdded, s.UnparsedDates,
		"missing_"+models.ColumnDuration, s.MissingDurations,
		"unparsed_"+models.ColumnDuration, s.UnparsedDurations,
		"filled_"+models.ColumnCountry, s.FilledCountries,
		"filled_"+models.ColumnRating, s.FilledRatings,
		"no_genre", s.MissingGenres,
	)

	if s.UnparsedDates > 0 || s.UnparsedDurations > 0 {
		log.Warn("some values could not be parsed and were left empty",
			"dates", s.UnparsedDates,
			"durations", s.UnparsedDurations,
		)
	}
}
