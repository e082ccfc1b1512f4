package normalizer

import (
	"catalogclean/internal/models"
)

// Default fill values for missing cells.
const (
	DefaultUnknownCountry = "Unknown"
	DefaultUnratedRating  = "Not Rated"
)

// Options tune the per-row derivations.
type Options struct {
	MinutesPerSeason int
	UnknownCountry   string
	UnratedRating    string
}

// DefaultOptions returns the stock cleaning options.
func DefaultOptions() Options {
	return Options{
		MinutesPerSeason: DefaultMinutesPerSeason,
		UnknownCountry:   DefaultUnknownCountry,
		UnratedRating:    DefaultUnratedRating,
	}
}

// Stats counts the per-field degradations seen during one run.
type Stats struct {
	Rows              int
	MissingDates      int
	UnparsedDates     int
	MissingDurations  int
	UnparsedDurations int
	FilledCountries   int
	FilledRatings     int
	MissingGenres     int
}

// typedColumns are read into Title's typed fields and kept out of Title.Fields.
var typedColumns = map[string]bool{
	models.ColumnDateAdded:       true,
	models.ColumnCountry:         true,
	models.ColumnRating:          true,
	models.ColumnListedIn:        true,
	models.ColumnCast:            true,
	models.ColumnDirector:        true,
	models.ColumnYearAdded:       true,
	models.ColumnMonthAdded:      true,
	models.ColumnDurationValue:   true,
	models.ColumnDurationUnit:    true,
	models.ColumnDurationMinutes: true,
	models.ColumnMainGenre:       true,
	models.ColumnContentCategory: true,
}

// Transformer derives a cleaned title from one normalized record.
type Transformer struct {
	opts Options
}

// NewTransformer creates a transformer. Zero-valued options fall back to the
// defaults.
func NewTransformer(opts Options) *Transformer {
	def := DefaultOptions()

	if opts.MinutesPerSeason <= 0 {
		opts.MinutesPerSeason = def.MinutesPerSeason
	}

	if opts.UnknownCountry == "" {
		opts.UnknownCountry = def.UnknownCountry
	}

	if opts.UnratedRating == "" {
		opts.UnratedRating = def.UnratedRating
	}

	return &Transformer{opts: opts}
}

// Transform builds the title for rec and records degradations in stats.
// It never fails: unusable values become nil or their documented default.
func (t *Transformer) Transform(rec models.Record, stats *Stats) models.Title {
	title := models.Title{Fields: make(map[string]string, len(rec))}

	for k, v := range rec {
		if !typedColumns[k] {
			title.Fields[k] = v
		}
	}

	stats.Rows++

	if raw, ok := rec.Lookup(models.ColumnDateAdded); ok {
		title.DateAdded = ParseDate(raw)
		if title.DateAdded == nil {
			stats.UnparsedDates++
		}
	} else {
		stats.MissingDates++
	}

	if title.DateAdded != nil {
		year, month := title.DateAdded.Year(), int(title.DateAdded.Month())
		title.YearAdded = &year
		title.MonthAdded = &month
	}

	if raw, ok := rec.Lookup(models.ColumnDuration); ok {
		title.Duration = ParseDuration(raw, t.opts.MinutesPerSeason)
		if title.Duration.Value == nil {
			stats.UnparsedDurations++
		}
	} else {
		stats.MissingDurations++
	}

	title.Country = t.fill(rec, models.ColumnCountry, t.opts.UnknownCountry, &stats.FilledCountries)
	title.Rating = t.fill(rec, models.ColumnRating, t.opts.UnratedRating, &stats.FilledRatings)

	title.ListedIn = SplitList(rec[models.ColumnListedIn])
	title.Cast = SplitList(rec[models.ColumnCast])
	title.Director = SplitList(rec[models.ColumnDirector])

	if len(title.ListedIn) > 0 {
		genre := title.ListedIn[0]
		title.MainGenre = &genre
	} else {
		stats.MissingGenres++
	}

	title.ContentCategory = Categorize(title.MainGenre)

	return title
}

func (t *Transformer) fill(rec models.Record, column, fallback string, filled *int) string {
	if v, ok := rec.Lookup(column); ok {
		return v
	}

	*filled++

	return fallback
}
