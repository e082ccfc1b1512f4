package models

import "time"

// Content categories assigned by keyword classification of the main genre.
const (
	CategoryKids        = "Kids"
	CategoryDocumentary = "Documentary"
	CategoryComedy      = "Comedy"
	CategoryAction      = "Action"
	CategoryRomance     = "Romance"
	CategoryHorror      = "Horror"
	CategoryDrama       = "Drama"
	CategoryOther       = "Other"
)

// Categories lists every content category in classification priority order,
// with Other last.
var Categories = []string{
	CategoryKids,
	CategoryDocumentary,
	CategoryComedy,
	CategoryAction,
	CategoryRomance,
	CategoryHorror,
	CategoryDrama,
	CategoryOther,
}

// Column names the cleaner reads or derives.
const (
	ColumnDateAdded       = "date_added"
	ColumnDuration        = "duration"
	ColumnCountry         = "country"
	ColumnRating          = "rating"
	ColumnListedIn        = "listed_in"
	ColumnCast            = "cast"
	ColumnDirector        = "director"
	ColumnType            = "type"
	ColumnYearAdded       = "year_added"
	ColumnMonthAdded      = "month_added"
	ColumnDurationValue   = "duration_value"
	ColumnDurationUnit    = "duration_unit"
	ColumnDurationMinutes = "duration_minutes"
	ColumnMainGenre       = "main_genre"
	ColumnContentCategory = "content_category"
)

// DerivedColumns are appended after the source columns in cleaned output.
var DerivedColumns = []string{
	ColumnYearAdded,
	ColumnMonthAdded,
	ColumnDurationValue,
	ColumnDurationUnit,
	ColumnDurationMinutes,
	ColumnMainGenre,
	ColumnContentCategory,
}

// Duration is the parsed form of the free-text duration cell.
type Duration struct {
	Value   *int    `json:"value"`
	Unit    *string `json:"unit"`
	Minutes *int    `json:"minutes"`
}

// Title is one cleaned catalog record. Nil pointers are missing values.
type Title struct {
	// Fields holds every source column that has no typed field below, keyed
	// by normalized name. Missing cells are absent.
	Fields map[string]string `json:"fields"`

	DateAdded       *time.Time `json:"dateAdded"`
	YearAdded       *int       `json:"yearAdded"`
	MonthAdded      *int       `json:"monthAdded"`
	Duration        Duration   `json:"duration"`
	Country         string     `json:"country"`
	Rating          string     `json:"rating"`
	ListedIn        []string   `json:"listedIn"`
	Cast            []string   `json:"cast"`
	Director        []string   `json:"director"`
	MainGenre       *string    `json:"mainGenre"`
	ContentCategory string     `json:"contentCategory"`
}

// Field returns a passthrough column value.
func (t *Title) Field(column string) (string, bool) {
	v, ok := t.Fields[column]
	return v, ok
}

// CleanDataset is the normalizer output: the normalized source header and one
// title per input row, in input order.
type CleanDataset struct {
	Columns []string
	Titles  []Title
}

// Len returns the number of titles.
func (d *CleanDataset) Len() int {
	if d == nil {
		return 0
	}

	return len(d.Titles)
}

// OutputColumns returns the source columns followed by every derived column
// not already present in the source header.
func (d *CleanDataset) OutputColumns() []string {
	seen := make(map[string]bool, len(d.Columns))
	out := make([]string, 0, len(d.Columns)+len(DerivedColumns))

	for _, c := range d.Columns {
		seen[c] = true
		out = append(out, c)
	}

	for _, c := range DerivedColumns {
		if !seen[c] {
			out = append(out, c)
		}
	}

	return out
}
