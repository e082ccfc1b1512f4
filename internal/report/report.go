// Package report summarizes a cleaned catalog for a quick sanity check.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"catalogclean/internal/formatter"
	"catalogclean/internal/models"
)

// Count is one labelled tally.
type Count struct {
	Label string
	N     int
}

// Summary holds aggregate counts over a cleaned dataset.
type Summary struct {
	Titles     int
	Categories []Count
	Types      []Count
	FirstYear  *int
	LastYear   *int
	Undated    int
}

// Build tallies content categories (every category, in priority order), the
// values of the type column when present, and the span of year_added.
func Build(ds *models.CleanDataset) *Summary {
	s := &Summary{Titles: ds.Len()}

	byCategory := make(map[string]int, len(models.Categories))
	byType := make(map[string]int)

	for i := range ds.Titles {
		t := &ds.Titles[i]
		byCategory[t.ContentCategory]++

		if typ, ok := t.Field(models.ColumnType); ok {
			byType[typ]++
		}

		if t.YearAdded == nil {
			s.Undated++
			continue
		}

		year := *t.YearAdded
		if s.FirstYear == nil || year < *s.FirstYear {
			s.FirstYear = &year
		}

		if s.LastYear == nil || year > *s.LastYear {
			s.LastYear = &year
		}
	}

	for _, c := range models.Categories {
		s.Categories = append(s.Categories, Count{Label: c, N: byCategory[c]})
	}

	for label, n := range byType {
		s.Types = append(s.Types, Count{Label: label, N: n})
	}

	sort.Slice(s.Types, func(i, j int) bool {
		if s.Types[i].N != s.Types[j].N {
			return s.Types[i].N > s.Types[j].N
		}

		return s.Types[i].Label < s.Types[j].Label
	})

	return s
}

// Markdown renders the summary as markdown tables.
func (s *Summary) Markdown() string {
	var sb strings.Builder

	sb.WriteString("# Catalog summary\n\n")
	fmt.Fprintf(&sb, "- Titles: %d\n", s.Titles)

	if s.FirstYear != nil {
		fmt.Fprintf(&sb, "- Added: %d to %d\n", *s.FirstYear, *s.LastYear)
	}

	fmt.Fprintf(&sb, "- Without date added: %d\n\n", s.Undated)

	sb.WriteString("## Content categories\n\n")
	sb.WriteString(countTable("Category", s.Categories, s.Titles))

	if len(s.Types) > 0 {
		sb.WriteString("\n## Types\n\n")
		sb.WriteString(countTable("Type", s.Types, s.Titles))
	}

	return sb.String()
}

// WriteFile writes the markdown summary to path, creating parent directories.
// The file is written under a temporary name and renamed into place.
func (s *Summary) WriteFile(path string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp report: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(s.Markdown()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp report: %w", err)
	}

	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set report permissions: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move report into place: %w", err)
	}

	return nil
}

func countTable(label string, counts []Count, total int) string {
	tb := formatter.NewTable(label, "Titles", "Share").AlignRight(1).AlignRight(2)

	for _, c := range counts {
		tb.AddRow(c.Label, strconv.Itoa(c.N), share(c.N, total))
	}

	return tb.Render()
}

func share(n, total int) string {
	if total == 0 {
		return "0.0%"
	}

	return fmt.Sprintf("%.1f%%", float64(n)*100/float64(total))
}
