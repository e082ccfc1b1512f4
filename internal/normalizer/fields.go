package normalizer

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const listSeparator = ", "

// ParseDate parses a free-text date in any common layout ("September 25, 2021",
// "2021-09-25", "25/09/2021"). Slash dates are read month first and retried
// day first when the month is out of range. Surrounding whitespace is
// ignored. It returns nil when the value is empty or not a date.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	t, err := dateparse.ParseIn(s, time.UTC, dateparse.RetryAmbiguousDateWithSwap(true))
	if err != nil {
		return nil
	}

	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	return &day
}

// SplitList splits a comma-separated cell on ", ". An empty cell yields an
// empty, non-nil slice. A cell already holding a JSON string array, as
// written by the cleaner, is decoded as-is.
func SplitList(raw string) []string {
	if raw == "" {
		return []string{}
	}

	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		var items []string
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			if items == nil {
				items = []string{}
			}

			return items
		}
	}

	return strings.Split(raw, listSeparator)
}
