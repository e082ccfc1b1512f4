package normalizer

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"catalogclean/internal/models"
)

// DefaultMinutesPerSeason is the runtime assumed for one unit of any
// duration not expressed in minutes.
const DefaultMinutesPerSeason = 45

const minuteUnit = "min"

var (
	digitRun = regexp.MustCompile(`\p{Nd}+`)
	alphaRun = regexp.MustCompile(`[A-Za-z]+`)
)

// ParseDuration splits a free-text duration such as "90 min" or "2 Seasons"
// into its first number and first word, and converts the number to minutes.
// Any unit other than "min", including a missing one, counts as
// minutesPerSeason minutes per unit. Minutes stay nil when the conversion
// would overflow int.
func ParseDuration(raw string, minutesPerSeason int) models.Duration {
	var d models.Duration

	if m := digitRun.FindString(raw); m != "" {
		if n, ok := parseDigits(m); ok {
			d.Value = &n
		}
	}

	if m := alphaRun.FindString(raw); m != "" {
		d.Unit = &m
	}

	if d.Value == nil {
		return d
	}

	minutes := *d.Value
	if d.Unit == nil || !strings.EqualFold(*d.Unit, minuteUnit) {
		if minutesPerSeason > 0 && minutes > math.MaxInt/minutesPerSeason {
			return d
		}

		minutes *= minutesPerSeason
	}

	d.Minutes = &minutes

	return d
}

// parseDigits converts a run of Unicode decimal digits ("90", "٩٠") to an int.
// It reports false on overflow.
func parseDigits(s string) (int, bool) {
	n := 0

	for _, r := range s {
		v := digitValue(r)
		if n > (math.MaxInt-v)/10 {
			return 0, false
		}

		n = n*10 + v
	}

	return n, true
}

// digitValue returns the value of decimal digit r. Unicode assigns each
// script's digits as one contiguous 0-9 run, so the value is the number of
// digits directly below r, modulo 10.
func digitValue(r rune) int {
	below := 0
	for unicode.IsDigit(r - rune(below) - 1) {
		below++
	}

	return below % 10
}
