package normalizer

import (
	"math"
	"strconv"
	"testing"
)

// overflowSeasons is the smallest season count whose minutes overflow int.
const overflowSeasons = math.MaxInt/DefaultMinutesPerSeason + 1

func TestParseDuration(t *testing.T) {
	tests := []struct {
		raw         string
		wantValue   int
		wantUnit    string
		wantMinutes int
		noValue     bool
		noUnit      bool
		noMinutes   bool
	}{
		{raw: "90 min", wantValue: 90, wantUnit: "min", wantMinutes: 90},
		{raw: "2 Seasons", wantValue: 2, wantUnit: "Seasons", wantMinutes: 90},
		{raw: "1 Season", wantValue: 1, wantUnit: "Season", wantMinutes: 45},
		{raw: "125 MIN", wantValue: 125, wantUnit: "MIN", wantMinutes: 125},
		{raw: "3", wantValue: 3, wantMinutes: 135, noUnit: true},
		{raw: "min", wantUnit: "min", noValue: true},
		{raw: "", noValue: true, noUnit: true},
		{raw: "1h30", wantValue: 1, wantUnit: "h", wantMinutes: 45},
		{raw: "٩٠ min", wantValue: 90, wantUnit: "min", wantMinutes: 90},
		{raw: "२ Seasons", wantValue: 2, wantUnit: "Seasons", wantMinutes: 90},
		{raw: "99999999999999999999 min", wantUnit: "min", noValue: true},
		{raw: strconv.Itoa(overflowSeasons) + " Seasons", wantValue: overflowSeasons, wantUnit: "Seasons", noMinutes: true},
		{raw: strconv.Itoa(math.MaxInt) + " min", wantValue: math.MaxInt, wantUnit: "min", wantMinutes: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			d := ParseDuration(tt.raw, DefaultMinutesPerSeason)

			if tt.noValue {
				if d.Value != nil || d.Minutes != nil {
					t.Errorf("Value/Minutes = %v/%v, want nil", d.Value, d.Minutes)
				}
			} else {
				if d.Value == nil || *d.Value != tt.wantValue {
					t.Errorf("Value = %v, want %d", d.Value, tt.wantValue)
				}

				switch {
				case tt.noMinutes:
					if d.Minutes != nil {
						t.Errorf("Minutes = %d, want nil on overflow", *d.Minutes)
					}
				case d.Minutes == nil || *d.Minutes != tt.wantMinutes:
					t.Errorf("Minutes = %v, want %d", d.Minutes, tt.wantMinutes)
				}
			}

			if tt.noUnit {
				if d.Unit != nil {
					t.Errorf("Unit = %q, want nil", *d.Unit)
				}
			} else if d.Unit == nil || *d.Unit != tt.wantUnit {
				t.Errorf("Unit = %v, want %q", d.Unit, tt.wantUnit)
			}
		})
	}
}

func TestParseDuration_CustomSeasonLength(t *testing.T) {
	d := ParseDuration("4 Seasons", 60)
	if d.Minutes == nil || *d.Minutes != 240 {
		t.Errorf("Minutes = %v, want 240", d.Minutes)
	}
}

func TestDigitValue(t *testing.T) {
	tests := map[rune]int{
		'0': 0, '7': 7, '9': 9,
		'٠': 0, '٩': 9,
		'०': 0, '५': 5,
		'𝟎': 0, '𝟗': 9, '𝟘': 0, '𝟡': 9,
	}

	for r, want := range tests {
		if got := digitValue(r); got != want {
			t.Errorf("digitValue(%q) = %d, want %d", r, got, want)
		}
	}
}
