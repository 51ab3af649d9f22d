package interval

import (
	"strings"
	"testing"
)

func TestHumanize(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    string
	}{
		{"zero", 0, "0 seconds"},
		{"negative clamps to zero", -5, "0 seconds"},
		{"one second", 1, "1 second"},
		{"seconds only", 42, "42 seconds"},
		{"one minute exactly", 60, "1 minute"},
		{"minutes and seconds", 2*60 + 4, "2 minutes and 4 seconds"},
		{"one hour exactly", 3600, "1 hour"},
		{"hour minute second", 3600 + 2*60 + 4, "1 hour, 2 minutes and 4 seconds"},
		{"skips zero units", 3600 + 4, "1 hour and 4 seconds"},
		{"one day exactly", 86400, "1 day"},
		{"full decomposition", 93784, "1 day, 2 hours, 3 minutes and 4 seconds"},
		{"plural days", 2*86400 + 3600, "2 days and 1 hour"},
		{"day and seconds only", 86400 + 59, "1 day and 59 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Humanize(tt.seconds); got != tt.want {
				t.Errorf("Humanize(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestHumanize_NeverEmpty(t *testing.T) {
	// Spot-check a spread of values; the output must never be empty.
	for _, s := range []int64{0, 1, 59, 60, 61, 3599, 3600, 3601, 86399, 86400, 86401, 1<<31 - 1} {
		if Humanize(s) == "" {
			t.Errorf("Humanize(%d) returned empty string", s)
		}
	}
}

func TestDecompose(t *testing.T) {
	iv := Decompose(93784)
	if iv.Days != 1 || iv.Hours != 2 || iv.Minutes != 3 || iv.Seconds != 4 {
		t.Errorf("Decompose(93784) = %+v, want {1 2 3 4}", iv)
	}
}

func TestDecompose_UnitsMatchNonzeroValues(t *testing.T) {
	// The units appearing in the phrase are exactly the nonzero units of
	// the decomposition.
	for _, s := range []int64{0, 4, 60, 3604, 86404, 90000, 93784} {
		iv := Decompose(s)
		phrase := Humanize(s)

		check := func(value int64, single string) {
			has := strings.Contains(phrase, single)
			if value != 0 && !has {
				t.Errorf("Humanize(%d) = %q missing unit %q", s, phrase, single)
			}
			if value == 0 && has && s != 0 {
				t.Errorf("Humanize(%d) = %q contains zero unit %q", s, phrase, single)
			}
		}
		check(iv.Days, "day")
		check(iv.Hours, "hour")
		check(iv.Minutes, "minute")
		check(iv.Seconds, "second")
	}
}
