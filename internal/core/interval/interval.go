// Package interval contains the pure logic for rendering elapsed time as an
// English phrase. It has no dependencies and no side effects.
package interval

import "fmt"

// Unit divisors for the day/hour/minute/second decomposition.
const (
	SecondsPerMinute int64 = 60
	SecondsPerHour   int64 = 60 * 60
	SecondsPerDay    int64 = 24 * 60 * 60
)

// Interval is an elapsed duration decomposed into whole display units.
type Interval struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Decompose splits a number of elapsed seconds into whole days, hours,
// minutes and seconds. Negative input is clamped to zero.
func Decompose(seconds int64) Interval {
	if seconds < 0 {
		seconds = 0
	}

	var iv Interval
	iv.Days = seconds / SecondsPerDay
	remainder := seconds % SecondsPerDay
	iv.Hours = remainder / SecondsPerHour
	remainder = remainder % SecondsPerHour
	iv.Minutes = remainder / SecondsPerMinute
	iv.Seconds = remainder % SecondsPerMinute
	return iv
}

// Humanize renders elapsed seconds as a phrase like
// "1 day, 2 hours, 3 minutes and 4 seconds". Only nonzero units appear,
// largest first. Zero elapsed time renders as "0 seconds", never "".
func Humanize(seconds int64) string {
	return Decompose(seconds).String()
}

// String renders the interval from its nonzero units, joined with commas
// and a final " and ".
func (iv Interval) String() string {
	var parts []string
	if iv.Days != 0 {
		parts = append(parts, formatCount(iv.Days, "day", "days"))
	}
	if iv.Hours != 0 {
		parts = append(parts, formatCount(iv.Hours, "hour", "hours"))
	}
	if iv.Minutes != 0 {
		parts = append(parts, formatCount(iv.Minutes, "minute", "minutes"))
	}
	if iv.Seconds != 0 {
		parts = append(parts, formatCount(iv.Seconds, "second", "seconds"))
	}

	if len(parts) == 0 {
		return "0 seconds"
	}

	out := parts[0]
	for i := 1; i < len(parts); i++ {
		if i == len(parts)-1 {
			out += " and " + parts[i]
		} else {
			out += ", " + parts[i]
		}
	}
	return out
}

func formatCount(count int64, single, plural string) string {
	unit := plural
	if count == 1 {
		unit = single
	}
	return fmt.Sprintf("%d %s", count, unit)
}
