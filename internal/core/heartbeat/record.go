// Package heartbeat contains the pure business logic for heartbeat records:
// validation, status rendering, and overdue evaluation. Functions here have
// no side effects and do not touch persistence.
package heartbeat

import (
	"fmt"
	"strings"

	"github.com/example/hb/internal/core/interval"
)

// Record is a heartbeat definition plus its most recent ping.
// LastPing is epoch seconds; zero means the heartbeat was never pinged.
type Record struct {
	Code            string
	LastLine        string // template with exactly one %s for the elapsed phrase
	NeverLine       string // shown verbatim while never pinged
	LeniencySeconds int64  // 0 = never considered overdue
	LastPing        int64
}

// Validate checks a heartbeat definition against the data model.
// Rules:
// - code must be non-empty
// - last line template must contain exactly one %s verb
// - leniency must not be negative
func Validate(code, lastLine, neverLine string, leniencySeconds int64) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: code must not be empty", ErrMalformedRecord)
	}
	n, ok := templateVerbs(lastLine)
	if !ok {
		return fmt.Errorf("%w: last line template for %s may only use %%s and %%%%", ErrMalformedRecord, code)
	}
	if n != 1 {
		return fmt.Errorf("%w: last line template for %s must contain exactly one %%s (found %d)", ErrMalformedRecord, code, n)
	}
	if leniencySeconds < 0 {
		return fmt.Errorf("%w: leniency for %s must not be negative", ErrMalformedRecord, code)
	}
	return nil
}

// templateVerbs counts %s verbs in a template, treating %% as an escaped
// percent. Any other verb (or a trailing bare %) makes the template invalid,
// since it would corrupt the rendered line.
func templateVerbs(template string) (count int, ok bool) {
	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			continue
		}
		if i+1 >= len(template) {
			return count, false
		}
		switch template[i+1] {
		case 's':
			count++
		case '%':
			// escaped percent, skip the pair
		default:
			return count, false
		}
		i++
	}
	return count, true
}

// Render produces the display line for a record at the given time.
// A never-pinged record renders its never line verbatim, with no
// substitution. Otherwise the last line template is filled with the
// humanized elapsed time.
func Render(r Record, now int64) string {
	if r.LastPing == 0 {
		return r.NeverLine
	}
	return fmt.Sprintf(r.LastLine, interval.Humanize(now-r.LastPing))
}

// StatusLine produces the generic one-record status, independent of the
// record's own templates.
func StatusLine(r Record, now int64) string {
	if r.LastPing == 0 {
		return fmt.Sprintf("%s has never been done", r.Code)
	}
	return fmt.Sprintf("%s was last done %s ago", r.Code, interval.Humanize(now-r.LastPing))
}

// IsOverdue reports whether the elapsed time since the last ping exceeds
// the record's leniency. Records with zero leniency or no ping yet are
// never overdue.
func IsOverdue(r Record, now int64) bool {
	if r.LeniencySeconds <= 0 || r.LastPing == 0 {
		return false
	}
	return now-r.LastPing > r.LeniencySeconds
}
