// Package expiry classifies letters of guarantee against a target date and
// renders calendar-aware elapsed and remaining time.
//
// Everything in this package is a pure function of its arguments. Dates are
// compared as calendar days: callers pass any time.Time and only its
// year/month/day are used.
package expiry

import (
	"fmt"
	"strings"
	"time"
)

// ExpiringWindowDays is the lookahead used to decide that a letter is about to expire
const ExpiringWindowDays = 15

// noTimePhrase is rendered when every span component is zero
const noTimePhrase = "Menos de un día"

// Span is the calendar difference between two dates
type Span struct {
	// TotalDays is the midnight to midnight day count
	TotalDays int `json:"total_days"`
	// Years, Months and Days are the calendar decomposition of the difference:
	// whole years, then whole months after subtracting years, then days after
	// subtracting years and months.
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
	// Phrase is the human readable rendering, e.g. "10 meses, 17 días"
	Phrase string `json:"phrase"`
}

// Between returns the calendar span from `from` to `to`.
// The result is negative when to is before from.
func Between(from, to time.Time) Span {
	from = civil(from)
	to = civil(to)

	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	anchor := addMonths(from, months)
	if !to.Before(from) {
		for to.Before(anchor) {
			months--
			anchor = addMonths(from, months)
		}
	} else {
		for to.After(anchor) {
			months++
			anchor = addMonths(from, months)
		}
	}

	span := Span{
		TotalDays: daysBetween(from, to),
		Years:     months / 12,
		Months:    months % 12,
		Days:      daysBetween(anchor, to),
	}
	span.Phrase = phrase(span.Years, span.Months, span.Days)
	return span
}

// Elapsed returns the time a letter has been expired: from validity end to today
func Elapsed(validityEnd, today time.Time) Span {
	return Between(validityEnd, today)
}

// Remaining returns the time left until a letter expires: from today to validity end
func Remaining(validityEnd, today time.Time) Span {
	return Between(today, validityEnd)
}

// ExpiringUntil returns the last validity end date still considered "about to expire"
func ExpiringUntil(target time.Time) time.Time {
	return civil(target).AddDate(0, 0, ExpiringWindowDays)
}

// Status is the classification of the current record of a guarantee
type Status string

const (
	// StatusValid: validity end is after the expiring window (vigente)
	StatusValid Status = "vigente"
	// StatusExpiring: validity end falls within the expiring window (por vencer)
	StatusExpiring Status = "por_vencer"
	// StatusDueToday: validity end is the target date itself
	StatusDueToday Status = "vence_hoy"
	// StatusExpired: validity end is before the target date (vencida)
	StatusExpired Status = "vencida"
	// StatusClosed: the current status is not active (returned, executed)
	StatusClosed Status = "cerrada"
	// StatusUndetermined: an active record without a validity end
	StatusUndetermined Status = "sin_vigencia"
)

// Classify classifies a current record given whether its status is active and its validity end
func Classify(active bool, validityEnd *time.Time, target time.Time) Status {
	if !active {
		return StatusClosed
	}
	if validityEnd == nil {
		return StatusUndetermined
	}
	end := civil(*validityEnd)
	target = civil(target)
	switch {
	case end.Before(target):
		return StatusExpired
	case end.Equal(target):
		return StatusDueToday
	case !end.After(ExpiringUntil(target)):
		return StatusExpiring
	default:
		return StatusValid
	}
}

// ValidAt reports whether target falls inside the inclusive validity window
func ValidAt(validityStart, validityEnd *time.Time, target time.Time) bool {
	if validityStart == nil || validityEnd == nil {
		return false
	}
	target = civil(target)
	return !civil(*validityStart).After(target) && !civil(*validityEnd).Before(target)
}

func phrase(years, months, days int) string {
	parts := make([]string, 0, 3)
	if years > 0 {
		parts = append(parts, plural(years, "año", "años"))
	}
	if months > 0 {
		parts = append(parts, plural(months, "mes", "meses"))
	}
	if days > 0 {
		parts = append(parts, plural(days, "día", "días"))
	}
	if len(parts) == 0 {
		return noTimePhrase
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// civil keeps only the calendar date of t, as UTC midnight
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// addMonths adds n calendar months, clamping the day to the end of the target month
func addMonths(t time.Time, n int) time.Time {
	total := t.Year()*12 + int(t.Month()) - 1 + n
	year := floorDiv(total, 12)
	month := time.Month(total - year*12 + 1)
	day := t.Day()
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
