// Package stay holds calendar-day arithmetic for stays.
package stay

import (
	"errors"
	"iter"
	"math"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	day        = 24 * time.Hour
)

var ErrInvalidDate = errors.New("invalid date")

// NightsBetween returns ceil((checkOut-checkIn)/24h). Absent (zero) dates and
// non-positive ranges yield 0, which callers treat as "no valid stay yet".
func NightsBetween(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(float64(d) / float64(day)))
}

// EnumerateDates yields every calendar day in [start, end). The checkout day
// is not occupied and therefore not yielded.
func EnumerateDates(start, end time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if start.IsZero() || end.IsZero() {
			return
		}
		first := Day(start)
		for d := first; d.Before(end); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Day truncates t to its calendar day at UTC midnight.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// ParseDate accepts "2006-01-02" or an RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return Day(t), nil
}

// ParseDateOrZero maps unparseable input to the zero time (absent date).
func ParseDateOrZero(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
