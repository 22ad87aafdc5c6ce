// Package valueobject defines immutable value objects for the domain layer.
package valueobject

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateKey is a calendar date without any timezone attached.
// Its canonical string form is YYYY-MM-DD.
type DateKey struct {
	Year  int
	Month int // 1-12
	Day   int
}

// ParseDateKey parses the first 10 characters of s as YYYY-MM-DD.
// It never goes through time.Parse so a date cannot drift across a timezone boundary.
// The second return value is false for anything malformed or for a date that does not
// exist on the calendar, such as month 13 or February 30th.
func ParseDateKey(s string) (DateKey, bool) {
	if len(s) > 10 {
		s = s[:10]
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return DateKey{}, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || p == "" || strings.HasPrefix(p, "+") || n < 0 {
			return DateKey{}, false
		}
		nums[i] = n
	}

	d := DateKey{Year: nums[0], Month: nums[1], Day: nums[2]}
	if !d.Valid() {
		return DateKey{}, false
	}
	return d, true
}

// Valid reports whether d names a real calendar day in years 0 through MaxYear.
func (d DateKey) Valid() bool {
	if !ValidYearMonth(d.Year, d.Month) {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// MaxYear is the last year a four-digit key can carry.
const MaxYear = 9999

// ValidYearMonth reports whether year/month can be written as a canonical YYYY-MM key.
func ValidYearMonth(year, month int) bool {
	return year >= 0 && year <= MaxYear && month >= 1 && month <= 12
}

// FormatDateKey renders year, month and day as YYYY-MM-DD.
func FormatDateKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// MonthKey returns the YYYY-MM month-key of a date key string, or "" when s is not a valid date key.
func MonthKey(s string) string {
	d, ok := ParseDateKey(s)
	if !ok {
		return ""
	}
	return d.MonthKey()
}

// MonthKeyOf formats a year and 1-indexed month as YYYY-MM.
func MonthKeyOf(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ParseMonthKey parses a canonical YYYY-MM month-key with a month in 1-12.
func ParseMonthKey(s string) (year, month int, ok bool) {
	if len(s) != 7 {
		return 0, 0, false
	}
	d, ok := ParseDateKey(s + "-01")
	if !ok || d.MonthKey() != s {
		return 0, 0, false
	}
	return d.Year, d.Month, true
}

// DateKeyFromTime returns the wall-clock date of t in its own location.
func DateKeyFromTime(t time.Time) DateKey {
	return DateKey{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// String implements fmt.Stringer.
func (d DateKey) String() string {
	return FormatDateKey(d.Year, d.Month, d.Day)
}

// MonthKey returns the YYYY-MM month-key of the date.
func (d DateKey) MonthKey() string {
	return MonthKeyOf(d.Year, d.Month)
}

// SameMonth reports whether d and other fall in the same calendar month.
func (d DateKey) SameMonth(other DateKey) bool {
	return d.Year == other.Year && d.Month == other.Month
}

// After reports whether d is strictly later than other.
func (d DateKey) After(other DateKey) bool {
	if d.Year != other.Year {
		return d.Year > other.Year
	}
	if d.Month != other.Month {
		return d.Month > other.Month
	}
	return d.Day > other.Day
}

// DaysInMonth returns the number of days of the given 1-indexed month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay bounds day to [1, last day of year/month].
func ClampDay(year, month, day int) int {
	if day < 1 {
		return 1
	}
	if last := DaysInMonth(year, month); day > last {
		return last
	}
	return day
}
