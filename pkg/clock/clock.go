// Package clock converts between HH:MM wall-clock strings, calendar dates and
// elapsed minutes.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// MinutesPerDay is added when a wake time does not come after the bed time.
	MinutesPerDay = 24 * 60

	// DateLayout is the calendar date key used for daily records.
	DateLayout = "2006-01-02"
)

var (
	ErrInvalidClock = errors.New("invalid clock time")
	ErrInvalidDate  = errors.New("invalid date")
)

// Clock is a local time of day.
type Clock struct {
	Hour   int
	Minute int
}

// Parse parses "HH:MM" (24h). A single-digit hour is accepted; signs,
// spaces and other non-digits are not.
func Parse(s string) (Clock, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 || !digits(hh) || !digits(mm) {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hour, _ := strconv.Atoi(hh)
	minute, _ := strconv.Atoi(mm)
	if hour > 23 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Valid reports whether s parses as a clock time.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Format renders an hour and minute as zero-padded "HH:MM".
func Format(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func (c Clock) String() string {
	return Format(c.Hour, c.Minute)
}

// Minutes returns minutes after midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// FromMinutes converts minutes after midnight to a Clock, wrapping values
// outside a single day.
func FromMinutes(minutes int) Clock {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return Clock{Hour: minutes / 60, Minute: minutes % 60}
}

// FromTime returns the wall-clock time of t in its own location.
func FromTime(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// MinutesBetweenClocks returns the minutes from bed to wake. A wake time at or
// before the bed time is taken to be on the next day, so equal times yield a
// full day.
func MinutesBetweenClocks(bed, wake Clock) int {
	diff := wake.Minutes() - bed.Minutes()
	if diff <= 0 {
		diff += MinutesPerDay
	}
	return diff
}

// MinutesBetween is MinutesBetweenClocks over "HH:MM" strings. Malformed
// input yields 0.
func MinutesBetween(bed, wake string) int {
	b, err := Parse(bed)
	if err != nil {
		return 0
	}
	w, err := Parse(wake)
	if err != nil {
		return 0
	}
	return MinutesBetweenClocks(b, w)
}

// SplitMinutes splits a minute total into whole hours and remaining minutes.
func SplitMinutes(total int) (hours, minutes int) {
	if total < 0 {
		total = 0
	}
	return total / 60, total % 60
}

// NextOccurrence returns the first instant strictly after now, in now's
// location, that falls on weekday at hour:minute.
func NextOccurrence(weekday time.Weekday, hour, minute int, now time.Time) time.Time {
	daysAhead := (int(weekday) - int(now.Weekday()) + 7) % 7
	candidate := time.Date(now.Year(), now.Month(), now.Day()+daysAhead, hour, minute, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = time.Date(now.Year(), now.Month(), now.Day()+daysAhead+7, hour, minute, 0, 0, now.Location())
	}
	return candidate
}

// ParseDate parses a "YYYY-MM-DD" key as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ValidDate reports whether s is a "YYYY-MM-DD" calendar date.
func ValidDate(s string) bool {
	_, err := ParseDate(s, time.UTC)
	return err == nil
}

// FormatDate returns the calendar date of t in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays shifts a date key by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date, time.UTC)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}
