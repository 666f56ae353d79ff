package tater

import "time"

// Date is a civil date without a time-of-day component. Localize formats a
// Date through "date.formats.*" and never substitutes the %p/%P meridiem
// tokens for it, whereas a time.Time goes through "time.formats.*".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the civil date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the civil date on which t falls, in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Time returns the date at midnight UTC, the instant used for formatting.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String returns the date in ISO 8601 form (yyyy-mm-dd).
func (d Date) String() string {
	return d.Time().Format(time.DateOnly)
}
