package domain

import "time"

// DateLayout is the civil date format used across the API
const DateLayout = "2006-01-02"

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// WithinDays reports whether t falls on a day in [from, to]. Zero bounds are open.
func WithinDays(t, from, to time.Time) bool {
	day := DateOf(t)
	if !from.IsZero() && day.Before(DateOf(from)) {
		return false
	}
	if !to.IsZero() && day.After(DateOf(to)) {
		return false
	}
	return true
}
