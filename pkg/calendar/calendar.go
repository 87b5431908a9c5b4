package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the layout used for dates on the command line, in config
// files, and in JSON output.
const DateLayout = "2006-01-02"

// Date returns the start of t's calendar day in t's own location. That is
// midnight, or the first instant after it on days where clocks skip midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return startOfDay(y, m, d, t.Location())
}

func startOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	// A skipped midnight may resolve into the previous day
	for t.Day() != d {
		t = t.Add(time.Hour)
	}
	return t
}

// civil carries t's calendar date into UTC, where every day is 24 hours long.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsBusinessDay reports whether t falls on a weekday. Holidays are not
// considered.
func IsBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// AddBusinessDays returns the date n business days after t.
// It panics if n is negative.
func AddBusinessDays(t time.Time, n int) time.Time {
	return step(t, n, 1)
}

// SubtractBusinessDays returns the date n business days before t.
// It panics if n is negative.
func SubtractBusinessDays(t time.Time, n int) time.Time {
	return step(t, n, -1)
}

// step walks one calendar day at a time in direction dir until n business
// days have been consumed. The walk happens on civil dates so DST changes
// in t's location can't skip or repeat a day.
func step(t time.Time, n, dir int) time.Time {
	if n < 0 {
		panic(fmt.Sprintf("calendar: negative business day count %d", n))
	}
	day := civil(t)
	for remaining := n; remaining > 0; {
		day = day.AddDate(0, 0, dir)
		if IsBusinessDay(day) {
			remaining--
		}
	}
	y, m, d := day.Date()
	return startOfDay(y, m, d, t.Location())
}

// BusinessDaysBetween counts the business days after from up to and
// including to. It returns a negative count when to is before from.
func BusinessDaysBetween(from, to time.Time) int {
	from, to = civil(from), civil(to)
	sign := 1
	if to.Before(from) {
		from, to = to, from
		sign = -1
	}
	count := 0
	for d := from; d.Before(to); {
		d = d.AddDate(0, 0, 1)
		if IsBusinessDay(d) {
			count++
		}
	}
	return sign * count
}

// Parse reads a YYYY-MM-DD date in the local time zone.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// Format renders t as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(DateLayout)
}
