// Package workday holds the single working-day predicate shared by leave
// submission and leave approval.
package workday

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

// HoursPerDay is the length of a derived leave log.
const HoursPerDay = 8

var ErrInvalidRange = errors.New("workday: end before start")

type Calendar struct {
	loc *time.Location
}

// NewCalendar builds a Monday-Friday calendar in loc (UTC when nil).
func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

func (c Calendar) IsWorkingDay(t time.Time) bool {
	switch t.In(c.Location()).Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}

// Midnight returns local midnight of t's calendar date.
func (c Calendar) Midnight(t time.Time) time.Time {
	loc := c.Location()
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// FromDate reinterprets the wall-clock date of t (as stored in a DATE column,
// usually UTC midnight) as local midnight in the calendar's location.
func (c Calendar) FromDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.Location())
}

// WorkingDays lists local midnights of each working day in [start, end], both
// inclusive. Day stepping goes through time.Date so DST shifts never skip a day.
func (c Calendar) WorkingDays(start, end time.Time) []time.Time {
	from := c.Midnight(start)
	to := c.Midnight(end)
	if to.Before(from) {
		return nil
	}

	var days []time.Time
	for d := from; !d.After(to); d = time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, d.Location()) {
		if c.IsWorkingDay(d) {
			days = append(days, d)
		}
	}
	return days
}

func (c Calendar) NetWorkDays(start, end time.Time) int {
	return len(c.WorkingDays(start, end))
}

// ParseDate reads a YYYY-MM-DD date as local midnight.
func (c Calendar) ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, c.Location())
}

// ParseRange parses both bounds and rejects end < start.
func (c Calendar) ParseRange(start, end string) (time.Time, time.Time, error) {
	from, err := c.ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := c.ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return from, to, nil
}
