package service

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

// WindowDays is the length of every trailing series, the selected day included
const WindowDays = 7

var ErrInvalidDate = errors.New("invalid date, use YYYY-MM-DD")

// Clock resolves "today" and request dates in the dashboard's time zone
type Clock struct {
	Location *time.Location
	Now      func() time.Time
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Location: loc, Now: time.Now}
}

// Today returns midnight of the current date in the clock's location
func (c Clock) Today() time.Time {
	now := c.Now().In(c.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.Location)
}

// ParseDate parses YYYY-MM-DD; an empty string means today
func (c Clock) ParseDate(s string) (time.Time, error) {
	if s == "" {
		return c.Today(), nil
	}
	d, err := time.ParseInLocation(DateLayout, s, c.Location)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	// the trailing window must not reach back before year 1
	if windowStart(d).Year() < 1 {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// windowStart returns the first day of the trailing window ending at day
func windowStart(day time.Time) time.Time {
	return day.AddDate(0, 0, -(WindowDays - 1))
}
