// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package grid

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the day/month/year form used for column headers
	DateLayout = "02/01/2006"

	// InputDateLayout is the form submitted by an HTML date input
	InputDateLayout = "2006-01-02"

	// HoursPerDay is the number of hourly slots under each date column
	HoursPerDay = 24
)

var ErrInvalidStartDate = errors.New("invalid start date")

// GenerateDates returns durationDays header labels starting at start.
// Non-positive durations yield an empty slice.
func GenerateDates(start time.Time, durationDays int) []string {
	if durationDays <= 0 {
		return []string{}
	}

	day := CalendarDay(start)
	dates := make([]string, durationDays)
	for i := range dates {
		dates[i] = day.AddDate(0, 0, i).Format(DateLayout)
	}
	return dates
}

// GenerateTimes returns the 24 hour labels "00:00" through "23:00"
func GenerateTimes() []string {
	times := make([]string, HoursPerDay)
	for hour := range times {
		times[hour] = fmt.Sprintf("%02d:00", hour)
	}
	return times
}

// CalendarDay truncates t to midnight UTC of its own calendar date
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseStartDate parses a YYYY-MM-DD date input value
func ParseStartDate(value string) (time.Time, error) {
	t, err := time.Parse(InputDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidStartDate, value)
	}
	return t, nil
}
