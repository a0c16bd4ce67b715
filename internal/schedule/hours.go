package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeRange is a half-open wall-clock interval within a single day,
// expressed in 24-hour "HH:MM" notation. The end may be "24:00" to mean
// the end-of-day boundary.
type TimeRange struct {
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

// BusinessHours maps a weekday to its open ranges. A missing or empty
// entry means the day is closed. Ranges for one day are assumed not to
// overlap.
type BusinessHours map[time.Weekday][]TimeRange

// minutes converts "HH:MM" into minutes from midnight.
func minutes(hhmm string) (int, error) {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", hhmm)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", hhmm, err)
	}
	min, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", hhmm, err)
	}
	if hour < 0 || hour > 24 || min < 0 || min > 59 || (hour == 24 && min != 0) {
		return 0, fmt.Errorf("time %q out of range", hhmm)
	}
	return hour*60 + min, nil
}

// Bounds returns the range's start and end as minutes from midnight.
func (r TimeRange) Bounds() (start, end int, err error) {
	if start, err = minutes(r.Start); err != nil {
		return 0, 0, err
	}
	if end, err = minutes(r.End); err != nil {
		return 0, 0, err
	}
	if start >= end {
		return 0, 0, fmt.Errorf("range %s-%s: start must be before end", r.Start, r.End)
	}
	return start, end, nil
}

// Validate checks every range of every day.
func (h BusinessHours) Validate() error {
	for day, ranges := range h {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("invalid weekday %d", day)
		}
		for _, r := range ranges {
			if _, _, err := r.Bounds(); err != nil {
				return fmt.Errorf("%s: %w", day, err)
			}
		}
	}
	return nil
}

// DefaultBusinessHours mirrors the consultancy's standing schedule:
// weekdays 10:00-18:00 plus an evening block 20:00-24:00, weekends closed.
func DefaultBusinessHours() BusinessHours {
	weekday := []TimeRange{
		{Start: "10:00", End: "18:00"},
		{Start: "20:00", End: "24:00"},
	}
	return BusinessHours{
		time.Monday:    weekday,
		time.Tuesday:   weekday,
		time.Wednesday: weekday,
		time.Thursday:  weekday,
		time.Friday:    weekday,
	}
}
