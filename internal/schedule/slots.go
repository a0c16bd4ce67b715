package schedule

import (
	"time"
)

// Slot is a single bookable appointment start time. Datetime is the
// absolute instant in RFC 3339 UTC; Date and Time are rendered in the
// calculator's timezone for display.
type Slot struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Datetime  string `json:"datetime"`
	Available bool   `json:"available"`
}

// DayAvailability groups the surviving slots of one calendar day.
type DayAvailability struct {
	Date    string `json:"date"`
	DayName string `json:"dayName"`
	Slots   []Slot `json:"slots"`
}

// BusyInterval is an occupied range on the provider calendar, half-open.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

const (
	// DefaultDaysAhead is how far availability extends when the caller
	// does not ask for a specific horizon.
	DefaultDaysAhead = 14
	// MaxDaysAhead caps the horizon a caller may request.
	MaxDaysAhead = 30
)

// Calculator turns business hours into bookable slots.
type Calculator struct {
	hours    BusinessHours
	loc      *time.Location
	duration time.Duration // appointment length
	step     time.Duration // cadence between slot starts
	buffer   time.Duration // minimum lead time from now
}

// NewCalculator builds a calculator with hourly 60-minute appointments and
// a 30-minute booking lead time.
func NewCalculator(hours BusinessHours, loc *time.Location) *Calculator {
	return &Calculator{
		hours:    hours,
		loc:      loc,
		duration: time.Hour,
		step:     time.Hour,
		buffer:   30 * time.Minute,
	}
}

// Duration returns the appointment length.
func (c *Calculator) Duration() time.Duration { return c.duration }

// Location returns the business timezone.
func (c *Calculator) Location() *time.Location { return c.loc }

// Window returns the absolute interval covered by a daysAhead horizon,
// starting at midnight "today" in the business timezone. Busy intervals
// should be fetched for exactly this window.
func (c *Calculator) Window(now time.Time, daysAhead int) (time.Time, time.Time) {
	local := now.In(c.loc)
	y, m, d := local.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, c.loc)
	return start, start.AddDate(0, 0, daysAhead)
}

// Available produces the per-day slot groups for the horizon. Candidate
// instants are always composed from (calendar date, wall-clock minutes,
// timezone) so daylight-saving days keep their wall-clock cadence.
func (c *Calculator) Available(now time.Time, daysAhead int, busy []BusyInterval) []DayAvailability {
	start, _ := c.Window(now, daysAhead)
	cutoff := now.Add(c.buffer)

	availability := make([]DayAvailability, 0, daysAhead)
	for i := 0; i < daysAhead; i++ {
		day := start.AddDate(0, 0, i)
		ranges := c.hours[day.Weekday()]
		if len(ranges) == 0 {
			continue // closed
		}

		var slots []Slot
		for _, r := range ranges {
			slots = append(slots, c.slotsForRange(day, r, cutoff, busy)...)
		}
		if len(slots) == 0 {
			continue
		}

		availability = append(availability, DayAvailability{
			Date:    day.Format("2006-01-02"),
			DayName: day.Format("Monday, January 2"),
			Slots:   slots,
		})
	}
	return availability
}

// slotsForRange generates the surviving candidates of one business-hours
// range on one day.
func (c *Calculator) slotsForRange(day time.Time, r TimeRange, cutoff time.Time, busy []BusyInterval) []Slot {
	startMin, endMin, err := r.Bounds()
	if err != nil {
		return nil // malformed ranges are rejected at config load
	}

	stepMin := int(c.step / time.Minute)
	durMin := int(c.duration / time.Minute)
	y, m, d := day.Date()

	var slots []Slot
	for min := startMin; min+durMin <= endMin; min += stepMin {
		at := time.Date(y, m, d, 0, min, 0, 0, c.loc)
		if at.Before(cutoff) {
			continue
		}
		if !c.SlotFree(at, busy) {
			continue
		}
		slots = append(slots, Slot{
			Date:      at.In(c.loc).Format("2006-01-02"),
			Time:      at.In(c.loc).Format("3:04 PM"),
			Datetime:  at.UTC().Format(time.RFC3339),
			Available: true,
		})
	}
	return slots
}

// SlotFree reports whether a slot starting at the given instant avoids
// every busy interval under half-open overlap semantics.
func (c *Calculator) SlotFree(at time.Time, busy []BusyInterval) bool {
	end := at.Add(c.duration)
	for _, b := range busy {
		if at.Before(b.End) && end.After(b.Start) {
			return false
		}
	}
	return true
}
