package slots

import (
	"fmt"
	"time"
)

// Label layouts. Date labels are ctime-style with a space-padded day so that
// "Tue Sep  1" and "Tue Sep 15" line up; parsing accepts zero-padded days too.
const (
	dateLabelLayout = "Mon Jan _2"
	timeLabelLayout = "03:04 PM"
	slotLabelLayout = dateLabelLayout + "T" + timeLabelLayout
	confirmLayout   = "Mon, Jan 02"
	instantLayout   = "2006-01-02T15:04:05Z07:00"
)

// Grouper renders UTC slots in a requester's timezone and maps user-chosen
// labels back to instants. It holds no state beyond the target location, so
// every method is a pure function of its arguments.
type Grouper struct {
	location *time.Location
}

// NewGrouper creates a Grouper for the given IANA timezone string.
// e.g. "Africa/Nairobi"
func NewGrouper(timezone string) (*Grouper, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Grouper{location: loc}, nil
}

// GroupByDate buckets slots by the calendar date their start falls on in the
// target timezone. Slots are assumed ordered, so each distinct local date
// forms one contiguous run and groups come out in ascending date order.
func (g *Grouper) GroupByDate(openSlots []Slot) []DateGroup {
	var groups []DateGroup
	for _, s := range openSlots {
		local := s.Start.In(g.location)
		date := local.Format(dateLabelLayout)

		if len(groups) == 0 || groups[len(groups)-1].Date != date {
			groups = append(groups, DateGroup{Date: date})
		}
		last := &groups[len(groups)-1]
		last.Times = append(last.Times, local.Format(timeLabelLayout))
	}
	return groups
}

// ParseLabel reconstructs the instant a user selected from a date label and a
// time label joined by "T", e.g. "Mon Jun 05T09:00 AM". Labels never carry a
// year, so the year is taken from now; the wall-clock value is interpreted in
// the grouper's timezone.
func (g *Grouper) ParseLabel(label string, now time.Time) (time.Time, error) {
	t, err := time.ParseInLocation(slotLabelLayout, label, g.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}
	return time.Date(now.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, g.location), nil
}

// FormatInstant renders an offset-bearing timestamp, e.g.
// "2021-05-27T12:31:00+03:00", as a confirmation time and date in the
// grouper's timezone.
func (g *Grouper) FormatInstant(value string) (Booking, error) {
	t, err := time.Parse(instantLayout, value)
	if err != nil {
		return Booking{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
	}
	local := t.In(g.location)
	return Booking{
		Time: local.Format(timeLabelLayout),
		Date: local.Format(confirmLayout),
	}, nil
}
