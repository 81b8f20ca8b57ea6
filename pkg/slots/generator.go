package slots

import (
	"fmt"
	"time"
)

// Generator walks a fixed future window in stride-sized steps and collects
// every step that is free of busy intervals and inside business hours.
type Generator struct {
	cfg Config
}

// NewGenerator creates a Generator. Zero fields in cfg take their defaults.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg.withDefaults()}
}

// Config returns the normalized grid the generator walks.
func (g *Generator) Config() Config {
	return g.cfg
}

// Open returns the ordered open slots in [now, now + lookahead), earliest
// first. A malformed interval fails the whole call: overlap correctness
// cannot be guaranteed if part of the busy set is unusable.
func (g *Generator) Open(busy []Interval, now time.Time) ([]Slot, error) {
	for _, b := range busy {
		if b.Start.IsZero() || b.End.IsZero() || !b.Start.Before(b.End) {
			return nil, fmt.Errorf("%w: start %v, end %v", ErrInvalidInterval, b.Start, b.End)
		}
	}

	now = now.UTC().Truncate(time.Second)
	windowEnd := now.AddDate(0, 0, g.cfg.LookaheadDays)

	// Kick off at the day-start boundary when now precedes it.
	cur := now
	if timeOfDay(cur) < g.cfg.DayStart {
		cur = atOffset(cur, g.cfg.DayStart)
	}

	var open []Slot
	for cur.Before(windowEnd) {
		end := cur.Add(g.cfg.SlotDuration)

		if !g.taken(busy, cur, end) && g.bookable(cur) {
			open = append(open, Slot{Start: cur, End: end})
		}

		cur = g.advance(cur)
	}
	return open, nil
}

// taken reports whether the candidate collides with any busy interval.
// Bounds are half-open so a slot may start exactly when a meeting ends.
func (g *Generator) taken(busy []Interval, start, end time.Time) bool {
	for _, b := range busy {
		if within(start, b) || within(end, b) {
			return true
		}
	}
	return false
}

// bookable applies the business-hour and weekday filters, both in UTC.
func (g *Generator) bookable(start time.Time) bool {
	tod := timeOfDay(start)
	if tod < g.cfg.DayStart || tod >= g.cfg.DayEnd {
		return false
	}
	wd := start.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

// advance steps to the next candidate. A step landing strictly inside the
// overnight band (00:00, 01:00) is snapped to day-start on the same date so
// generation cannot drift through the band one stride at a time.
func (g *Generator) advance(cur time.Time) time.Time {
	next := cur.Add(g.cfg.Stride)
	if tod := timeOfDay(next); tod > 0 && tod < time.Hour {
		return atOffset(next, g.cfg.DayStart)
	}
	return next
}

func within(t time.Time, b Interval) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// atOffset returns t's UTC date at the given offset from midnight.
func atOffset(t time.Time, offset time.Duration) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.Add(offset)
}
