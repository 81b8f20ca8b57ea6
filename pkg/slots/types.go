package slots

import "time"

// Interval is a busy period on the owner's calendar. Both bounds are UTC
// instants and the interval is half-open: [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Slot is a bookable appointment window. End is always Start + SlotDuration.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DateGroup collects the time labels of every slot falling on one calendar
// date in the grouper's timezone. Times are chronological.
type DateGroup struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

// Booking is the presentational rendering of a booked instant.
type Booking struct {
	Time string `json:"time"`
	Date string `json:"date"`
}

// Config holds the generation grid. Day bounds are offsets from UTC midnight.
type Config struct {
	DayStart      time.Duration
	DayEnd        time.Duration
	Stride        time.Duration
	SlotDuration  time.Duration
	LookaheadDays int
}

// DefaultConfig returns the production grid: business hours 05:00–13:30:59 UTC,
// 40-minute stride (30 bookable + 10 buffer), 29:59 slots, 30-day lookahead.
func DefaultConfig() Config {
	return Config{
		DayStart:      5 * time.Hour,
		DayEnd:        13*time.Hour + 30*time.Minute + 59*time.Second,
		Stride:        40 * time.Minute,
		SlotDuration:  29*time.Minute + 59*time.Second,
		LookaheadDays: 30,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.DayStart == 0 {
		c.DayStart = def.DayStart
	}
	if c.DayEnd == 0 {
		c.DayEnd = def.DayEnd
	}
	if c.Stride == 0 {
		c.Stride = def.Stride
	}
	if c.SlotDuration == 0 {
		c.SlotDuration = def.SlotDuration
	}
	if c.LookaheadDays == 0 {
		c.LookaheadDays = def.LookaheadDays
	}
	return c
}
