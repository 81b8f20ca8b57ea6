package repository

import (
	"context"
	"time"

	"calendar-schedule/pkg/gworkspace"
	"calendar-schedule/pkg/slots"
)

// CalendarRepository is the interface for calendar data access, acting as the
// given owner through delegated credentials.
type CalendarRepository interface {
	// BusyPeriods returns the owner's busy intervals in [timeMin, timeMax),
	// parsed into UTC instants.
	BusyPeriods(ctx context.Context, owner string, timeMin, timeMax time.Time) ([]slots.Interval, error)

	// CreateAppointment inserts an event on the owner's primary calendar.
	CreateAppointment(ctx context.Context, owner string, opt CreateAppointmentOptions) (gworkspace.Event, error)
}

// DirectoryRepository lists Workspace users through an admin subject.
type DirectoryRepository interface {
	Users(ctx context.Context, adminEmail string) ([]gworkspace.DomainUser, error)
}

// CreateAppointmentOptions defines the appointment to insert.
type CreateAppointmentOptions struct {
	Summary        string
	Description    string
	Start          time.Time
	End            time.Time
	Timezone       string
	Attendee       gworkspace.Attendee
	OtherAttendees []string
	Attachment     *gworkspace.Attachment
}
