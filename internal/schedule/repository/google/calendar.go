// Package google implements the schedule repositories on top of the Google
// Workspace APIs, building a delegated client per impersonated subject.
package google

import (
	"context"
	"fmt"
	"os"
	"time"

	"calendar-schedule/internal/schedule/repository"
	"calendar-schedule/pkg/gworkspace"
	pkgLog "calendar-schedule/pkg/log"
	"calendar-schedule/pkg/slots"
)

type Repository struct {
	l           pkgLog.Logger
	credentials []byte
}

// New creates the repository from a Service Account credentials file path.
func New(l pkgLog.Logger, credentialsPath string) (*Repository, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewFromJSON(l, data), nil
}

// NewFromJSON creates the repository from raw credentials bytes.
func NewFromJSON(l pkgLog.Logger, credentials []byte) *Repository {
	return &Repository{l: l, credentials: credentials}
}

// BusyPeriods queries freebusy as the owner and parses the returned ISO-8601
// pairs into UTC instants. An unparseable period poisons the whole result:
// the generator cannot guarantee overlap correctness around a bound it
// cannot read.
func (r *Repository) BusyPeriods(ctx context.Context, owner string, timeMin, timeMax time.Time) ([]slots.Interval, error) {
	client, err := gworkspace.NewClientFromCredentialsJSON(ctx, r.credentials, owner)
	if err != nil {
		return nil, err
	}

	periods, err := client.FreeBusy(ctx, "primary", timeMin, timeMax)
	if err != nil {
		return nil, err
	}

	busy := make([]slots.Interval, 0, len(periods))
	for _, p := range periods {
		start, err := time.Parse(time.RFC3339, p.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: busy start %q", slots.ErrInvalidInterval, p.Start)
		}
		end, err := time.Parse(time.RFC3339, p.End)
		if err != nil {
			return nil, fmt.Errorf("%w: busy end %q", slots.ErrInvalidInterval, p.End)
		}
		busy = append(busy, slots.Interval{Start: start.UTC(), End: end.UTC()})
	}
	return busy, nil
}

// CreateAppointment inserts the event on the owner's primary calendar.
func (r *Repository) CreateAppointment(ctx context.Context, owner string, opt repository.CreateAppointmentOptions) (gworkspace.Event, error) {
	client, err := gworkspace.NewClientFromCredentialsJSON(ctx, r.credentials, owner)
	if err != nil {
		return gworkspace.Event{}, err
	}

	event, err := client.CreateEvent(ctx, gworkspace.CreateEventRequest{
		CalendarID:     "primary",
		Summary:        opt.Summary,
		Description:    opt.Description,
		StartTime:      opt.Start,
		EndTime:        opt.End,
		Timezone:       opt.Timezone,
		Attendee:       opt.Attendee,
		OtherAttendees: opt.OtherAttendees,
		Attachment:     opt.Attachment,
	})
	if err != nil {
		return gworkspace.Event{}, err
	}
	return *event, nil
}
