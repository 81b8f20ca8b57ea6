package usecase

import (
	"context"
	"fmt"
	"time"

	"calendar-schedule/internal/schedule"
	"calendar-schedule/internal/schedule/repository"
	"calendar-schedule/pkg/gworkspace"
	"calendar-schedule/pkg/slots"
)

// Book reconstructs the chosen slot's instants from its label and creates the
// appointment on the owner's calendar, confirming in the booking timezone.
func (uc *implUseCase) Book(ctx context.Context, input schedule.BookInput) (schedule.BookOutput, error) {
	if input.AttendeeEmail == "" {
		return schedule.BookOutput{}, schedule.ErrEmptyAttendee
	}

	grouper, err := slots.NewGrouper(input.Timezone)
	if err != nil {
		return schedule.BookOutput{}, fmt.Errorf("%w: %q", schedule.ErrUnknownTimezone, input.Timezone)
	}

	start, err := grouper.ParseLabel(input.Slot, uc.now())
	if err != nil {
		return schedule.BookOutput{}, err
	}
	end := start.Add(uc.gen.Config().SlotDuration)

	var attachment *gworkspace.Attachment
	if input.DriveFile != nil {
		attachment = &gworkspace.Attachment{
			Title:    input.DriveFile.Name,
			FileURL:  input.DriveFile.URL,
			MimeType: input.DriveFile.MimeType,
			IconURL:  input.DriveFile.IconURL,
		}
	}

	owner := uc.owner(input.Email)
	// The attendee's description rides along as their comment; the event
	// itself carries the title both as summary and description.
	event, err := uc.calRepo.CreateAppointment(ctx, owner, repository.CreateAppointmentOptions{
		Summary:     input.Title,
		Description: input.Title,
		Start:       start,
		End:         end,
		Timezone:    input.Timezone,
		Attendee: gworkspace.Attendee{
			Email:   input.AttendeeEmail,
			Comment: input.Description,
		},
		OtherAttendees: input.OtherAttendees,
		Attachment:     attachment,
	})
	if err != nil {
		uc.l.Errorf(ctx, "appointment creation failed for %s: %v", owner, err)
		return schedule.BookOutput{}, fmt.Errorf("create appointment: %w", err)
	}

	startValue := event.StartTime
	if startValue == "" {
		startValue = start.Format(time.RFC3339)
	}
	booking, err := grouper.FormatInstant(startValue)
	if err != nil {
		return schedule.BookOutput{}, err
	}

	timezone := event.Timezone
	if timezone == "" {
		timezone = input.Timezone
	}

	uc.l.Infof(ctx, "Booked %s for %s on %s calendar", input.Slot, input.AttendeeEmail, owner)
	return schedule.BookOutput{
		EventLink: event.HtmlLink,
		Time:      booking.Time,
		Date:      booking.Date,
		Timezone:  timezone,
	}, nil
}
