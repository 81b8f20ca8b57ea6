package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-schedule/internal/admin"
	"calendar-schedule/internal/model"
	"calendar-schedule/internal/schedule"
	"calendar-schedule/internal/schedule/repository"
	"calendar-schedule/internal/schedule/usecase"
	"calendar-schedule/pkg/gworkspace"
	"calendar-schedule/pkg/slots"
)

const defaultOwner = "owner@corp.com"

// monday is an on-grid Monday morning; generation starting here produces
// slots at 05:00, 05:40, 06:20 and so on.
var monday = time.Date(2025, time.June, 2, 5, 0, 0, 0, time.UTC)

func newTestUseCase(calRepo *mockCalendarRepo, dirRepo *mockDirectoryRepo, admins admin.UseCase) schedule.UseCase {
	return usecase.New(&mockLogger{}, calRepo, dirRepo, admins, usecase.Config{
		DefaultEmail: defaultOwner,
	}).WithClock(fixedClock(monday))
}

func slotStarts(open []slots.Slot) map[time.Time]bool {
	starts := make(map[time.Time]bool, len(open))
	for _, s := range open {
		starts[s.Start] = true
	}
	return starts
}

func TestOpenSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("busy intervals remove their slots", func(t *testing.T) {
		calRepo := &mockCalendarRepo{
			busyFunc: func(owner string, timeMin, timeMax time.Time) ([]slots.Interval, error) {
				return []slots.Interval{
					{Start: monday.Add(4 * time.Hour), End: monday.Add(4*time.Hour + 40*time.Minute)},
				}, nil
			},
		}
		uc := newTestUseCase(calRepo, &mockDirectoryRepo{}, &mockAdminUC{})

		open, err := uc.OpenSlots(ctx, defaultOwner)
		if err != nil {
			t.Fatalf("OpenSlots() error = %v", err)
		}
		if len(open) == 0 {
			t.Fatal("OpenSlots() returned no slots")
		}

		starts := slotStarts(open)
		if starts[monday.Add(4*time.Hour)] {
			t.Error("slot overlapping the busy interval was offered")
		}
		if !starts[monday.Add(3*time.Hour+20*time.Minute)] {
			t.Error("slot before the busy interval is missing")
		}
		if !starts[monday.Add(4*time.Hour+40*time.Minute)] {
			t.Error("slot after the busy interval is missing")
		}
	})

	t.Run("busy set is cached per owner", func(t *testing.T) {
		calRepo := &mockCalendarRepo{}
		uc := newTestUseCase(calRepo, &mockDirectoryRepo{}, &mockAdminUC{})

		for i := 0; i < 3; i++ {
			if _, err := uc.OpenSlots(ctx, defaultOwner); err != nil {
				t.Fatalf("OpenSlots() call %d error = %v", i+1, err)
			}
		}
		if calRepo.busyCalls != 1 {
			t.Errorf("BusyPeriods called %d times, want 1", calRepo.busyCalls)
		}
	})

	t.Run("empty email falls back to the default owner", func(t *testing.T) {
		calRepo := &mockCalendarRepo{}
		uc := newTestUseCase(calRepo, &mockDirectoryRepo{}, &mockAdminUC{})

		if _, err := uc.OpenSlots(ctx, ""); err != nil {
			t.Fatalf("OpenSlots() error = %v", err)
		}
		if calRepo.lastOwner != defaultOwner {
			t.Errorf("owner = %q, want %q", calRepo.lastOwner, defaultOwner)
		}
	})

	t.Run("freebusy failure surfaces", func(t *testing.T) {
		wantErr := errors.New("calendar unreachable")
		calRepo := &mockCalendarRepo{
			busyFunc: func(owner string, timeMin, timeMax time.Time) ([]slots.Interval, error) {
				return nil, wantErr
			},
		}
		uc := newTestUseCase(calRepo, &mockDirectoryRepo{}, &mockAdminUC{})

		if _, err := uc.OpenSlots(ctx, defaultOwner); !errors.Is(err, wantErr) {
			t.Errorf("OpenSlots() error = %v, want %v", err, wantErr)
		}
	})
}

func TestGroupedSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown timezone", func(t *testing.T) {
		uc := newTestUseCase(&mockCalendarRepo{}, &mockDirectoryRepo{}, &mockAdminUC{})

		_, err := uc.GroupedSlots(ctx, defaultOwner, "Mars/Olympus")
		if !errors.Is(err, schedule.ErrUnknownTimezone) {
			t.Errorf("GroupedSlots() error = %v, want ErrUnknownTimezone", err)
		}
	})

	t.Run("groups open slots by local date", func(t *testing.T) {
		uc := newTestUseCase(&mockCalendarRepo{}, &mockDirectoryRepo{}, &mockAdminUC{})

		groups, err := uc.GroupedSlots(ctx, defaultOwner, "UTC")
		if err != nil {
			t.Fatalf("GroupedSlots() error = %v", err)
		}
		if len(groups) == 0 {
			t.Fatal("GroupedSlots() returned no groups")
		}
		if groups[0].Date != "Mon Jun  2" {
			t.Errorf("first group date = %q, want %q", groups[0].Date, "Mon Jun  2")
		}
		if len(groups[0].Times) == 0 || groups[0].Times[0] != "05:00 AM" {
			t.Errorf("first group times = %v, want leading %q", groups[0].Times, "05:00 AM")
		}
	})
}

func TestBook(t *testing.T) {
	ctx := context.Background()

	input := schedule.BookInput{
		Email:         defaultOwner,
		Timezone:      "Africa/Nairobi",
		Slot:          "Thu Jun  5T09:00 AM",
		AttendeeEmail: "guest@example.com",
		Title:         "Quarterly review",
		Description:   "Bring the numbers",
	}

	t.Run("creates the appointment and confirms locally", func(t *testing.T) {
		var got repository.CreateAppointmentOptions
		calRepo := &mockCalendarRepo{
			createFunc: func(owner string, opt repository.CreateAppointmentOptions) (gworkspace.Event, error) {
				got = opt
				return gworkspace.Event{
					ID:        "evt-1",
					HtmlLink:  "https://calendar.google.com/event?eid=evt-1",
					StartTime: "2025-06-05T09:00:00+03:00",
					Timezone:  "Africa/Nairobi",
				}, nil
			},
		}
		uc := newTestUseCase(calRepo, &mockDirectoryRepo{}, &mockAdminUC{})

		out, err := uc.Book(ctx, input)
		if err != nil {
			t.Fatalf("Book() error = %v", err)
		}

		// "09:00 AM" in Nairobi (+03, no DST) is 06:00 UTC.
		wantStart := time.Date(2025, time.June, 5, 6, 0, 0, 0, time.UTC)
		if !got.Start.Equal(wantStart) {
			t.Errorf("event start = %v, want %v", got.Start, wantStart)
		}
		if !got.End.Equal(wantStart.Add(29*time.Minute + 59*time.Second)) {
			t.Errorf("event end = %v, want start + slot duration", got.End)
		}
		if got.Summary != input.Title || got.Description != input.Title {
			t.Errorf("summary/description = %q/%q, want both %q", got.Summary, got.Description, input.Title)
		}
		if got.Attendee.Email != input.AttendeeEmail || got.Attendee.Comment != input.Description {
			t.Errorf("attendee = %+v, want email %q with comment %q", got.Attendee, input.AttendeeEmail, input.Description)
		}

		if out.EventLink != "https://calendar.google.com/event?eid=evt-1" {
			t.Errorf("event link = %q", out.EventLink)
		}
		if out.Time != "09:00 AM" || out.Date != "Thu, Jun 05" {
			t.Errorf("confirmation = %q %q, want %q %q", out.Time, out.Date, "09:00 AM", "Thu, Jun 05")
		}
		if out.Timezone != "Africa/Nairobi" {
			t.Errorf("timezone = %q, want %q", out.Timezone, "Africa/Nairobi")
		}
	})

	t.Run("falls back to the parsed start when the event carries none", func(t *testing.T) {
		calRepo := &mockCalendarRepo{
			createFunc: func(owner string, opt repository.CreateAppointmentOptions) (gworkspace.Event, error) {
				return gworkspace.Event{HtmlLink: "https://cal/link"}, nil
			},
		}
		uc := newTestUseCase(calRepo, &mockDirectoryRepo{}, &mockAdminUC{})

		out, err := uc.Book(ctx, input)
		if err != nil {
			t.Fatalf("Book() error = %v", err)
		}
		if out.Time != "09:00 AM" {
			t.Errorf("confirmation time = %q, want %q", out.Time, "09:00 AM")
		}
		if out.Timezone != input.Timezone {
			t.Errorf("timezone = %q, want request timezone %q", out.Timezone, input.Timezone)
		}
	})

	t.Run("missing attendee", func(t *testing.T) {
		uc := newTestUseCase(&mockCalendarRepo{}, &mockDirectoryRepo{}, &mockAdminUC{})

		noAttendee := input
		noAttendee.AttendeeEmail = ""
		if _, err := uc.Book(ctx, noAttendee); !errors.Is(err, schedule.ErrEmptyAttendee) {
			t.Errorf("Book() error = %v, want ErrEmptyAttendee", err)
		}
	})

	t.Run("unknown timezone", func(t *testing.T) {
		uc := newTestUseCase(&mockCalendarRepo{}, &mockDirectoryRepo{}, &mockAdminUC{})

		badZone := input
		badZone.Timezone = "Nowhere/Fast"
		if _, err := uc.Book(ctx, badZone); !errors.Is(err, schedule.ErrUnknownTimezone) {
			t.Errorf("Book() error = %v, want ErrUnknownTimezone", err)
		}
	})

	t.Run("malformed slot label", func(t *testing.T) {
		uc := newTestUseCase(&mockCalendarRepo{}, &mockDirectoryRepo{}, &mockAdminUC{})

		badSlot := input
		badSlot.Slot = "sometime tomorrow"
		if _, err := uc.Book(ctx, badSlot); !errors.Is(err, slots.ErrInvalidSlotLabel) {
			t.Errorf("Book() error = %v, want ErrInvalidSlotLabel", err)
		}
	})

	t.Run("creation failure surfaces", func(t *testing.T) {
		wantErr := errors.New("insert rejected")
		calRepo := &mockCalendarRepo{
			createFunc: func(owner string, opt repository.CreateAppointmentOptions) (gworkspace.Event, error) {
				return gworkspace.Event{}, wantErr
			},
		}
		uc := newTestUseCase(calRepo, &mockDirectoryRepo{}, &mockAdminUC{})

		if _, err := uc.Book(ctx, input); !errors.Is(err, wantErr) {
			t.Errorf("Book() error = %v, want %v", err, wantErr)
		}
	})
}

func TestDomainUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("default owner lists through itself", func(t *testing.T) {
		dirRepo := &mockDirectoryRepo{
			usersFunc: func(adminEmail string) ([]gworkspace.DomainUser, error) {
				return []gworkspace.DomainUser{{Name: "A", Email: "a@corp.com"}}, nil
			},
		}
		uc := newTestUseCase(&mockCalendarRepo{}, dirRepo, &mockAdminUC{})

		users, err := uc.DomainUsers(ctx, "")
		if err != nil {
			t.Fatalf("DomainUsers() error = %v", err)
		}
		if len(users) != 1 {
			t.Fatalf("DomainUsers() returned %d users, want 1", len(users))
		}
		if dirRepo.lastSubject != defaultOwner {
			t.Errorf("directory subject = %q, want %q", dirRepo.lastSubject, defaultOwner)
		}
	})

	t.Run("foreign domain lists through its registered admin", func(t *testing.T) {
		dirRepo := &mockDirectoryRepo{}
		admins := &mockAdminUC{admin: model.Admin{Domain: "other.com", Email: "boss@other.com"}}
		uc := newTestUseCase(&mockCalendarRepo{}, dirRepo, admins)

		if _, err := uc.DomainUsers(ctx, "someone@other.com"); err != nil {
			t.Fatalf("DomainUsers() error = %v", err)
		}
		if dirRepo.lastSubject != "boss@other.com" {
			t.Errorf("directory subject = %q, want the registered admin", dirRepo.lastSubject)
		}
	})

	t.Run("unregistered domain", func(t *testing.T) {
		admins := &mockAdminUC{err: admin.ErrNotFound}
		uc := newTestUseCase(&mockCalendarRepo{}, &mockDirectoryRepo{}, admins)

		_, err := uc.DomainUsers(ctx, "someone@stranger.com")
		if !errors.Is(err, schedule.ErrNoAdminForDomain) {
			t.Errorf("DomainUsers() error = %v, want ErrNoAdminForDomain", err)
		}
	})

	t.Run("directory failure surfaces", func(t *testing.T) {
		wantErr := errors.New("directory unavailable")
		dirRepo := &mockDirectoryRepo{
			usersFunc: func(adminEmail string) ([]gworkspace.DomainUser, error) {
				return nil, wantErr
			},
		}
		uc := newTestUseCase(&mockCalendarRepo{}, dirRepo, &mockAdminUC{})

		if _, err := uc.DomainUsers(ctx, ""); !errors.Is(err, wantErr) {
			t.Errorf("DomainUsers() error = %v, want %v", err, wantErr)
		}
	})
}
