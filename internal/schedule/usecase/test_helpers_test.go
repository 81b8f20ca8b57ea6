package usecase_test

import (
	"context"
	"time"

	"calendar-schedule/internal/admin"
	"calendar-schedule/internal/model"
	"calendar-schedule/internal/schedule/repository"
	"calendar-schedule/pkg/gworkspace"
	"calendar-schedule/pkg/slots"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockCalendarRepo struct {
	busyFunc   func(owner string, timeMin, timeMax time.Time) ([]slots.Interval, error)
	createFunc func(owner string, opt repository.CreateAppointmentOptions) (gworkspace.Event, error)
	busyCalls  int
	lastOwner  string
}

func (m *mockCalendarRepo) BusyPeriods(ctx context.Context, owner string, timeMin, timeMax time.Time) ([]slots.Interval, error) {
	m.busyCalls++
	m.lastOwner = owner
	if m.busyFunc == nil {
		return nil, nil
	}
	return m.busyFunc(owner, timeMin, timeMax)
}

func (m *mockCalendarRepo) CreateAppointment(ctx context.Context, owner string, opt repository.CreateAppointmentOptions) (gworkspace.Event, error) {
	m.lastOwner = owner
	if m.createFunc == nil {
		return gworkspace.Event{}, nil
	}
	return m.createFunc(owner, opt)
}

type mockDirectoryRepo struct {
	usersFunc   func(adminEmail string) ([]gworkspace.DomainUser, error)
	lastSubject string
}

func (m *mockDirectoryRepo) Users(ctx context.Context, adminEmail string) ([]gworkspace.DomainUser, error) {
	m.lastSubject = adminEmail
	if m.usersFunc == nil {
		return nil, nil
	}
	return m.usersFunc(adminEmail)
}

type mockAdminUC struct {
	admin model.Admin
	err   error
}

func (m *mockAdminUC) Create(ctx context.Context, input admin.CreateInput) (model.Admin, error) {
	return m.admin, m.err
}

func (m *mockAdminUC) GetByDomain(ctx context.Context, domain string) (model.Admin, error) {
	return m.admin, m.err
}

func (m *mockAdminUC) List(ctx context.Context) ([]model.Admin, error) {
	return []model.Admin{m.admin}, m.err
}

func (m *mockAdminUC) Update(ctx context.Context, domain string, input admin.CreateInput) (model.Admin, error) {
	return m.admin, m.err
}

func (m *mockAdminUC) Delete(ctx context.Context, domain string) error {
	return m.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
