package schedule

import (
	"context"

	"calendar-schedule/pkg/gworkspace"
	"calendar-schedule/pkg/slots"
)

// UseCase defines the business logic interface for the scheduling domain.
type UseCase interface {
	// DomainUsers lists the Workspace users of the owner's domain, resolved
	// through that domain's registered admin.
	DomainUsers(ctx context.Context, email string) ([]gworkspace.DomainUser, error)

	// OpenSlots computes the bookable slots on the owner's calendar over the
	// lookahead window.
	OpenSlots(ctx context.Context, email string) ([]slots.Slot, error)

	// GroupedSlots renders the open slots per calendar date in the
	// requester's timezone.
	GroupedSlots(ctx context.Context, email, timezone string) ([]slots.DateGroup, error)

	// Book turns a user-selected slot label back into instants and creates
	// the appointment on the owner's calendar.
	Book(ctx context.Context, input BookInput) (BookOutput, error)
}
