package usecase

import (
	"context"
	"fmt"

	"calendar-schedule/internal/schedule"
	"calendar-schedule/pkg/slots"
)

// GroupedSlots renders the owner's open slots per calendar date in the
// requester's timezone.
func (uc *implUseCase) GroupedSlots(ctx context.Context, email, timezone string) ([]slots.DateGroup, error) {
	grouper, err := slots.NewGrouper(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", schedule.ErrUnknownTimezone, timezone)
	}

	open, err := uc.OpenSlots(ctx, email)
	if err != nil {
		return nil, err
	}
	return grouper.GroupByDate(open), nil
}
