package usecase

import (
	"context"
	"fmt"
	"time"

	"calendar-schedule/pkg/slots"
)

// OpenSlots fetches the owner's busy set and walks the lookahead window for
// bookable slots. The busy set is cached briefly per owner; retrying a failed
// fetch is the caller's business.
func (uc *implUseCase) OpenSlots(ctx context.Context, email string) ([]slots.Slot, error) {
	owner := uc.owner(email)
	now := uc.now().UTC().Truncate(time.Second)
	windowEnd := now.AddDate(0, 0, uc.gen.Config().LookaheadDays)

	busy, ok := uc.busyCache.Get(owner)
	if !ok {
		var err error
		busy, err = uc.calRepo.BusyPeriods(ctx, owner, now, windowEnd)
		if err != nil {
			uc.l.Errorf(ctx, "freebusy fetch failed for %s: %v", owner, err)
			return nil, fmt.Errorf("fetch busy periods: %w", err)
		}
		uc.busyCache.Add(owner, busy)
	}

	open, err := uc.gen.Open(busy, now)
	if err != nil {
		return nil, err
	}
	uc.l.Debugf(ctx, "%d open slots for %s against %d busy intervals", len(open), owner, len(busy))
	return open, nil
}
