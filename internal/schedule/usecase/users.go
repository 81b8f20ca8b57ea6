package usecase

import (
	"context"
	"errors"
	"fmt"

	"calendar-schedule/internal/admin"
	"calendar-schedule/internal/schedule"
	"calendar-schedule/pkg/gworkspace"
)

// DomainUsers lists the Workspace users of the owner's domain. For non-default
// owners the delegation subject is the domain's registered admin.
func (uc *implUseCase) DomainUsers(ctx context.Context, email string) ([]gworkspace.DomainUser, error) {
	owner := uc.owner(email)

	adminEmail := owner
	if owner != uc.cfg.DefaultEmail {
		if uc.admins == nil {
			return nil, fmt.Errorf("%w: %s", schedule.ErrNoAdminForDomain, domainOf(owner))
		}
		registered, err := uc.admins.GetByDomain(ctx, domainOf(owner))
		if errors.Is(err, admin.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", schedule.ErrNoAdminForDomain, domainOf(owner))
		}
		if err != nil {
			return nil, err
		}
		adminEmail = registered.Email
	}

	users, err := uc.dirRepo.Users(ctx, adminEmail)
	if err != nil {
		uc.l.Errorf(ctx, "directory listing failed via %s: %v", adminEmail, err)
		return nil, fmt.Errorf("list domain users: %w", err)
	}
	if len(users) == 0 {
		uc.l.Infof(ctx, "No users found in domain %s", domainOf(owner))
	}
	return users, nil
}
