package google

import (
	"context"

	"calendar-schedule/pkg/gworkspace"
)

// Users lists every Workspace user visible to the admin subject.
func (r *Repository) Users(ctx context.Context, adminEmail string) ([]gworkspace.DomainUser, error) {
	dir, err := gworkspace.NewDirectoryFromCredentialsJSON(ctx, r.credentials, adminEmail)
	if err != nil {
		return nil, err
	}
	return dir.ListUsers(ctx)
}
