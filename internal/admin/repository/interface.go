package repository

import (
	"context"
	"errors"

	"calendar-schedule/internal/model"
)

// ErrNotFound is returned when no admin row matches the requested domain.
var ErrNotFound = errors.New("admin record not found")

// AdminRepository is the interface for admin record persistence.
type AdminRepository interface {
	Create(ctx context.Context, opt CreateAdminOptions) (model.Admin, error)
	GetByDomain(ctx context.Context, domain string) (model.Admin, error)
	List(ctx context.Context) ([]model.Admin, error)
	Update(ctx context.Context, domain string, opt CreateAdminOptions) (model.Admin, error)
	// Delete removes the admin for domain. Returns the number of rows removed.
	Delete(ctx context.Context, domain string) (int64, error)
}

// CreateAdminOptions carries the writable admin fields.
type CreateAdminOptions struct {
	Domain string
	Name   string
	Email  string
	Role   string
}
