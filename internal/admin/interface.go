package admin

import (
	"context"

	"calendar-schedule/internal/model"
)

// UseCase defines the business logic interface for the admin registry.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (model.Admin, error)
	GetByDomain(ctx context.Context, domain string) (model.Admin, error)
	List(ctx context.Context) ([]model.Admin, error)
	Update(ctx context.Context, domain string, input CreateInput) (model.Admin, error)
	Delete(ctx context.Context, domain string) error
}
