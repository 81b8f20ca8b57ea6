package usecase

import (
	"context"
	"errors"
	"fmt"

	"calendar-schedule/internal/admin"
	"calendar-schedule/internal/admin/repository"
	"calendar-schedule/internal/model"
)

func (uc *implUseCase) Create(ctx context.Context, input admin.CreateInput) (model.Admin, error) {
	created, err := uc.repo.Create(ctx, repository.CreateAdminOptions{
		Domain: input.Domain,
		Name:   input.Name,
		Email:  input.Email,
		Role:   input.Role,
	})
	if err != nil {
		uc.l.Errorf(ctx, "admin.Create failed for domain %s: %v", input.Domain, err)
		return model.Admin{}, fmt.Errorf("create admin: %w", err)
	}
	uc.l.Infof(ctx, "Registered admin %s for domain %s", created.Email, created.Domain)
	return created, nil
}

func (uc *implUseCase) GetByDomain(ctx context.Context, domain string) (model.Admin, error) {
	found, err := uc.repo.GetByDomain(ctx, domain)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Admin{}, admin.ErrNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "admin.GetByDomain failed for %s: %v", domain, err)
		return model.Admin{}, fmt.Errorf("get admin: %w", err)
	}
	return found, nil
}

func (uc *implUseCase) List(ctx context.Context) ([]model.Admin, error) {
	admins, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "admin.List failed: %v", err)
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

func (uc *implUseCase) Update(ctx context.Context, domain string, input admin.CreateInput) (model.Admin, error) {
	updated, err := uc.repo.Update(ctx, domain, repository.CreateAdminOptions{
		Domain: input.Domain,
		Name:   input.Name,
		Email:  input.Email,
		Role:   input.Role,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return model.Admin{}, admin.ErrNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "admin.Update failed for %s: %v", domain, err)
		return model.Admin{}, fmt.Errorf("update admin: %w", err)
	}
	return updated, nil
}

func (uc *implUseCase) Delete(ctx context.Context, domain string) error {
	removed, err := uc.repo.Delete(ctx, domain)
	if err != nil {
		uc.l.Errorf(ctx, "admin.Delete failed for %s: %v", domain, err)
		return fmt.Errorf("delete admin: %w", err)
	}
	if removed == 0 {
		return admin.ErrNotFound
	}
	uc.l.Infof(ctx, "Deleted admin for domain %s", domain)
	return nil
}
