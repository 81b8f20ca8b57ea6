package usecase

import (
	"calendar-schedule/internal/admin/repository"
	pkgLog "calendar-schedule/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.AdminRepository
}

// New creates a new admin UseCase instance.
func New(l pkgLog.Logger, repo repository.AdminRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
