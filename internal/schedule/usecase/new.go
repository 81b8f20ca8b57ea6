package usecase

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"calendar-schedule/internal/admin"
	"calendar-schedule/internal/schedule/repository"
	pkgLog "calendar-schedule/pkg/log"
	"calendar-schedule/pkg/slots"
)

const busyCacheSize = 128

// Config tunes the scheduling usecase.
type Config struct {
	// DefaultEmail is the calendar owner used when a request names none.
	DefaultEmail string

	// Slots is the generation grid; zero fields take engine defaults.
	Slots slots.Config

	// BusyCacheTTL bounds how long a fetched busy set is reused per owner.
	BusyCacheTTL time.Duration
}

type implUseCase struct {
	l       pkgLog.Logger
	calRepo repository.CalendarRepository
	dirRepo repository.DirectoryRepository
	admins  admin.UseCase
	gen     *slots.Generator
	cfg     Config

	busyCache *expirable.LRU[string, []slots.Interval]
	now       func() time.Time
}

// New creates a new schedule UseCase instance.
func New(
	l pkgLog.Logger,
	calRepo repository.CalendarRepository,
	dirRepo repository.DirectoryRepository,
	admins admin.UseCase,
	cfg Config,
) *implUseCase {
	if cfg.BusyCacheTTL == 0 {
		cfg.BusyCacheTTL = 2 * time.Minute
	}
	return &implUseCase{
		l:         l,
		calRepo:   calRepo,
		dirRepo:   dirRepo,
		admins:    admins,
		gen:       slots.NewGenerator(cfg.Slots),
		cfg:       cfg,
		busyCache: expirable.NewLRU[string, []slots.Interval](busyCacheSize, nil, cfg.BusyCacheTTL),
		now:       time.Now,
	}
}

// WithClock replaces the wall clock. Generation is deterministic only when
// tests inject a fixed now.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}

// owner resolves the calendar owner for a request, falling back to the
// configured default.
func (uc *implUseCase) owner(email string) string {
	if email == "" {
		return uc.cfg.DefaultEmail
	}
	return email
}

func domainOf(email string) string {
	if _, domain, ok := strings.Cut(email, "@"); ok {
		return domain
	}
	return ""
}
