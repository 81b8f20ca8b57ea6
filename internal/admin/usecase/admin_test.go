package usecase_test

import (
	"context"
	"errors"
	"testing"

	"calendar-schedule/internal/admin"
	"calendar-schedule/internal/admin/repository"
	"calendar-schedule/internal/admin/usecase"
	"calendar-schedule/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockAdminRepo struct {
	admins map[string]model.Admin
	err    error
}

func (m *mockAdminRepo) Create(ctx context.Context, opt repository.CreateAdminOptions) (model.Admin, error) {
	if m.err != nil {
		return model.Admin{}, m.err
	}
	a := model.Admin{ID: int64(len(m.admins) + 1), Domain: opt.Domain, Name: opt.Name, Email: opt.Email, Role: opt.Role}
	m.admins[opt.Domain] = a
	return a, nil
}

func (m *mockAdminRepo) GetByDomain(ctx context.Context, domain string) (model.Admin, error) {
	if m.err != nil {
		return model.Admin{}, m.err
	}
	a, ok := m.admins[domain]
	if !ok {
		return model.Admin{}, repository.ErrNotFound
	}
	return a, nil
}

func (m *mockAdminRepo) List(ctx context.Context) ([]model.Admin, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Admin
	for _, a := range m.admins {
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAdminRepo) Update(ctx context.Context, domain string, opt repository.CreateAdminOptions) (model.Admin, error) {
	a, ok := m.admins[domain]
	if !ok {
		return model.Admin{}, repository.ErrNotFound
	}
	a.Domain, a.Name, a.Email, a.Role = opt.Domain, opt.Name, opt.Email, opt.Role
	delete(m.admins, domain)
	m.admins[opt.Domain] = a
	return a, nil
}

func (m *mockAdminRepo) Delete(ctx context.Context, domain string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if _, ok := m.admins[domain]; !ok {
		return 0, nil
	}
	delete(m.admins, domain)
	return 1, nil
}

func TestAdminUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and GetByDomain", func(t *testing.T) {
		repo := &mockAdminRepo{admins: map[string]model.Admin{}}
		uc := usecase.New(&mockLogger{}, repo)

		created, err := uc.Create(ctx, admin.CreateInput{
			Domain: "example.com", Name: "Jess", Email: "jess@example.com", Role: "super",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == 0 {
			t.Error("expected assigned ID")
		}

		got, err := uc.GetByDomain(ctx, "example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Email != "jess@example.com" {
			t.Errorf("unexpected admin: %+v", got)
		}
	})

	t.Run("GetByDomain unknown domain", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockAdminRepo{admins: map[string]model.Admin{}})
		_, err := uc.GetByDomain(ctx, "nowhere.dev")
		if !errors.Is(err, admin.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Update unknown domain", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockAdminRepo{admins: map[string]model.Admin{}})
		_, err := uc.Update(ctx, "nowhere.dev", admin.CreateInput{Domain: "nowhere.dev"})
		if !errors.Is(err, admin.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		repo := &mockAdminRepo{admins: map[string]model.Admin{
			"example.com": {ID: 1, Domain: "example.com"},
		}}
		uc := usecase.New(&mockLogger{}, repo)

		if err := uc.Delete(ctx, "example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.Delete(ctx, "example.com"); !errors.Is(err, admin.ErrNotFound) {
			t.Errorf("expected ErrNotFound on second delete, got %v", err)
		}
	})

	t.Run("Repository failure surfaces", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockAdminRepo{err: errors.New("db down")})
		if _, err := uc.List(ctx); err == nil {
			t.Error("expected error from repository")
		}
	})
}
