// Package postgres stores admin records in the super_user table.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"calendar-schedule/internal/admin/repository"
	"calendar-schedule/internal/model"
	"calendar-schedule/pkg/db"
)

type AdminRepository struct {
	pool *db.Pool
}

func New(pool *db.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// Migrate creates the super_user table when missing.
func (r *AdminRepository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS super_user (
			id     BIGSERIAL PRIMARY KEY,
			domain TEXT NOT NULL UNIQUE,
			name   TEXT NOT NULL,
			email  TEXT NOT NULL UNIQUE,
			role   TEXT NOT NULL
		)
	`)
	return err
}

func (r *AdminRepository) Create(ctx context.Context, opt repository.CreateAdminOptions) (model.Admin, error) {
	var admin model.Admin
	err := r.pool.QueryRow(ctx, `
		INSERT INTO super_user (domain, name, email, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, domain, name, email, role
	`, opt.Domain, opt.Name, opt.Email, opt.Role).
		Scan(&admin.ID, &admin.Domain, &admin.Name, &admin.Email, &admin.Role)
	if err != nil {
		return model.Admin{}, err
	}
	return admin, nil
}

func (r *AdminRepository) GetByDomain(ctx context.Context, domain string) (model.Admin, error) {
	var admin model.Admin
	err := r.pool.QueryRow(ctx, `
		SELECT id, domain, name, email, role
		FROM super_user
		WHERE domain = $1
	`, domain).Scan(&admin.ID, &admin.Domain, &admin.Name, &admin.Email, &admin.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Admin{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Admin{}, err
	}
	return admin, nil
}

func (r *AdminRepository) List(ctx context.Context) ([]model.Admin, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, domain, name, email, role
		FROM super_user
		ORDER BY domain
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []model.Admin
	for rows.Next() {
		var admin model.Admin
		if err := rows.Scan(&admin.ID, &admin.Domain, &admin.Name, &admin.Email, &admin.Role); err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	return admins, rows.Err()
}

func (r *AdminRepository) Update(ctx context.Context, domain string, opt repository.CreateAdminOptions) (model.Admin, error) {
	var admin model.Admin
	err := r.pool.QueryRow(ctx, `
		UPDATE super_user
		SET domain = $2, name = $3, email = $4, role = $5
		WHERE domain = $1
		RETURNING id, domain, name, email, role
	`, domain, opt.Domain, opt.Name, opt.Email, opt.Role).
		Scan(&admin.ID, &admin.Domain, &admin.Name, &admin.Email, &admin.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Admin{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Admin{}, err
	}
	return admin, nil
}

func (r *AdminRepository) Delete(ctx context.Context, domain string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM super_user WHERE domain = $1`, domain)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
