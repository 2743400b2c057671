package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/almeidamaycon094-ux/heasystaff/internal/domain"
)

type adminRepo struct{}

// NewAdminRepository returns a sqlite-backed AdminRepository.
func NewAdminRepository() AdminRepository {
	return &adminRepo{}
}

func (r *adminRepo) FindByEmail(ctx context.Context, db DBTX, email string) (*domain.Admin, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, email, password_hash FROM admins WHERE email = ?`, email)

	a := &domain.Admin{}
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *adminRepo) Create(ctx context.Context, db DBTX, admin *domain.Admin) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO admins (id, email, password_hash) VALUES (?, ?, ?)`,
		admin.ID, admin.Email, admin.PasswordHash)
	return err
}
