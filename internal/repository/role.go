package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/almeidamaycon094-ux/heasystaff/internal/domain"
)

type roleRepo struct{}

// NewRoleRepository returns a sqlite-backed RoleRepository.
func NewRoleRepository() RoleRepository {
	return &roleRepo{}
}

func (r *roleRepo) List(ctx context.Context, db DBTX) ([]domain.Role, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, color, "order", created_at
		FROM roles ORDER BY "order" ASC`)
	if err != nil {
		return nil, fmt.Errorf("query roles: %w", err)
	}
	defer rows.Close()

	roles := []domain.Role{}
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Color, &role.Order, &role.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *roleRepo) FindByID(ctx context.Context, db DBTX, id string) (*domain.Role, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, name, color, "order", created_at
		FROM roles WHERE id = ?`, id)

	role := &domain.Role{}
	err := row.Scan(&role.ID, &role.Name, &role.Color, &role.Order, &role.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan role: %w", err)
	}
	return role, nil
}

func (r *roleRepo) Create(ctx context.Context, db DBTX, role *domain.Role) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO roles (id, name, color, "order", created_at)
		VALUES (?, ?, ?, ?, ?)`,
		role.ID, role.Name, role.Color, role.Order, role.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

func (r *roleRepo) Update(ctx context.Context, db DBTX, role *domain.Role) error {
	res, err := db.ExecContext(ctx, `
		UPDATE roles SET name = ?, color = ?, "order" = ? WHERE id = ?`,
		role.Name, role.Color, role.Order, role.ID)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound("role", role.ID)
	}
	return nil
}

func (r *roleRepo) Delete(ctx context.Context, db DBTX, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM roles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound("role", id)
	}
	return nil
}

func (r *roleRepo) Count(ctx context.Context, db DBTX) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM roles`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count roles: %w", err)
	}
	return n, nil
}
