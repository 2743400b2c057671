package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/almeidamaycon094-ux/heasystaff/internal/domain"
	"github.com/almeidamaycon094-ux/heasystaff/internal/repository"
)

// RoleService implements role CRUD.
type RoleService struct {
	db    *sql.DB
	roles repository.RoleRepository
}

// NewRoleService creates a new RoleService.
func NewRoleService(db *sql.DB, roles repository.RoleRepository) *RoleService {
	return &RoleService{db: db, roles: roles}
}

// List returns all roles sorted ascending by order.
func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roles.List(ctx, s.db)
	if err != nil {
		return nil, domain.ErrInternal("list roles", err)
	}
	return roles, nil
}

// Create inserts a new role and returns the fully populated entity.
func (s *RoleService) Create(ctx context.Context, input domain.RoleCreate) (*domain.Role, error) {
	if err := input.Validate(); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	role := &domain.Role{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Color:     input.Color,
		Order:     *input.Order,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.roles.Create(ctx, s.db, role); err != nil {
		return nil, domain.ErrInternal("create role", err)
	}
	return role, nil
}

// Update applies the populated fields of a partial update and returns the
// post-update entity.
func (s *RoleService) Update(ctx context.Context, id string, input domain.RoleUpdate) (*domain.Role, error) {
	role, err := s.roles.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, domain.ErrInternal("find role", err)
	}
	if role == nil {
		return nil, domain.ErrNotFound("role", id)
	}

	input.Apply(role)
	if err := s.roles.Update(ctx, s.db, role); err != nil {
		if _, ok := err.(*domain.AppError); ok {
			return nil, err
		}
		return nil, domain.ErrInternal("update role", err)
	}
	return role, nil
}

// Delete removes a role. Players referencing it keep their role_id: the
// reference is deliberately left dangling rather than cascading or blocking.
func (s *RoleService) Delete(ctx context.Context, id string) error {
	err := s.roles.Delete(ctx, s.db, id)
	if err != nil {
		if _, ok := err.(*domain.AppError); ok {
			return err
		}
		return domain.ErrInternal("delete role", err)
	}
	return nil
}
