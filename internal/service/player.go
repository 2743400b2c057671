package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/almeidamaycon094-ux/heasystaff/internal/domain"
	"github.com/almeidamaycon094-ux/heasystaff/internal/repository"
)

// PlayerService implements player CRUD with role reference checks.
type PlayerService struct {
	db      *sql.DB
	players repository.PlayerRepository
	roles   repository.RoleRepository
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(db *sql.DB, players repository.PlayerRepository, roles repository.RoleRepository) *PlayerService {
	return &PlayerService{db: db, players: players, roles: roles}
}

// List returns all players in insertion order.
func (s *PlayerService) List(ctx context.Context) ([]domain.Player, error) {
	players, err := s.players.List(ctx, s.db)
	if err != nil {
		return nil, domain.ErrInternal("list players", err)
	}
	return players, nil
}

// Create validates the role reference, then inserts the player. Nothing is
// written when the role does not exist.
func (s *PlayerService) Create(ctx context.Context, input domain.PlayerCreate) (*domain.Player, error) {
	if err := input.Validate(); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	if err := s.checkRole(ctx, input.RoleID); err != nil {
		return nil, err
	}

	player := &domain.Player{
		ID:                uuid.New().String(),
		MinecraftUsername: input.MinecraftUsername,
		RoleID:            input.RoleID,
		Status:            input.Status,
		Description:       input.Description,
		CreatedAt:         time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.players.Create(ctx, s.db, player); err != nil {
		return nil, domain.ErrInternal("create player", err)
	}
	return player, nil
}

// Update applies the populated fields of a partial update. A supplied role_id
// is re-validated first; a failed check aborts the whole update.
func (s *PlayerService) Update(ctx context.Context, id string, input domain.PlayerUpdate) (*domain.Player, error) {
	player, err := s.players.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, domain.ErrInternal("find player", err)
	}
	if player == nil {
		return nil, domain.ErrNotFound("player", id)
	}

	if input.RoleID != nil {
		if err := s.checkRole(ctx, *input.RoleID); err != nil {
			return nil, err
		}
	}

	input.Apply(player)
	if err := s.players.Update(ctx, s.db, player); err != nil {
		if _, ok := err.(*domain.AppError); ok {
			return nil, err
		}
		return nil, domain.ErrInternal("update player", err)
	}
	return player, nil
}

// Delete removes a player.
func (s *PlayerService) Delete(ctx context.Context, id string) error {
	err := s.players.Delete(ctx, s.db, id)
	if err != nil {
		if _, ok := err.(*domain.AppError); ok {
			return err
		}
		return domain.ErrInternal("delete player", err)
	}
	return nil
}

func (s *PlayerService) checkRole(ctx context.Context, roleID string) error {
	role, err := s.roles.FindByID(ctx, s.db, roleID)
	if err != nil {
		return domain.ErrInternal("find role", err)
	}
	if role == nil {
		return domain.ErrNotFound("role", roleID)
	}
	return nil
}
