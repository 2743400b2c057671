package repository

import (
	"context"
	"database/sql"

	"github.com/almeidamaycon094-ux/heasystaff/internal/domain"
)

// DBTX abstracts *sql.DB and *sql.Tx so repositories work with both.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// AdminRepository provides access to admins.
type AdminRepository interface {
	// FindByEmail returns an admin by email, or nil if not found.
	FindByEmail(ctx context.Context, db DBTX, email string) (*domain.Admin, error)

	// Create inserts a new admin.
	Create(ctx context.Context, db DBTX, admin *domain.Admin) error
}

// RoleRepository provides access to roles.
type RoleRepository interface {
	// List returns all roles ordered ascending by the order column.
	List(ctx context.Context, db DBTX) ([]domain.Role, error)

	// FindByID returns a role by ID, or nil if not found.
	FindByID(ctx context.Context, db DBTX, id string) (*domain.Role, error)

	// Create inserts a new role.
	Create(ctx context.Context, db DBTX, role *domain.Role) error

	// Update overwrites all mutable columns of an existing role.
	Update(ctx context.Context, db DBTX, role *domain.Role) error

	// Delete removes a role. Returns NOT_FOUND when no row matched.
	Delete(ctx context.Context, db DBTX, id string) error

	// Count returns the number of roles.
	Count(ctx context.Context, db DBTX) (int, error)
}

// PlayerRepository provides access to players.
type PlayerRepository interface {
	// List returns all players in insertion order.
	List(ctx context.Context, db DBTX) ([]domain.Player, error)

	// FindByID returns a player by ID, or nil if not found.
	FindByID(ctx context.Context, db DBTX, id string) (*domain.Player, error)

	// Create inserts a new player.
	Create(ctx context.Context, db DBTX, player *domain.Player) error

	// Update overwrites all mutable columns of an existing player.
	Update(ctx context.Context, db DBTX, player *domain.Player) error

	// Delete removes a player. Returns NOT_FOUND when no row matched.
	Delete(ctx context.Context, db DBTX, id string) error
}

// SettingsRepository provides access to the settings singleton row.
type SettingsRepository interface {
	// Get returns the settings row, or nil if absent.
	Get(ctx context.Context, db DBTX) (*domain.Settings, error)

	// Create inserts the singleton row.
	Create(ctx context.Context, db DBTX, settings *domain.Settings) error

	// Update writes the settings row by its fixed ID without an existence check.
	Update(ctx context.Context, db DBTX, settings *domain.Settings) error
}
