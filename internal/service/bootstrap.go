package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/almeidamaycon094-ux/heasystaff/internal/domain"
	"github.com/almeidamaycon094-ux/heasystaff/internal/infra"
	"github.com/almeidamaycon094-ux/heasystaff/internal/repository"
)

// Roles seeded into an empty roles table.
var defaultRoles = []struct {
	Name  string
	Color string
	Order int
}{
	{"CEO", "#9333EA", 1},
	{"Admin", "#A855F7", 2},
	{"Moderador", "#3B82F6", 3},
	{"Suporte", "#06B6D4", 4},
	{"Estagiário", "#EAB308", 5},
	{"Builder", "#F97316", 6},
}

// Bootstrap seeds the database after migrations have run. Idempotent: the
// admin is created only when its email is absent, roles only when the table
// is empty, settings only when the singleton row is missing.
type Bootstrap struct {
	db       *sql.DB
	admins   repository.AdminRepository
	roles    repository.RoleRepository
	settings repository.SettingsRepository
	cfg      *infra.Config
	logger   *slog.Logger
}

// NewBootstrap creates a Bootstrap.
func NewBootstrap(db *sql.DB, admins repository.AdminRepository, roles repository.RoleRepository,
	settings repository.SettingsRepository, cfg *infra.Config, logger *slog.Logger) *Bootstrap {
	return &Bootstrap{db: db, admins: admins, roles: roles, settings: settings, cfg: cfg, logger: logger}
}

// Run executes all seed steps.
func (b *Bootstrap) Run(ctx context.Context) error {
	if err := b.seedAdmin(ctx); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := b.seedRoles(ctx); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	if err := b.seedSettings(ctx); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	return nil
}

func (b *Bootstrap) seedAdmin(ctx context.Context) error {
	existing, err := b.admins.FindByEmail(ctx, b.db, b.cfg.SeedAdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(b.cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := &domain.Admin{
		ID:           uuid.New().String(),
		Email:        b.cfg.SeedAdminEmail,
		PasswordHash: string(hash),
	}
	if err := b.admins.Create(ctx, b.db, admin); err != nil {
		return err
	}
	b.logger.Info("seeded admin account", "email", admin.Email)
	return nil
}

func (b *Bootstrap) seedRoles(ctx context.Context) error {
	count, err := b.roles.Count(ctx, b.db)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range defaultRoles {
		role := &domain.Role{
			ID:        uuid.New().String(),
			Name:      seed.Name,
			Color:     seed.Color,
			Order:     seed.Order,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := b.roles.Create(ctx, b.db, role); err != nil {
			return err
		}
	}
	b.logger.Info("seeded default roles", "count", len(defaultRoles))
	return nil
}

func (b *Bootstrap) seedSettings(ctx context.Context) error {
	existing, err := b.settings.Get(ctx, b.db)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	settings := &domain.Settings{ID: domain.SettingsID, ContactLink: b.cfg.SeedContactLink}
	if err := b.settings.Create(ctx, b.db, settings); err != nil {
		return err
	}
	b.logger.Info("seeded settings", "contact_link", settings.ContactLink)
	return nil
}
