package service

import (
	"context"
	"database/sql"

	"github.com/almeidamaycon094-ux/heasystaff/internal/domain"
	"github.com/almeidamaycon094-ux/heasystaff/internal/repository"
)

// SettingsService manages the settings singleton.
type SettingsService struct {
	db       *sql.DB
	settings repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(db *sql.DB, settings repository.SettingsRepository) *SettingsService {
	return &SettingsService{db: db, settings: settings}
}

// Get returns the settings row. A missing row yields the default instance
// rather than an error, so the public site keeps working even if bootstrap
// never ran against this database.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settings.Get(ctx, s.db)
	if err != nil {
		return nil, domain.ErrInternal("get settings", err)
	}
	if settings == nil {
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

// Update writes the supplied fields by the fixed singleton ID and returns the
// stored row.
func (s *SettingsService) Update(ctx context.Context, input domain.SettingsUpdate) (*domain.Settings, error) {
	if err := input.Validate(); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	updated := &domain.Settings{ID: domain.SettingsID, ContactLink: *input.ContactLink}
	if err := s.settings.Update(ctx, s.db, updated); err != nil {
		return nil, domain.ErrInternal("update settings", err)
	}
	return s.Get(ctx)
}
