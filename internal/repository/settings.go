package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/almeidamaycon094-ux/heasystaff/internal/domain"
)

type settingsRepo struct{}

// NewSettingsRepository returns a sqlite-backed SettingsRepository.
func NewSettingsRepository() SettingsRepository {
	return &settingsRepo{}
}

func (r *settingsRepo) Get(ctx context.Context, db DBTX) (*domain.Settings, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, contact_link FROM settings WHERE id = ?`, domain.SettingsID)

	s := &domain.Settings{}
	var contactLink sql.NullString
	err := row.Scan(&s.ID, &contactLink)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan settings: %w", err)
	}
	s.ContactLink = contactLink.String
	return s, nil
}

func (r *settingsRepo) Create(ctx context.Context, db DBTX, settings *domain.Settings) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO settings (id, contact_link) VALUES (?, ?)`,
		settings.ID, settings.ContactLink)
	if err != nil {
		return fmt.Errorf("insert settings: %w", err)
	}
	return nil
}

// Update writes by the fixed singleton ID. Bootstrap guarantees the row
// exists, so zero affected rows is not treated as an error here.
func (r *settingsRepo) Update(ctx context.Context, db DBTX, settings *domain.Settings) error {
	_, err := db.ExecContext(ctx,
		`UPDATE settings SET contact_link = ? WHERE id = ?`,
		settings.ContactLink, domain.SettingsID)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
