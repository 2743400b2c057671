package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/almeidamaycon094-ux/heasystaff/internal/domain"
)

type playerRepo struct{}

// NewPlayerRepository returns a sqlite-backed PlayerRepository.
func NewPlayerRepository() PlayerRepository {
	return &playerRepo{}
}

// List returns players ordered by rowid. With sqlite that is insertion
// order, which the public roster relies on.
func (r *playerRepo) List(ctx context.Context, db DBTX) ([]domain.Player, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, minecraft_username, role_id, status, description, created_at
		FROM players ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	players := []domain.Player{}
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *player)
	}
	return players, rows.Err()
}

func (r *playerRepo) FindByID(ctx context.Context, db DBTX, id string) (*domain.Player, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, minecraft_username, role_id, status, description, created_at
		FROM players WHERE id = ?`, id)

	player, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return player, nil
}

func (r *playerRepo) Create(ctx context.Context, db DBTX, player *domain.Player) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO players (id, minecraft_username, role_id, status, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		player.ID, player.MinecraftUsername, player.RoleID, player.Status, player.Description, player.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (r *playerRepo) Update(ctx context.Context, db DBTX, player *domain.Player) error {
	res, err := db.ExecContext(ctx, `
		UPDATE players SET minecraft_username = ?, role_id = ?, status = ?, description = ?
		WHERE id = ?`,
		player.MinecraftUsername, player.RoleID, player.Status, player.Description, player.ID)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound("player", player.ID)
	}
	return nil
}

func (r *playerRepo) Delete(ctx context.Context, db DBTX, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound("player", id)
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlayer(row rowScanner) (*domain.Player, error) {
	var p domain.Player
	var description sql.NullString
	err := row.Scan(&p.ID, &p.MinecraftUsername, &p.RoleID, &p.Status, &description, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Description = description.String
	return &p, nil
}
