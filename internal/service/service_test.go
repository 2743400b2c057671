package service

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almeidamaycon094-ux/heasystaff/internal/auth"
	"github.com/almeidamaycon094-ux/heasystaff/internal/domain"
	"github.com/almeidamaycon094-ux/heasystaff/internal/infra"
	"github.com/almeidamaycon094-ux/heasystaff/internal/repository"
)

func ptr[T any](v T) *T { return &v }

func testConfig() *infra.Config {
	return &infra.Config{
		SeedAdminEmail:    "admin@test.com",
		SeedAdminPassword: "test-password",
		SeedContactLink:   "https://discord.gg/test",
	}
}

// newTestDB opens an in-memory sqlite database with the schema applied.
// The pool is capped at one connection, so the memory database survives for
// the whole test.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := infra.NewSQLiteDB(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, infra.RunMigrations(db, noopLogger()))
	return db
}

// newSeededDB additionally runs the bootstrap seeding.
func newSeededDB(t *testing.T) (*sql.DB, *infra.Config) {
	t.Helper()

	db := newTestDB(t)
	cfg := testConfig()
	bootstrap := NewBootstrap(db,
		repository.NewAdminRepository(),
		repository.NewRoleRepository(),
		repository.NewSettingsRepository(),
		cfg, noopLogger())
	require.NoError(t, bootstrap.Run(context.Background()))
	return db, cfg
}

func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func requireAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*domain.AppError)
	require.True(t, ok, "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

// --- Bootstrap Tests ---

func TestBootstrapSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	db, cfg := newSeededDB(t)

	roleSvc := NewRoleService(db, repository.NewRoleRepository())
	roles, err := roleSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 6)
	assert.Equal(t, "CEO", roles[0].Name)
	assert.Equal(t, "#9333EA", roles[0].Color)
	assert.Equal(t, 1, roles[0].Order)
	assert.Equal(t, "Builder", roles[5].Name)
	assert.Equal(t, 6, roles[5].Order)

	settingsSvc := NewSettingsService(db, repository.NewSettingsRepository())
	settings, err := settingsSvc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.SeedContactLink, settings.ContactLink)
}

func TestBootstrapIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, cfg := newSeededDB(t)

	bootstrap := NewBootstrap(db,
		repository.NewAdminRepository(),
		repository.NewRoleRepository(),
		repository.NewSettingsRepository(),
		cfg, noopLogger())
	require.NoError(t, bootstrap.Run(ctx))

	roles, err := NewRoleService(db, repository.NewRoleRepository()).List(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 6)
}

func TestBootstrapDoesNotReseedRoles(t *testing.T) {
	ctx := context.Background()
	db, cfg := newSeededDB(t)

	roleSvc := NewRoleService(db, repository.NewRoleRepository())
	roles, err := roleSvc.List(ctx)
	require.NoError(t, err)
	require.NoError(t, roleSvc.Delete(ctx, roles[0].ID))

	// Seeding happens only on an empty table, not on a reduced one.
	bootstrap := NewBootstrap(db,
		repository.NewAdminRepository(),
		repository.NewRoleRepository(),
		repository.NewSettingsRepository(),
		cfg, noopLogger())
	require.NoError(t, bootstrap.Run(ctx))

	roles, err = roleSvc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 5)
}

// --- Auth Tests ---

func TestLogin(t *testing.T) {
	ctx := context.Background()
	db, cfg := newSeededDB(t)

	jwtMgr := auth.NewJWTManager("test-secret-key", 24*time.Hour)
	authSvc := NewAuthService(db, repository.NewAdminRepository(), jwtMgr)

	t.Run("correct credentials return a valid token", func(t *testing.T) {
		result, err := authSvc.Login(ctx, LoginInput{Email: cfg.SeedAdminEmail, Password: cfg.SeedAdminPassword})
		require.NoError(t, err)
		assert.Equal(t, "bearer", result.TokenType)

		email, err := jwtMgr.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, cfg.SeedAdminEmail, email)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, errWrongPass := authSvc.Login(ctx, LoginInput{Email: cfg.SeedAdminEmail, Password: "nope"})
		_, errUnknown := authSvc.Login(ctx, LoginInput{Email: "nobody@test.com", Password: cfg.SeedAdminPassword})

		requireAppError(t, errWrongPass, "UNAUTHORIZED")
		requireAppError(t, errUnknown, "UNAUTHORIZED")
		assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
	})

	t.Run("malformed email fails validation", func(t *testing.T) {
		_, err := authSvc.Login(ctx, LoginInput{Email: "not-an-email", Password: "x"})
		requireAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("missing password fails validation", func(t *testing.T) {
		_, err := authSvc.Login(ctx, LoginInput{Email: cfg.SeedAdminEmail})
		requireAppError(t, err, "VALIDATION_ERROR")
	})
}

// --- Role Tests ---

func TestRoleCreateAndListOrdering(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	roleSvc := NewRoleService(db, repository.NewRoleRepository())

	created, err := roleSvc.Create(ctx, domain.RoleCreate{Name: "Suporte", Color: "#06B6D4", Order: ptr(4)})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, "#06B6D4", created.Color)
	assert.Equal(t, 4, created.Order)

	_, err = roleSvc.Create(ctx, domain.RoleCreate{Name: "CEO", Color: "#9333EA", Order: ptr(1)})
	require.NoError(t, err)
	_, err = roleSvc.Create(ctx, domain.RoleCreate{Name: "Moderador", Color: "#3B82F6", Order: ptr(3)})
	require.NoError(t, err)

	roles, err := roleSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 3)
	assert.Equal(t, []int{1, 3, 4}, []int{roles[0].Order, roles[1].Order, roles[2].Order})
}

func TestRoleCreateValidation(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	roleSvc := NewRoleService(db, repository.NewRoleRepository())

	_, err := roleSvc.Create(ctx, domain.RoleCreate{Color: "#FFF", Order: ptr(1)})
	requireAppError(t, err, "VALIDATION_ERROR")

	roles, err := roleSvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestRolePartialUpdate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	roleSvc := NewRoleService(db, repository.NewRoleRepository())

	created, err := roleSvc.Create(ctx, domain.RoleCreate{Name: "Builder", Color: "#F97316", Order: ptr(6)})
	require.NoError(t, err)

	updated, err := roleSvc.Update(ctx, created.ID, domain.RoleUpdate{Color: ptr("#FFFFFF")})
	require.NoError(t, err)
	assert.Equal(t, "#FFFFFF", updated.Color)
	assert.Equal(t, "Builder", updated.Name)
	assert.Equal(t, 6, updated.Order)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestRoleUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	roleSvc := NewRoleService(db, repository.NewRoleRepository())

	_, err := roleSvc.Update(ctx, "missing-id", domain.RoleUpdate{Name: ptr("x")})
	requireAppError(t, err, "NOT_FOUND")
}

func TestRoleDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	roleSvc := NewRoleService(db, repository.NewRoleRepository())

	created, err := roleSvc.Create(ctx, domain.RoleCreate{Name: "Admin", Color: "#A855F7", Order: ptr(2)})
	require.NoError(t, err)

	require.NoError(t, roleSvc.Delete(ctx, created.ID))

	roles, err := roleSvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, roles)

	requireAppError(t, roleSvc.Delete(ctx, created.ID), "NOT_FOUND")
}

func TestRoleDeleteLeavesPlayersDangling(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	roleSvc := NewRoleService(db, repository.NewRoleRepository())
	playerSvc := NewPlayerService(db, repository.NewPlayerRepository(), repository.NewRoleRepository())

	role, err := roleSvc.Create(ctx, domain.RoleCreate{Name: "Builder", Color: "#F97316", Order: ptr(6)})
	require.NoError(t, err)
	player, err := playerSvc.Create(ctx, domain.PlayerCreate{MinecraftUsername: "steve", RoleID: role.ID, Status: "ativo"})
	require.NoError(t, err)

	require.NoError(t, roleSvc.Delete(ctx, role.ID))

	players, err := playerSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, role.ID, players[0].RoleID)
	assert.Equal(t, player.ID, players[0].ID)
}

// --- Player Tests ---

func TestPlayerCreateRequiresExistingRole(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	playerSvc := NewPlayerService(db, repository.NewPlayerRepository(), repository.NewRoleRepository())

	_, err := playerSvc.Create(ctx, domain.PlayerCreate{MinecraftUsername: "steve", RoleID: "missing-role", Status: "ativo"})
	requireAppError(t, err, "NOT_FOUND")

	players, err := playerSvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestPlayerCreateAndList(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	roleSvc := NewRoleService(db, repository.NewRoleRepository())
	playerSvc := NewPlayerService(db, repository.NewPlayerRepository(), repository.NewRoleRepository())

	role, err := roleSvc.Create(ctx, domain.RoleCreate{Name: "Builder", Color: "#F97316", Order: ptr(6)})
	require.NoError(t, err)

	first, err := playerSvc.Create(ctx, domain.PlayerCreate{MinecraftUsername: "steve", RoleID: role.ID, Status: "ativo"})
	require.NoError(t, err)
	assert.Empty(t, first.Description)

	second, err := playerSvc.Create(ctx, domain.PlayerCreate{
		MinecraftUsername: "alex", RoleID: role.ID, Status: "pendente", Description: "new recruit",
	})
	require.NoError(t, err)

	players, err := playerSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, players, 2)
	// Insertion order is the contract.
	assert.Equal(t, first.ID, players[0].ID)
	assert.Equal(t, second.ID, players[1].ID)
	assert.Equal(t, "new recruit", players[1].Description)
}

func TestPlayerPartialUpdate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	roleSvc := NewRoleService(db, repository.NewRoleRepository())
	playerSvc := NewPlayerService(db, repository.NewPlayerRepository(), repository.NewRoleRepository())

	role, err := roleSvc.Create(ctx, domain.RoleCreate{Name: "Builder", Color: "#F97316", Order: ptr(6)})
	require.NoError(t, err)
	created, err := playerSvc.Create(ctx, domain.PlayerCreate{
		MinecraftUsername: "steve", RoleID: role.ID, Status: "ativo", Description: "builds castles",
	})
	require.NoError(t, err)

	updated, err := playerSvc.Update(ctx, created.ID, domain.PlayerUpdate{Status: ptr("banned")})
	require.NoError(t, err)
	assert.Equal(t, "banned", updated.Status)
	assert.Equal(t, "steve", updated.MinecraftUsername)
	assert.Equal(t, role.ID, updated.RoleID)
	assert.Equal(t, "builds castles", updated.Description)
}

func TestPlayerUpdateRevalidatesRole(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	roleSvc := NewRoleService(db, repository.NewRoleRepository())
	playerSvc := NewPlayerService(db, repository.NewPlayerRepository(), repository.NewRoleRepository())

	role, err := roleSvc.Create(ctx, domain.RoleCreate{Name: "Builder", Color: "#F97316", Order: ptr(6)})
	require.NoError(t, err)
	created, err := playerSvc.Create(ctx, domain.PlayerCreate{MinecraftUsername: "steve", RoleID: role.ID, Status: "ativo"})
	require.NoError(t, err)

	// The whole update aborts: status must stay untouched.
	_, err = playerSvc.Update(ctx, created.ID, domain.PlayerUpdate{
		RoleID: ptr("missing-role"),
		Status: ptr("inativo"),
	})
	requireAppError(t, err, "NOT_FOUND")

	players, err := playerSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "ativo", players[0].Status)
	assert.Equal(t, role.ID, players[0].RoleID)
}

func TestPlayerUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	playerSvc := NewPlayerService(db, repository.NewPlayerRepository(), repository.NewRoleRepository())

	_, err := playerSvc.Update(ctx, "missing-id", domain.PlayerUpdate{Status: ptr("banned")})
	requireAppError(t, err, "NOT_FOUND")
}

func TestPlayerDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	roleSvc := NewRoleService(db, repository.NewRoleRepository())
	playerSvc := NewPlayerService(db, repository.NewPlayerRepository(), repository.NewRoleRepository())

	requireAppError(t, playerSvc.Delete(ctx, "missing-id"), "NOT_FOUND")

	role, err := roleSvc.Create(ctx, domain.RoleCreate{Name: "Builder", Color: "#F97316", Order: ptr(6)})
	require.NoError(t, err)
	created, err := playerSvc.Create(ctx, domain.PlayerCreate{MinecraftUsername: "steve", RoleID: role.ID, Status: "ativo"})
	require.NoError(t, err)

	require.NoError(t, playerSvc.Delete(ctx, created.ID))

	players, err := playerSvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, players)
}

// --- Settings Tests ---

func TestSettingsDefaultWhenRowAbsent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	settingsSvc := NewSettingsService(db, repository.NewSettingsRepository())

	settings, err := settingsSvc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SettingsID, settings.ID)
	assert.Empty(t, settings.ContactLink)
}

func TestSettingsUpdate(t *testing.T) {
	ctx := context.Background()
	db, cfg := newSeededDB(t)
	settingsSvc := NewSettingsService(db, repository.NewSettingsRepository())

	settings, err := settingsSvc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.SeedContactLink, settings.ContactLink)

	updated, err := settingsSvc.Update(ctx, domain.SettingsUpdate{ContactLink: ptr("https://discord.gg/new")})
	require.NoError(t, err)
	assert.Equal(t, "https://discord.gg/new", updated.ContactLink)

	settings, err = settingsSvc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://discord.gg/new", settings.ContactLink)
}

func TestSettingsUpdateRequiresContactLink(t *testing.T) {
	ctx := context.Background()
	db, _ := newSeededDB(t)
	settingsSvc := NewSettingsService(db, repository.NewSettingsRepository())

	_, err := settingsSvc.Update(ctx, domain.SettingsUpdate{})
	requireAppError(t, err, "VALIDATION_ERROR")
}
