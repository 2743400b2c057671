package app

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/almeidamaycon094-ux/heasystaff/internal/auth"
	"github.com/almeidamaycon094-ux/heasystaff/internal/handler"
	"github.com/almeidamaycon094-ux/heasystaff/internal/repository"
	"github.com/almeidamaycon094-ux/heasystaff/internal/service"
)

// RouterDeps holds all dependencies needed by NewRouter.
type RouterDeps struct {
	DB          *sql.DB
	JWTMgr      *auth.JWTManager
	Logger      *slog.Logger
	CORSOrigins string
}

// NewRouter assembles the chi.Router with all routes and middleware.
// Reads are public; mutations sit behind the bearer-token middleware.
func NewRouter(deps RouterDeps) chi.Router {
	db := deps.DB
	jwtMgr := deps.JWTMgr
	logger := deps.Logger

	// Repositories
	adminRepo := repository.NewAdminRepository()
	roleRepo := repository.NewRoleRepository()
	playerRepo := repository.NewPlayerRepository()
	settingsRepo := repository.NewSettingsRepository()

	// Services
	authSvc := service.NewAuthService(db, adminRepo, jwtMgr)
	roleSvc := service.NewRoleService(db, roleRepo)
	playerSvc := service.NewPlayerService(db, playerRepo, roleRepo)
	settingsSvc := service.NewSettingsService(db, settingsRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	roleHandler := handler.NewRoleHandler(roleSvc)
	playerHandler := handler.NewPlayerHandler(playerSvc)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)

	// Router
	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(handler.Recovery(logger))
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(logger))
	r.Use(handler.CORSWithOrigins(deps.CORSOrigins))
	r.Use(handler.JSONContentType)

	// Health (no auth)
	r.Get("/health", handler.HealthHandler(db))

	r.Route("/api", func(r chi.Router) {
		// Auth routes (no auth)
		r.Post("/auth/login", authHandler.Login)

		// Public reads
		r.Get("/roles", roleHandler.List)
		r.Get("/players", playerHandler.List)
		r.Get("/settings", settingsHandler.Get)

		// Admin-authenticated mutations
		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate(jwtMgr))

			r.Post("/roles", roleHandler.Create)
			r.Put("/roles/{id}", roleHandler.Update)
			r.Delete("/roles/{id}", roleHandler.Delete)

			r.Post("/players", playerHandler.Create)
			r.Put("/players/{id}", playerHandler.Update)
			r.Delete("/players/{id}", playerHandler.Delete)

			r.Put("/settings", settingsHandler.Update)
		})
	})

	return r
}
