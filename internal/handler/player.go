package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/almeidamaycon094-ux/heasystaff/internal/domain"
	"github.com/almeidamaycon094-ux/heasystaff/internal/service"
)

// PlayerHandler handles player CRUD endpoints.
type PlayerHandler struct {
	playerSvc *service.PlayerService
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(playerSvc *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerSvc: playerSvc}
}

// List handles GET /api/players.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerSvc.List(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, players)
}

// Create handles POST /api/players.
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.PlayerCreate
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	player, err := h.playerSvc.Create(r.Context(), input)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, player)
}

// Update handles PUT /api/players/{id}.
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input domain.PlayerUpdate
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	player, err := h.playerSvc.Update(r.Context(), id, input)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, player)
}

// Delete handles DELETE /api/players/{id}.
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.playerSvc.Delete(r.Context(), id); err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]string{"message": "player deleted"})
}
