package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/almeidamaycon094-ux/heasystaff/internal/domain"
	"github.com/almeidamaycon094-ux/heasystaff/internal/service"
)

// RoleHandler handles role CRUD endpoints.
type RoleHandler struct {
	roleSvc *service.RoleService
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(roleSvc *service.RoleService) *RoleHandler {
	return &RoleHandler{roleSvc: roleSvc}
}

// List handles GET /api/roles.
func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleSvc.List(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, roles)
}

// Create handles POST /api/roles.
func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.RoleCreate
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	role, err := h.roleSvc.Create(r.Context(), input)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, role)
}

// Update handles PUT /api/roles/{id}.
func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input domain.RoleUpdate
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	role, err := h.roleSvc.Update(r.Context(), id, input)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, role)
}

// Delete handles DELETE /api/roles/{id}.
func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.roleSvc.Delete(r.Context(), id); err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]string{"message": "role deleted"})
}
