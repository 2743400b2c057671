package handler

import (
	"database/sql"
	"net/http"

	"github.com/almeidamaycon094-ux/heasystaff/internal/infra"
)

// HealthHandler returns a liveness handler that pings the database.
func HealthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := infra.HealthCheck(r.Context(), db); err != nil {
			RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
		RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
