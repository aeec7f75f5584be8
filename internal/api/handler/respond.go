package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/blaisecz/cycle-tracker/internal/cycle"
	"github.com/blaisecz/cycle-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseUserID writes a 400 problem and returns false on a malformed ID.
func parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, false
	}
	return userID, true
}

// parseDateParam parses an optional YYYY-MM-DD query parameter.
func parseDateParam(r *http.Request, name string, fieldErrors *[]problem.FieldError) *time.Time {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	d, err := cycle.ParseDate(raw)
	if err != nil {
		*fieldErrors = append(*fieldErrors, problem.FieldError{
			Field:   name,
			Message: "must be a date in YYYY-MM-DD format",
		})
		return nil
	}
	return &d
}
