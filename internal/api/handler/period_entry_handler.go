package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/cycle-tracker/internal/api/validation"
	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/blaisecz/cycle-tracker/internal/service"
	"github.com/blaisecz/cycle-tracker/pkg/pagination"
	"github.com/blaisecz/cycle-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type PeriodEntryHandler struct {
	service service.PeriodEntryService
}

func NewPeriodEntryHandler(service service.PeriodEntryService) *PeriodEntryHandler {
	return &PeriodEntryHandler{service: service}
}

// Create handles POST /v1/users/{userId}/period-entries
// @Summary Record a period start
// @Description Record the first day of a period with cycle length and period duration (defaults 28 and 5). Use client_request_id for safe retries (idempotency). Returns 200 if duplicate request, 201 if new.
// @Tags period-entries
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreatePeriodEntryRequest true "Period entry"
// @Success 201 {object} domain.PeriodEntryResponse "New entry created"
// @Success 200 {object} domain.PeriodEntryResponse "Existing entry returned (idempotent duplicate)"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid field values"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/period-entries [post]
func (h *PeriodEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.CreatePeriodEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, isExisting, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeEntryError(w, r, err, "User not found", "Failed to create period entry")
		return
	}

	status := http.StatusCreated
	if isExisting {
		status = http.StatusOK // Return 200 for idempotent duplicate
	}
	respondJSON(w, status, entry.ToResponse())
}

// List handles GET /v1/users/{userId}/period-entries
// @Summary List period entries
// @Description Fetch paginated entries sorted by last_period_date descending (newest first), each with its own prediction.
// @Tags period-entries
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "Earliest last_period_date (YYYY-MM-DD)" format(date) example(2024-01-01)
// @Param to query string false "Latest last_period_date (YYYY-MM-DD)" format(date) example(2024-12-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.PeriodEntryListResponse "Entries with pagination"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/period-entries [get]
func (h *PeriodEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeEntryError(w, r, err, "User not found", "Failed to list period entries")
		return
	}

	respondJSON(w, http.StatusOK, response)
}

// Stats handles GET /v1/users/{userId}/period-entries/stats
// @Summary Entry statistics
// @Description Count of entries with average cycle length and period duration.
// @Tags period-entries
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.PeriodEntryStats
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/period-entries/stats [get]
func (h *PeriodEntryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Stats(r.Context(), userID)
	if err != nil {
		writeEntryError(w, r, err, "User not found", "Failed to compute entry statistics")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// GetByID handles GET /v1/users/{userId}/period-entries/{entryId}
// @Summary Get a period entry
// @Description Fetch one entry with the prediction derived from it.
// @Tags period-entries
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param entryId path string true "Entry UUID" format(uuid)
// @Success 200 {object} domain.PeriodEntryResponse
// @Failure 400 {object} problem.Problem "Invalid ID"
// @Failure 404 {object} problem.Problem "User or entry not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/period-entries/{entryId} [get]
func (h *PeriodEntryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, entryID, ok := parseEntryPath(w, r)
	if !ok {
		return
	}

	entry, err := h.service.GetByID(r.Context(), userID, entryID)
	if err != nil {
		writeEntryError(w, r, err, "Period entry not found", "Failed to get period entry")
		return
	}

	respondJSON(w, http.StatusOK, entry.ToResponse())
}

// Update handles PATCH /v1/users/{userId}/period-entries/{entryId}
// @Summary Edit a period entry
// @Description Partially update an entry. Omitted fields are unchanged; the result is validated again.
// @Tags period-entries
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param entryId path string true "Entry UUID" format(uuid)
// @Param request body domain.UpdatePeriodEntryRequest true "Fields to change"
// @Success 200 {object} domain.PeriodEntryResponse
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User or entry not found"
// @Failure 422 {object} problem.Problem "Invalid field values"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/period-entries/{entryId} [patch]
func (h *PeriodEntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, entryID, ok := parseEntryPath(w, r)
	if !ok {
		return
	}

	var req domain.UpdatePeriodEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.Update(r.Context(), userID, entryID, &req)
	if err != nil {
		writeEntryError(w, r, err, "Period entry not found", "Failed to update period entry")
		return
	}

	respondJSON(w, http.StatusOK, entry.ToResponse())
}

// Delete handles DELETE /v1/users/{userId}/period-entries/{entryId}
// @Summary Delete a period entry
// @Tags period-entries
// @Param userId path string true "User UUID" format(uuid)
// @Param entryId path string true "Entry UUID" format(uuid)
// @Success 204 "Entry deleted"
// @Failure 400 {object} problem.Problem "Invalid ID"
// @Failure 404 {object} problem.Problem "User or entry not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/period-entries/{entryId} [delete]
func (h *PeriodEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, entryID, ok := parseEntryPath(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, entryID); err != nil {
		writeEntryError(w, r, err, "Period entry not found", "Failed to delete period entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseEntryPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	entryID, err := uuid.Parse(chi.URLParam(r, "entryId"))
	if err != nil {
		problem.BadRequest("Invalid entry ID format").Write(w)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, entryID, true
}

// writeEntryError maps service errors to problem responses.
func writeEntryError(w http.ResponseWriter, r *http.Request, err error, notFound, internal string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound(notFound).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.ValidationError(err.Error(), nil).Write(w)
	case errors.Is(err, domain.ErrDuplicateRequest), errors.Is(err, domain.ErrConflict):
		problem.Conflict("Request conflicts with an existing period entry").Write(w)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg(internal)
		problem.InternalError(internal).Write(w)
	}
}

func parseListFilter(r *http.Request) (domain.PeriodEntryFilter, []problem.FieldError) {
	var filter domain.PeriodEntryFilter
	var fieldErrors []problem.FieldError

	filter.From = parseDateParam(r, "from", &fieldErrors)
	filter.To = parseDateParam(r, "to", &fieldErrors)

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Reject tampered cursors before they reach the store
	filter.Cursor = r.URL.Query().Get("cursor")
	if _, err := pagination.DecodeCursor(filter.Cursor); err != nil {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "cursor",
			Message: "must be a next_cursor value from a previous page",
		})
	}

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
