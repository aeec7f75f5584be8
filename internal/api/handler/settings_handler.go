package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/cycle-tracker/internal/api/validation"
	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/blaisecz/cycle-tracker/internal/service"
	"github.com/blaisecz/cycle-tracker/pkg/problem"
	"github.com/rs/zerolog"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get handles GET /v1/users/{userId}/settings
// @Summary Get settings
// @Description Theme and profile. Users who never saved settings get the light theme.
// @Tags settings
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.SettingsResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	settings, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("get settings")
		problem.InternalError("Failed to get settings").Write(w)
		return
	}

	respondJSON(w, http.StatusOK, settings.ToResponse())
}

// Update handles PUT /v1/users/{userId}/settings
// @Summary Save settings
// @Description Save theme and profile fields. Omitted fields are unchanged.
// @Tags settings
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.UpdateSettingsRequest true "Settings"
// @Success 200 {object} domain.SettingsResponse
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid field values"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/settings [put]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	settings, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.ValidationError(err.Error(), nil).Write(w)
		default:
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("save settings")
			problem.InternalError("Failed to save settings").Write(w)
		}
		return
	}

	respondJSON(w, http.StatusOK, settings.ToResponse())
}
