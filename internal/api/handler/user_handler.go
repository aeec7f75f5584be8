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

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /v1/users
// @Summary Create a user
// @Description Register a user with the IANA timezone that decides which day is today
// @Tags users
// @Accept json
// @Produce json
// @Param request body domain.CreateUserRequest true "User creation request"
// @Success 201 {object} domain.UserResponse
// @Failure 400 {object} problem.Problem
// @Failure 409 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if !decodeUserBody(w, r, &req) {
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			problem.Conflict("User already exists").Write(w)
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("create user")
		problem.InternalError("Failed to create user").Write(w)
		return
	}

	respondJSON(w, http.StatusCreated, user.ToResponse())
}

// GetByID handles GET /v1/users/{userId}
// @Summary Get a user
// @Tags users
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.UserResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId} [get]
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		writeUserError(w, r, err, "Failed to get user")
		return
	}

	respondJSON(w, http.StatusOK, user.ToResponse())
}

// Update handles PATCH /v1/users/{userId}
// @Summary Change a user's timezone
// @Description Move the user to another IANA timezone. Recorded entries keep their dates; predictions and the calendar use the new zone for today.
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.UpdateUserRequest true "New timezone"
// @Success 200 {object} domain.UserResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId} [patch]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	var req domain.UpdateUserRequest
	if !decodeUserBody(w, r, &req) {
		return
	}

	user, err := h.service.UpdateTimezone(r.Context(), userID, &req)
	if err != nil {
		writeUserError(w, r, err, "Failed to update user")
		return
	}

	respondJSON(w, http.StatusOK, user.ToResponse())
}

func decodeUserBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return false
	}
	if fieldErrors := validation.Validate(dst); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return false
	}
	return true
}

func writeUserError(w http.ResponseWriter, r *http.Request, err error, internal string) {
	if errors.Is(err, domain.ErrNotFound) {
		problem.NotFound("User not found").Write(w)
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Msg(internal)
	problem.InternalError(internal).Write(w)
}
