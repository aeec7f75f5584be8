package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/blaisecz/cycle-tracker/internal/cycle"
	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/blaisecz/cycle-tracker/internal/service"
	"github.com/blaisecz/cycle-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// PredictionHandler serves predictions and calendar views.
type PredictionHandler struct {
	service service.PredictionService
}

func NewPredictionHandler(service service.PredictionService) *PredictionHandler {
	return &PredictionHandler{service: service}
}

// Latest handles GET /v1/users/{userId}/predictions/latest
// @Summary Latest prediction
// @Description Predict the next period, ovulation day and fertile window from the most recent entry, with the current cycle day in the user's timezone.
// @Tags predictions
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.LatestPredictionResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found or no entries recorded"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/predictions/latest [get]
func (h *PredictionHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Latest(r.Context(), userID)
	if err != nil {
		writePredictionError(w, r, err, "Failed to compute prediction")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Calendar handles GET /v1/users/{userId}/calendar
// @Summary Month calendar
// @Description Render a Sunday-first month grid. The full variant shows all recorded periods, ovulation, fertile window and predicted period; the mini variant shows only the latest period, ovulation and predicted period.
// @Tags predictions
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param month query string false "Month to render (YYYY-MM), defaults to the current month in the user's timezone" example(2024-02)
// @Param variant query string false "Rendering variant" Enums(full, mini) default(full)
// @Success 200 {object} domain.CalendarResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/calendar [get]
func (h *PredictionHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	month, ok := parseMonth(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Calendar(r.Context(), userID, month, r.URL.Query().Get("variant"))
	if err != nil {
		writeCalendarError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Day handles GET /v1/users/{userId}/calendar/days/{date}
// @Summary Selected date details
// @Description List every category that applies to a date, in the order period, predicted, ovulation, fertile, plus the single category the full calendar shows.
// @Tags predictions
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param date path string true "Date (YYYY-MM-DD)" example(2024-02-15)
// @Success 200 {object} domain.CalendarDayInfo
// @Failure 400 {object} problem.Problem "Invalid user ID or date"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/calendar/days/{date} [get]
func (h *PredictionHandler) Day(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	day, err := cycle.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		problem.BadRequest("Invalid date format, expected YYYY-MM-DD").Write(w)
		return
	}

	resp, err := h.service.Day(r.Context(), userID, day)
	if err != nil {
		writePredictionError(w, r, err, "Failed to classify date")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// parseMonth reads the optional month query parameter. An omitted month is
// the zero time, which the service resolves in the user's timezone.
func parseMonth(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return time.Time{}, true
	}
	month, err := time.Parse("2006-01", raw)
	if err != nil {
		problem.ValidationError("Invalid query parameters", []problem.FieldError{
			{Field: "month", Message: "must be a month in YYYY-MM format"},
		}).Write(w)
		return time.Time{}, false
	}
	return month, true
}

func writeCalendarError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, cycle.ErrUnknownVariant) {
		problem.ValidationError("Invalid query parameters", []problem.FieldError{
			{Field: "variant", Message: "must be one of: full mini"},
		}).Write(w)
		return
	}
	writePredictionError(w, r, err, "Failed to render calendar")
}

func writePredictionError(w http.ResponseWriter, r *http.Request, err error, internal string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").Write(w)
	case errors.Is(err, domain.ErrNoEntries):
		problem.NotFound("No period entries recorded yet").Write(w)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg(internal)
		problem.InternalError(internal).Write(w)
	}
}
