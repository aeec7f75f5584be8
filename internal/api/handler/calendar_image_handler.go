package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/cycle-tracker/internal/render"
	"github.com/blaisecz/cycle-tracker/internal/service"
	"github.com/rs/zerolog"
)

// CalendarImageHandler serves the month calendar as a PNG in the user's theme.
type CalendarImageHandler struct {
	predictions service.PredictionService
	settings    service.SettingsService
}

func NewCalendarImageHandler(predictions service.PredictionService, settings service.SettingsService) *CalendarImageHandler {
	return &CalendarImageHandler{predictions: predictions, settings: settings}
}

// Image handles GET /v1/users/{userId}/calendar/image
// @Summary Month calendar image
// @Description Draw the month calendar as a PNG on the background of the user's theme.
// @Tags predictions
// @Produce png
// @Param userId path string true "User UUID" format(uuid)
// @Param month query string false "Month to render (YYYY-MM), defaults to the current month in the user's timezone" example(2024-02)
// @Param variant query string false "Rendering variant" Enums(full, mini) default(full)
// @Success 200 {file} binary
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/calendar/image [get]
func (h *CalendarImageHandler) Image(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	month, ok := parseMonth(w, r)
	if !ok {
		return
	}

	cal, err := h.predictions.Calendar(r.Context(), userID, month, r.URL.Query().Get("variant"))
	if err != nil {
		writeCalendarError(w, r, err)
		return
	}
	settings, err := h.settings.Get(r.Context(), userID)
	if err != nil {
		writePredictionError(w, r, err, "Failed to load settings")
		return
	}

	resolved, err := time.Parse("2006-01", cal.Month)
	if err != nil {
		writePredictionError(w, r, err, "Failed to draw calendar")
		return
	}

	// Encode fully before writing so a failure can still become a problem response.
	var buf bytes.Buffer
	if err := render.Calendar(&buf, resolved, cal.Days, settings.Theme.Background()); err != nil {
		writePredictionError(w, r, err, "Failed to draw calendar")
		return
	}

	zerolog.Ctx(r.Context()).Debug().
		Str("month", cal.Month).
		Str("variant", cal.Variant).
		Int("bytes", buf.Len()).
		Msg("calendar image rendered")

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
