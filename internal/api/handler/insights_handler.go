package handler

import (
	"errors"
	"net/http"

	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/blaisecz/cycle-tracker/internal/llm"
	"github.com/blaisecz/cycle-tracker/internal/service"
	"github.com/blaisecz/cycle-tracker/pkg/problem"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// InsightsHandler handles cycle insights endpoints.
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// GetInsights handles GET /v1/users/{userId}/insights
// @Summary Get LLM-powered cycle insights
// @Description Generate a non-medical narrative of the latest prediction and entry statistics.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.InsightsResponse "Cycle insights with LLM analysis"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found or no entries recorded"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 409 {object} problem.Problem "Latest entry changed during generation"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	result, err := h.insightsService.Generate(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrNoEntries):
			problem.NotFound("No period entries recorded yet").Write(w)
		case errors.Is(err, domain.ErrConflict):
			problem.Conflict("Entries changed while generating insights, retry the request").Write(w)
		case errors.Is(err, llm.ErrOpenAIUnavailable):
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
		case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("insights generation failed")
			problem.BadGateway("Failed to generate insights from LLM").Write(w)
		default:
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("generate insights")
			problem.InternalError("Failed to generate insights").Write(w)
		}
		return
	}

	// Attach OTEL trace ID (if present) to response for correlation
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	respondJSON(w, http.StatusOK, result)
}
