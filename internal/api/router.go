package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/cycle-tracker/docs"
	"github.com/blaisecz/cycle-tracker/internal/api/handler"
	"github.com/blaisecz/cycle-tracker/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	logger               zerolog.Logger
	userHandler          *handler.UserHandler
	periodEntryHandler   *handler.PeriodEntryHandler
	predictionHandler    *handler.PredictionHandler
	calendarImageHandler *handler.CalendarImageHandler
	settingsHandler      *handler.SettingsHandler
	insightsHandler      *handler.InsightsHandler
}

func NewRouter(
	logger zerolog.Logger,
	userHandler *handler.UserHandler,
	periodEntryHandler *handler.PeriodEntryHandler,
	predictionHandler *handler.PredictionHandler,
	calendarImageHandler *handler.CalendarImageHandler,
	settingsHandler *handler.SettingsHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		logger:               logger,
		userHandler:          userHandler,
		periodEntryHandler:   periodEntryHandler,
		predictionHandler:    predictionHandler,
		calendarImageHandler: calendarImageHandler,
		settingsHandler:      settingsHandler,
		insightsHandler:      insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Recovery)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)
			r.Patch("/{userId}", rt.userHandler.Update)

			r.Route("/{userId}/period-entries", func(r chi.Router) {
				r.Post("/", rt.periodEntryHandler.Create)
				r.Get("/", rt.periodEntryHandler.List)
				r.Get("/stats", rt.periodEntryHandler.Stats)
				r.Get("/{entryId}", rt.periodEntryHandler.GetByID)
				r.Patch("/{entryId}", rt.periodEntryHandler.Update)
				r.Delete("/{entryId}", rt.periodEntryHandler.Delete)
			})

			r.Get("/{userId}/predictions/latest", rt.predictionHandler.Latest)
			r.Get("/{userId}/calendar", rt.predictionHandler.Calendar)
			r.Get("/{userId}/calendar/days/{date}", rt.predictionHandler.Day)
			r.Get("/{userId}/calendar/image", rt.calendarImageHandler.Image)

			r.Get("/{userId}/settings", rt.settingsHandler.Get)
			r.Put("/{userId}/settings", rt.settingsHandler.Update)

			r.Get("/{userId}/insights", rt.insightsHandler.GetInsights)
		})
	})

	return r
}
