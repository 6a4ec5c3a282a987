package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/schedule-builder/docs"
	"github.com/blaisecz/schedule-builder/internal/api/handler"
	"github.com/blaisecz/schedule-builder/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	scheduleHandler *handler.ScheduleHandler
	timeSlotHandler *handler.TimeSlotHandler
	analysisHandler *handler.AnalysisHandler
	calendarHandler *handler.CalendarHandler
	snapshotHandler *handler.SnapshotHandler
	rateLimiter     *middleware.RateLimiter
}

func NewRouter(
	scheduleHandler *handler.ScheduleHandler,
	timeSlotHandler *handler.TimeSlotHandler,
	analysisHandler *handler.AnalysisHandler,
	calendarHandler *handler.CalendarHandler,
	snapshotHandler *handler.SnapshotHandler,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		scheduleHandler: scheduleHandler,
		timeSlotHandler: timeSlotHandler,
		analysisHandler: analysisHandler,
		calendarHandler: calendarHandler,
		snapshotHandler: snapshotHandler,
		rateLimiter:     rateLimiter,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

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
		if rt.rateLimiter != nil {
			r.Use(rt.rateLimiter.Handler)
		}

		// Schedules
		r.Route("/schedules", func(r chi.Router) {
			r.Post("/", rt.scheduleHandler.Create)
			r.Get("/", rt.scheduleHandler.List)

			r.Route("/{scheduleId}", func(r chi.Router) {
				r.Get("/", rt.scheduleHandler.GetByID)
				r.Patch("/", rt.scheduleHandler.Update)
				r.Delete("/", rt.scheduleHandler.Delete)

				// Time slots (nested under schedules)
				r.Route("/time-slots", func(r chi.Router) {
					r.Post("/", rt.timeSlotHandler.Create)
					r.Get("/", rt.timeSlotHandler.List)
					r.Patch("/{slotId}", rt.timeSlotHandler.Update)
					r.Delete("/{slotId}", rt.timeSlotHandler.Delete)
				})

				r.Get("/analysis", rt.analysisHandler.GetAnalysis)
				r.Get("/insights", rt.analysisHandler.GetInsights)
				r.Get("/calendar.ics", rt.calendarHandler.Export)
			})
		})

		// Snapshot
		r.Get("/snapshot", rt.snapshotHandler.Export)
		r.Put("/snapshot", rt.snapshotHandler.Import)
	})

	return r
}
