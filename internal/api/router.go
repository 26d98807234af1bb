package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/sleep-diary/docs"
	"github.com/blaisecz/sleep-diary/internal/api/handler"
	"github.com/blaisecz/sleep-diary/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	userHandler        *handler.UserHandler
	sleepRecordHandler *handler.SleepRecordHandler
	syncHandler        *handler.SyncHandler
	scheduleHandler    *handler.ScheduleHandler
	insightsHandler    *handler.InsightsHandler
	log                *zap.Logger
}

func NewRouter(
	userHandler *handler.UserHandler,
	sleepRecordHandler *handler.SleepRecordHandler,
	syncHandler *handler.SyncHandler,
	scheduleHandler *handler.ScheduleHandler,
	insightsHandler *handler.InsightsHandler,
	log *zap.Logger,
) *Router {
	return &Router{
		userHandler:        userHandler,
		sleepRecordHandler: sleepRecordHandler,
		syncHandler:        syncHandler,
		scheduleHandler:    scheduleHandler,
		insightsHandler:    insightsHandler,
		log:                log.Named("http"),
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger(rt.log))
	r.Use(middleware.Recovery(rt.log))

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
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			// Daily sleep records (nested under users)
			r.Route("/{userId}/sleep-records", func(r chi.Router) {
				r.Get("/", rt.sleepRecordHandler.List)
				r.Get("/week", rt.sleepRecordHandler.Week)
				r.Post("/sync", rt.syncHandler.SyncHealth)
				r.Post("/tracking", rt.syncHandler.CompleteTracking)
				r.Get("/{date}", rt.sleepRecordHandler.Get)
				r.Put("/{date}", rt.sleepRecordHandler.SaveManual)
				r.Delete("/{date}", rt.sleepRecordHandler.Delete)
			})

			// Bedtime schedule
			r.Route("/{userId}/schedule", func(r chi.Router) {
				r.Get("/", rt.scheduleHandler.Get)
				r.Put("/", rt.scheduleHandler.Put)
				r.Get("/next-reminder", rt.scheduleHandler.NextReminder)
			})

			// Sleep insights
			r.Route("/{userId}/sleep", func(r chi.Router) {
				r.Get("/chronotype", rt.insightsHandler.GetChronotype)
				r.Get("/insights", rt.insightsHandler.GetInsights)
				r.Post("/insights/feedback", rt.insightsHandler.PostFeedback)
			})
		})
	})

	return r
}
