package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"smata-ledger/internal/config"
	"smata-ledger/internal/transport/httpserver/handler"
	"smata-ledger/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.CORSOrigins))

	if cfg.MetricsEnabled {
		metrics := middleware.NewMetrics()
		r.Use(metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/participants", handlers.ListParticipants)
		r.Post("/participants", handlers.CreateParticipant)
		r.Get("/participants/{id}", handlers.GetParticipant)
		r.Put("/participants/{id}", handlers.UpdateParticipant)
		r.Post("/participants/{id}/toggle", handlers.ToggleParticipant)
		r.Delete("/participants/{id}", handlers.DeleteParticipant)

		r.Get("/payments", handlers.ListPayments)
		r.Post("/payments", handlers.CreatePayment)
		r.Put("/payments/{id}", handlers.UpdatePayment)
		r.Delete("/payments/{id}", handlers.DeletePayment)

		r.Get("/expenses", handlers.ListExpenses)
		r.Post("/expenses", handlers.CreateExpense)
		r.Put("/expenses/{id}", handlers.UpdateExpense)
		r.Delete("/expenses/{id}", handlers.DeleteExpense)

		r.Get("/config", handlers.GetGlobalConfig)
		r.Put("/config", handlers.SaveGlobalConfig)
		r.Get("/config/months", handlers.ListMonthlyConfigs)
		r.Get("/config/months/{month}", handlers.GetMonthlyConfig)
		r.Put("/config/months/{month}", handlers.UpsertMonthlyConfig)
		r.Delete("/config/months/{month}", handlers.DeleteMonthlyConfig)

		r.Get("/reports/overview", handlers.ReportsOverview)
		r.Get("/reports/debtors", handlers.ReportsDebtors)
		r.Get("/reports/history/{participant_id}", handlers.ReportsHistory)
		r.Get("/reports/comparison", handlers.ReportsComparison)

		r.Get("/backup/export", handlers.BackupExport)
		r.Post("/backup/import", handlers.BackupImport)
	})

	return r
}
