package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/mpdl-apps/cleaning-inventory/internal/http/handlers"
)

// NewRouter wires the HTTP surface. Read endpoints are open; mutating
// endpoints are rate limited and the destructive ones require a token.
func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", handlers.HealthHandler)
	r.Post("/login", handlers.LoginHandler)

	r.Get("/devices", handlers.GetDevicesHandler)
	r.Get("/products", handlers.GetProductsHandler)

	r.Get("/inventories/latest", handlers.GetLatestInventoryHandler)
	r.Get("/inventories/consolidated", handlers.GetConsolidatedHandler)
	r.With(RateLimit).Post("/inventories", handlers.SaveInventoryHandler)

	r.Get("/report", handlers.GetReportHandler)
	r.Get("/report/download", handlers.DownloadReportHandler)
	r.Get("/report/print", handlers.PrintReportHandler)
	r.Get("/report/mailto", handlers.MailtoReportHandler)
	r.Get("/report/archives", handlers.ListArchivesHandler)

	r.Group(func(pr chi.Router) {
		pr.Use(RateLimit, RequireAuth)
		pr.Post("/report/archive", handlers.ArchiveReportHandler)
		pr.Post("/report/email", handlers.EmailReportHandler)
		pr.Post("/inventories/reset", handlers.ResetInventoriesHandler)
		pr.Delete("/inventories", handlers.ClearInventoriesHandler)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
