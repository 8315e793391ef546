package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"cotiza-jara/go_backend/internal/app/config"
	"cotiza-jara/go_backend/internal/app/http/handlers"
	"cotiza-jara/go_backend/internal/app/http/middleware"
)

func NewRouter(cfg *config.Config, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.CORSAllowOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Internal-Token"},
	}))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.InternalAuth(cfg.InternalToken))

			r.Get("/quotations", h.ListQuotations)
			r.Post("/quotations", h.CreateQuotation)
			r.Post("/quotations/pdf", h.DownloadPDF)
			r.Get("/quotations/{id}", h.GetQuotation)
			r.Put("/quotations/{id}", h.UpdateQuotation)
			r.Delete("/quotations/{id}", h.DeleteQuotation)
			r.Get("/quotations/{id}/pdf", h.RenderSavedPDF)
		})
	})

	return r
}
