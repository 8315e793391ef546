package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"cotiza-jara/go_backend/internal/domain/quotation"
	"cotiza-jara/go_backend/internal/domain/quotation/render"
)

var validate = validator.New()

type Handlers struct {
	Svc      *quotation.Service
	Renderer *render.Service
}

func New(svc *quotation.Service, renderer *render.Service) *Handlers {
	return &Handlers{Svc: svc, Renderer: renderer}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
