package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"cotiza-jara/go_backend/internal/domain/quotation"
)

type LineItemRequest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gt=0"`
}

type SaveQuotationRequest struct {
	DisplayName     string            `json:"display_name"`
	ClientName      string            `json:"client_name"`
	CompanyName     string            `json:"company_name"`
	ApplyTax        bool              `json:"apply_tax"`
	ShowBankDetails bool              `json:"show_bank_details"`
	Items           []LineItemRequest `json:"items" validate:"required,min=1,dive"`
}

// QuotationResponse carries the stored record plus the derived amounts,
// which are always recomputed and never persisted.
type QuotationResponse struct {
	quotation.SavedQuotation
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func toResponse(rec quotation.SavedQuotation) QuotationResponse {
	return QuotationResponse{
		SavedQuotation: rec,
		Subtotal:       quotation.Subtotal(rec.Items),
		Tax:            quotation.Tax(rec.Items),
		Total:          quotation.Total(rec.Items, rec.ApplyTax),
	}
}

func (req SaveQuotationRequest) toDomain() quotation.Quotation {
	q := quotation.Quotation{
		ClientName:      req.ClientName,
		CompanyName:     req.CompanyName,
		ApplyTax:        req.ApplyTax,
		ShowBankDetails: req.ShowBankDetails,
	}
	for _, it := range req.Items {
		id := it.ID
		if id == "" {
			id = uuid.NewString()
		}
		q.Items = append(q.Items, quotation.LineItem{
			ID:        id,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return q
}

func (h *Handlers) ListQuotations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Svc.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		slog.Error("list quotations", "error", err)
		http.Error(w, "failed to list quotations", http.StatusInternalServerError)
		return
	}
	out := make([]QuotationResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) GetQuotation(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, quotation.ErrNotFound) {
			http.Error(w, "quotation not found", http.StatusNotFound)
			return
		}
		slog.Error("get quotation", "error", err)
		http.Error(w, "failed to load quotation", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(*rec))
}

func (h *Handlers) CreateQuotation(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSaveRequest(w, r)
	if !ok {
		return
	}
	rec, err := h.Svc.Save(r.Context(), quotation.SaveInput{
		DisplayName: req.DisplayName,
		Quotation:   req.toDomain(),
	})
	if err != nil {
		h.saveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toResponse(*rec))
}

func (h *Handlers) UpdateQuotation(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSaveRequest(w, r)
	if !ok {
		return
	}
	rec, err := h.Svc.Save(r.Context(), quotation.SaveInput{
		ID:          chi.URLParam(r, "id"),
		DisplayName: req.DisplayName,
		Quotation:   req.toDomain(),
	})
	if err != nil {
		h.saveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(*rec))
}

func (h *Handlers) DeleteQuotation(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, quotation.ErrNotFound) {
			http.Error(w, "quotation not found", http.StatusNotFound)
			return
		}
		slog.Error("delete quotation", "error", err)
		http.Error(w, "failed to delete quotation", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) decodeSaveRequest(w http.ResponseWriter, r *http.Request) (SaveQuotationRequest, bool) {
	var req SaveQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return req, false
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func (h *Handlers) saveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quotation.ErrNoItems):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, quotation.ErrNotFound):
		http.Error(w, "quotation not found", http.StatusNotFound)
	default:
		slog.Error("save quotation", "error", err)
		http.Error(w, "failed to save quotation", http.StatusInternalServerError)
	}
}
