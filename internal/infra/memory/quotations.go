// Package memory holds a map-backed quotation.Repository used by tests and
// local tooling that should not need a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"cotiza-jara/go_backend/internal/domain/quotation"
)

type QuotationRepo struct {
	mu   sync.RWMutex
	recs map[string]quotation.SavedQuotation
}

func NewQuotationRepo() *QuotationRepo {
	return &QuotationRepo{recs: make(map[string]quotation.SavedQuotation)}
}

func (r *QuotationRepo) List(ctx context.Context) ([]quotation.SavedQuotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]quotation.SavedQuotation, 0, len(r.recs))
	for _, rec := range r.recs {
		out = append(out, rec)
	}
	// Same ordering the postgres implementation returns.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *QuotationRepo) Get(ctx context.Context, id string) (*quotation.SavedQuotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.recs[id]
	if !ok {
		return nil, quotation.ErrNotFound
	}
	return &rec, nil
}

func (r *QuotationRepo) Upsert(ctx context.Context, rec quotation.SavedQuotation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs[rec.ID] = rec
	return nil
}

func (r *QuotationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.recs[id]; !ok {
		return quotation.ErrNotFound
	}
	delete(r.recs, id)
	return nil
}
