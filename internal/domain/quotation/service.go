package quotation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoItems  = errors.New("quotation has no line items")
	ErrNoClient = errors.New("quotation has no client")
)

const fallbackDisplayName = "Cotización sin nombre"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type SaveInput struct {
	// ID empty means first save; set means update in place.
	ID          string
	DisplayName string
	Quotation
}

// Save persists a quotation. On first save it assigns the id, the creation
// timestamp and the reference code; re-saves keep all three and replace the
// rest of the record.
func (s *Service) Save(ctx context.Context, in SaveInput) (*SavedQuotation, error) {
	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}

	rec := SavedQuotation{
		ID:          in.ID,
		DisplayName: displayName(in),
		Quotation:   in.Quotation,
	}

	if in.ID == "" {
		rec.ID = uuid.NewString()
		rec.CreatedAt = s.now()
		rec.Reference = NewReference(s.now())
	} else {
		existing, err := s.repo.Get(ctx, in.ID)
		if err != nil {
			return nil, fmt.Errorf("load quotation for update: %w", err)
		}
		rec.CreatedAt = existing.CreatedAt
		rec.Reference = existing.Reference
		if rec.Reference == "" {
			rec.Reference = NewReference(s.now())
		}
	}

	if err := s.repo.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("save quotation: %w", err)
	}
	return &rec, nil
}

func (s *Service) Get(ctx context.Context, id string) (*SavedQuotation, error) {
	return s.repo.Get(ctx, id)
}

// List returns saved quotations, newest first. A non-empty filter matches
// display name, client or company, case-insensitively.
func (s *Service) List(ctx context.Context, filter string) ([]SavedQuotation, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter == "" {
		return recs, nil
	}
	needle := strings.ToLower(filter)
	out := make([]SavedQuotation, 0, len(recs))
	for _, rec := range recs {
		haystack := strings.ToLower(rec.DisplayName + " " + rec.ClientName + " " + rec.CompanyName)
		if strings.Contains(haystack, needle) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func displayName(in SaveInput) string {
	for _, candidate := range []string{in.DisplayName, in.ClientName, in.CompanyName} {
		if name := strings.TrimSpace(candidate); name != "" {
			return name
		}
	}
	return fallbackDisplayName
}
