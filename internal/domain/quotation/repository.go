package quotation

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("quotation not found")

// Repository stores saved quotations as whole records. Upsert replaces the
// record wholesale when the id already exists.
type Repository interface {
	List(ctx context.Context) ([]SavedQuotation, error)
	Get(ctx context.Context, id string) (*SavedQuotation, error)
	Upsert(ctx context.Context, rec SavedQuotation) error
	Delete(ctx context.Context, id string) error
}
