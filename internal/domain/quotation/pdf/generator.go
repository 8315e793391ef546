package pdf

import (
	"time"

	"cotiza-jara/go_backend/internal/domain/quotation"
)

// Issuer identifies who emits the document.
type Issuer struct {
	Name     string
	Location string
	SignedBy string
	Phone    string
	Email    string
}

// BankDetails fills the payment panel at the bottom of the document.
type BankDetails struct {
	Bank    string
	Holder  string
	Account string
	CLABE   string
}

// Document is everything the layout needs for one render call. Reference
// must already be resolved by the caller: exactly one code per document,
// used in the header and again in the footer.
type Document struct {
	quotation.Quotation
	Reference string
	IssuedAt  time.Time
	Issuer    Issuer
	Bank      BankDetails
}

type Generator interface {
	Generate(doc Document) ([]byte, error)
}
