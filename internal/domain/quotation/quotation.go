package quotation

import "time"

// TaxRate is the fixed IVA surcharge applied when a quotation opts in.
const TaxRate = 0.08

type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// LineSubtotal is derived, never stored.
func (it LineItem) LineSubtotal() float64 {
	return float64(it.Quantity) * it.UnitPrice
}

type Quotation struct {
	ClientName      string     `json:"client_name"`
	CompanyName     string     `json:"company_name"`
	Items           []LineItem `json:"items"`
	ApplyTax        bool       `json:"apply_tax"`
	ShowBankDetails bool       `json:"show_bank_details"`
}

// SavedQuotation is the persisted variant. Reference is assigned once at
// first save and reused on every later render.
type SavedQuotation struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Reference   string    `json:"reference"`
	CreatedAt   time.Time `json:"created_at"`
	Quotation
}
