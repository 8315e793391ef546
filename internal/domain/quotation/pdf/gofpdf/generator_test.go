package gofpdf_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotiza-jara/go_backend/internal/domain/quotation"
	"cotiza-jara/go_backend/internal/domain/quotation/pdf"
	pdfgen "cotiza-jara/go_backend/internal/domain/quotation/pdf/gofpdf"
)

func document(itemCount int) pdf.Document {
	doc := pdf.Document{
		Quotation: quotation.Quotation{
			ClientName:      "Juan Pérez",
			CompanyName:     "ACME SA de CV",
			ApplyTax:        true,
			ShowBankDetails: true,
		},
		Reference: "COT-2026-0042",
		IssuedAt:  time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Issuer: pdf.Issuer{
			Name:     "Rafael Armando Jara Fernandez",
			Location: "San Luis Río Colorado, Sonora, México",
			SignedBy: "Rafael Armando Jara",
			Phone:    "(653) 123-4567",
			Email:    "contacto@jara.com",
		},
		Bank: pdf.BankDetails{Bank: "BBVA", Holder: "Rafael Armando Jara Fernandez"},
	}
	for i := 0; i < itemCount; i++ {
		doc.Items = append(doc.Items, quotation.LineItem{
			ID:        fmt.Sprintf("it-%d", i),
			Name:      fmt.Sprintf("Producto %d", i+1),
			Quantity:  i + 1,
			UnitPrice: 125.5,
		})
	}
	return doc
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		doc  pdf.Document
	}{
		{name: "WithTaxAndBankPanel", doc: document(3)},
		{name: "SingleItem", doc: document(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := pdfgen.New().Generate(tt.doc)
			require.NoError(t, err)
			assert.True(t, len(out) > 500, "pdf suspiciously small: %d bytes", len(out))
			assert.Equal(t, "%PDF", string(out[:4]))
		})
	}
}

func TestGenerateWithoutTax(t *testing.T) {
	doc := document(2)
	doc.ApplyTax = false

	out, err := pdfgen.New().Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateZeroItems(t *testing.T) {
	// The drawing layer tolerates an empty table; callers gate this case.
	doc := document(0)

	out, err := pdfgen.New().Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateBankPanelToggle(t *testing.T) {
	with := document(2)
	with.ShowBankDetails = true
	without := document(2)
	without.ShowBankDetails = false

	outWith, err := pdfgen.New().Generate(with)
	require.NoError(t, err)
	outWithout, err := pdfgen.New().Generate(without)
	require.NoError(t, err)

	assert.NotEqual(t, len(outWith), len(outWithout), "bank panel should change the document")
}

func TestGenerateLongTableBreaksPage(t *testing.T) {
	short, err := pdfgen.New().Generate(document(2))
	require.NoError(t, err)
	long, err := pdfgen.New().Generate(document(60))
	require.NoError(t, err)

	assert.Greater(t, len(long), len(short))
}
