// Package render turns saved quotations into output artifacts: a named
// downloadable file or an inline preview. It owns the caller-side gates the
// drawing layer does not enforce, and coalesces duplicate render requests.
package render

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"cotiza-jara/go_backend/internal/domain/quotation"
	"cotiza-jara/go_backend/internal/domain/quotation/pdf"
)

// Artifact is a rendered document ready for the host's file-save mechanism.
type Artifact struct {
	Filename string
	Content  []byte
}

type Service struct {
	gen    pdf.Generator
	issuer pdf.Issuer
	bank   pdf.BankDetails
	now    func() time.Time

	// Rapid repeated requests for the same quotation share one render
	// instead of producing duplicate downloads.
	group singleflight.Group
}

func NewService(gen pdf.Generator, issuer pdf.Issuer, bank pdf.BankDetails) *Service {
	return &Service{gen: gen, issuer: issuer, bank: bank, now: time.Now}
}

// Download renders rec and names the file after the client and reference.
func (s *Service) Download(rec quotation.SavedQuotation) (Artifact, error) {
	doc, err := s.document(rec)
	if err != nil {
		return Artifact{}, err
	}
	content, err := s.generate(rec.ID, doc)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Filename: Filename(rec.ClientName, doc.Reference), Content: content}, nil
}

// Preview renders rec for inline display. It never fails loudly: any
// generation error is logged and a nil handle comes back so the caller can
// offer a retry.
func (s *Service) Preview(rec quotation.SavedQuotation) []byte {
	doc, err := s.document(rec)
	if err != nil {
		slog.Warn("quotation preview rejected", "id", rec.ID, "error", err)
		return nil
	}
	content, err := s.generate(rec.ID, doc)
	if err != nil {
		slog.Error("quotation preview failed", "id", rec.ID, "error", err)
		return nil
	}
	return content
}

func (s *Service) document(rec quotation.SavedQuotation) (pdf.Document, error) {
	if strings.TrimSpace(rec.ClientName) == "" {
		return pdf.Document{}, quotation.ErrNoClient
	}
	if len(rec.Items) == 0 {
		return pdf.Document{}, quotation.ErrNoItems
	}

	ref := rec.Reference
	if ref == "" {
		// Ad-hoc render with no saved record behind it: one fresh code for
		// this call, shared by the document header and footer.
		ref = quotation.NewReference(s.now())
	}
	return pdf.Document{
		Quotation: rec.Quotation,
		Reference: ref,
		IssuedAt:  s.now(),
		Issuer:    s.issuer,
		Bank:      s.bank,
	}, nil
}

func (s *Service) generate(id string, doc pdf.Document) ([]byte, error) {
	if id == "" {
		return s.gen.Generate(doc)
	}
	v, err, _ := s.group.Do(id, func() (any, error) {
		return s.gen.Generate(doc)
	})
	if err != nil {
		return nil, fmt.Errorf("render quotation %s: %w", id, err)
	}
	return v.([]byte), nil
}

// Filename builds Cotizacion_<client>_<reference>.pdf, whitespace runs in
// the client name collapsed to single underscores.
func Filename(clientName, reference string) string {
	client := strings.Join(strings.Fields(clientName), "_")
	return fmt.Sprintf("Cotizacion_%s_%s.pdf", client, reference)
}
