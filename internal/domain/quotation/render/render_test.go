package render_test

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotiza-jara/go_backend/internal/domain/quotation"
	"cotiza-jara/go_backend/internal/domain/quotation/pdf"
	"cotiza-jara/go_backend/internal/domain/quotation/render"
)

type captureGen struct {
	docs []pdf.Document
	err  error
}

func (g *captureGen) Generate(doc pdf.Document) ([]byte, error) {
	g.docs = append(g.docs, doc)
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

func record(client string) quotation.SavedQuotation {
	return quotation.SavedQuotation{
		Quotation: quotation.Quotation{
			ClientName: client,
			Items: []quotation.LineItem{
				{ID: "a", Name: "Cable", Quantity: 2, UnitPrice: 100},
			},
		},
	}
}

func TestFilename(t *testing.T) {
	name := render.Filename("Juan Pérez", "COT-2026-0042")

	assert.Equal(t, "Cotizacion_Juan_Pérez_COT-2026-0042.pdf", name)
	assert.NotContains(t, name, " ")
	assert.True(t, strings.HasSuffix(name, ".pdf"))
}

func TestDownloadNamesArtifact(t *testing.T) {
	gen := &captureGen{}
	svc := render.NewService(gen, pdf.Issuer{}, pdf.BankDetails{})

	rec := record("Juan  Pérez")
	rec.Reference = "COT-2026-0042"

	artifact, err := svc.Download(rec)
	require.NoError(t, err)

	assert.Equal(t, "Cotizacion_Juan_Pérez_COT-2026-0042.pdf", artifact.Filename)
	assert.NotEmpty(t, artifact.Content)
}

func TestDownloadReusesStoredReference(t *testing.T) {
	gen := &captureGen{}
	svc := render.NewService(gen, pdf.Issuer{}, pdf.BankDetails{})

	rec := record("Juan Pérez")
	rec.ID = "q1"
	rec.Reference = "COT-2025-0007"

	_, err := svc.Download(rec)
	require.NoError(t, err)
	require.Len(t, gen.docs, 1)
	assert.Equal(t, "COT-2025-0007", gen.docs[0].Reference)
}

func TestDownloadMintsOneReferencePerCall(t *testing.T) {
	gen := &captureGen{}
	svc := render.NewService(gen, pdf.Issuer{}, pdf.BankDetails{})

	artifact, err := svc.Download(record("Juan Pérez"))
	require.NoError(t, err)
	require.Len(t, gen.docs, 1)

	// The one generated code reaches the document and the filename alike.
	ref := gen.docs[0].Reference
	assert.True(t, quotation.ValidReference(ref))
	assert.Contains(t, artifact.Filename, ref)
}

func TestDownloadRejectsInvalidInput(t *testing.T) {
	gen := &captureGen{}
	svc := render.NewService(gen, pdf.Issuer{}, pdf.BankDetails{})

	rec := record("")
	_, err := svc.Download(rec)
	assert.ErrorIs(t, err, quotation.ErrNoClient)

	rec = record("Juan Pérez")
	rec.Items = nil
	_, err = svc.Download(rec)
	assert.ErrorIs(t, err, quotation.ErrNoItems)

	assert.Empty(t, gen.docs, "generator must not run for rejected input")
}

// gatedGen blocks inside Generate until released, so a test can overlap two
// renders deliberately.
type gatedGen struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (g *gatedGen) Generate(doc pdf.Document) ([]byte, error) {
	if g.calls.Add(1) == 1 {
		close(g.started)
	}
	<-g.release
	return []byte("%PDF-1.3 shared"), nil
}

func TestDownloadCoalescesConcurrentRequests(t *testing.T) {
	gen := &gatedGen{started: make(chan struct{}), release: make(chan struct{})}
	svc := render.NewService(gen, pdf.Issuer{}, pdf.BankDetails{})

	rec := record("Juan Pérez")
	rec.ID = "q1"
	rec.Reference = "COT-2026-0042"

	artifacts := make(chan render.Artifact, 2)
	errs := make(chan error, 2)
	download := func() {
		a, err := svc.Download(rec)
		artifacts <- a
		errs <- err
	}

	go download()
	<-gen.started
	go download()
	// Give the second call time to join the in-flight render.
	time.Sleep(20 * time.Millisecond)
	close(gen.release)

	first, second := <-artifacts, <-artifacts
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)

	assert.Equal(t, int32(1), gen.calls.Load(), "duplicate request must share one render")
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Filename, second.Filename)
}

func TestPreviewFailureReturnsEmptyHandle(t *testing.T) {
	gen := &captureGen{err: errors.New("font table corrupt")}
	svc := render.NewService(gen, pdf.Issuer{}, pdf.BankDetails{})

	assert.Nil(t, svc.Preview(record("Juan Pérez")))
}

func TestPreviewRejectedInputReturnsEmptyHandle(t *testing.T) {
	gen := &captureGen{}
	svc := render.NewService(gen, pdf.Issuer{}, pdf.BankDetails{})

	assert.Nil(t, svc.Preview(record("")))
	assert.Empty(t, gen.docs)
}

func TestPreviewReturnsContent(t *testing.T) {
	svc := render.NewService(&captureGen{}, pdf.Issuer{}, pdf.BankDetails{})

	content := svc.Preview(record("Juan Pérez"))
	assert.NotEmpty(t, content)
}
