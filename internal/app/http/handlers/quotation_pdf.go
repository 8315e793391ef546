package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"cotiza-jara/go_backend/internal/domain/quotation"
)

// DownloadPDF renders a quotation straight from the request body, without
// persisting it. The reference code is minted fresh for this one call.
func (h *Handlers) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSaveRequest(w, r)
	if !ok {
		return
	}

	artifact, err := h.Renderer.Download(quotation.SavedQuotation{Quotation: req.toDomain()})
	if err != nil {
		h.renderError(w, err)
		return
	}
	servePDF(w, artifact.Filename, "attachment", artifact.Content)
}

// RenderSavedPDF renders a persisted quotation, reusing its stored
// reference code. mode=preview streams the document inline; the default is
// a named download.
func (h *Handlers) RenderSavedPDF(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, quotation.ErrNotFound) {
			http.Error(w, "quotation not found", http.StatusNotFound)
			return
		}
		slog.Error("load quotation for pdf", "error", err)
		http.Error(w, "failed to load quotation", http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("mode") == "preview" {
		content := h.Renderer.Preview(*rec)
		if content == nil {
			http.Error(w, "pdf generation failed", http.StatusInternalServerError)
			return
		}
		servePDF(w, "", "inline", content)
		return
	}

	artifact, err := h.Renderer.Download(*rec)
	if err != nil {
		h.renderError(w, err)
		return
	}
	servePDF(w, artifact.Filename, "attachment", artifact.Content)
}

func (h *Handlers) renderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quotation.ErrNoItems), errors.Is(err, quotation.ErrNoClient):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("generate quotation pdf", "error", err)
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
	}
}

func servePDF(w http.ResponseWriter, filename, disposition string, content []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", contentDisposition(disposition, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

// contentDisposition builds the header value. Header values are limited to
// ISO-8859-1, so non-ASCII filenames ship twice: an ASCII-folded filename
// parameter for old clients and an RFC 5987 filename* one carrying UTF-8.
func contentDisposition(disposition, filename string) string {
	if filename == "" {
		return disposition
	}
	ascii := asciiFilename(filename)
	if ascii == filename {
		return fmt.Sprintf("%s; filename=%q", disposition, filename)
	}
	return fmt.Sprintf("%s; filename=%q; filename*=UTF-8''%s",
		disposition, ascii, url.PathEscape(filename))
}

var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func asciiFilename(s string) string {
	folded, _, err := transform.String(foldMarks, s)
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return '_'
		}
		return r
	}, folded)
}
