package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pharmadoc/doseview/internal/catalog"
	"github.com/pharmadoc/doseview/internal/pager"
)

// handlePage serves one PDF page as PNG. Render failures answer 404; the
// viewer page falls back to a direct file link.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	item := chi.URLParam(r, "item")
	page, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil {
		http.Error(w, "invalid page number", http.StatusBadRequest)
		return
	}

	path, kind := s.catalog.Source(item)
	if kind != catalog.SourcePDF {
		http.NotFound(w, r)
		return
	}

	page = pager.Clamp(page, s.tools.PageCount(path))
	img := s.tools.RenderPage(path, page)
	if img == nil {
		http.Error(w, "page image unavailable", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(img)
}

// handleFile serves the raw source document, the fallback when page
// rendering is not possible.
func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	item := chi.URLParam(r, "item")
	path, kind := s.catalog.Source(item)
	if kind == catalog.SourceNone {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}
