package api

import (
	"html/template"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pharmadoc/doseview/internal/catalog"
	"github.com/pharmadoc/doseview/internal/pager"
	"github.com/pharmadoc/doseview/internal/source"
)

type itemOption struct {
	Stem     string
	URL      string
	Selected bool
}

// sourceView drives the right panel: a PDF page image with pagination, or
// extracted DOCX text, or an inline message when neither works.
type sourceView struct {
	Kind     string // "pdf", "docx", "none"
	FileName string

	Page    int
	Total   int
	PrevURL string
	NextURL string

	ImageURL string
	FileURL  string
	ImageOK  bool

	Text    string
	Message string
}

type viewData struct {
	Title     string
	Items     []itemOption
	Record    template.HTML
	RecordErr string
	Source    *sourceView
}

// handleIndex redirects to the first item in the catalog.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	names, err := s.catalog.List()
	if err != nil {
		s.errorPage(w, http.StatusInternalServerError, "В папке результатов нет JSON-файлов: "+err.Error())
		return
	}
	if len(names) == 0 {
		s.errorPage(w, http.StatusNotFound, "В папке результатов нет JSON-файлов")
		return
	}
	http.Redirect(w, r, viewURL(catalog.Stem(names[0]), 0), http.StatusFound)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	item := chi.URLParam(r, "item")

	names, err := s.catalog.List()
	if err != nil {
		s.errorPage(w, http.StatusInternalServerError, "В папке результатов нет JSON-файлов: "+err.Error())
		return
	}

	data := viewData{Title: "Дозировки: просмотр"}
	selected := ""
	for _, name := range names {
		stem := catalog.Stem(name)
		opt := itemOption{Stem: stem, URL: viewURL(stem, 0), Selected: stem == item}
		if opt.Selected {
			selected = name
		}
		data.Items = append(data.Items, opt)
	}
	if selected == "" {
		s.errorPage(w, http.StatusNotFound, "Файл не найден: "+item)
		return
	}

	if rec, err := s.catalog.Load(selected); err != nil {
		s.log.Warn("record load failed", "item", selected, "error", err)
		data.RecordErr = "Файл не найден или поврежден: " + selected
	} else {
		data.Record = s.renderer.Render(rec)
	}

	data.Source = s.buildSource(r, item)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.view.Execute(w, data); err != nil {
		s.log.Error("view render failed", "error", err)
	}
}

// buildSource assembles the right-panel state for an item.
func (s *Server) buildSource(r *http.Request, item string) *sourceView {
	path, kind := s.catalog.Source(item)
	sv := &sourceView{FileName: filepath.Base(path), FileURL: fileURL(item)}

	switch kind {
	case catalog.SourcePDF:
		sv.Kind = "pdf"
		total := s.tools.PageCount(path)
		page := pager.Clamp(s.tools.FindSectionPage(path, s.cfg.SectionLabel), total)
		if q := r.URL.Query().Get("page"); q != "" {
			if n, err := strconv.Atoi(q); err == nil {
				page = n
			}
		}
		page = pager.Clamp(page, total)

		sv.Page = page
		sv.Total = total
		sv.PrevURL = viewURL(item, pager.Retreat(page, total))
		sv.NextURL = viewURL(item, pager.Advance(page, total))
		sv.ImageURL = pageImageURL(item, page)
		sv.ImageOK = s.tools.RenderPage(path, page) != nil
		if !sv.ImageOK {
			sv.Message = "Не удалось отрендерить страницу PDF в приложении."
		}

	case catalog.SourceDOCX:
		sv.Kind = "docx"
		text, err := source.DocxText(path)
		if err != nil {
			s.log.Warn("docx extraction failed", "path", path, "error", err)
			sv.Message = "Не удалось прочитать документ."
			return sv
		}
		sv.Text = text

	default:
		sv.Kind = "none"
		sv.Message = "PDF не найден: " + sv.FileName
	}
	return sv
}

func (s *Server) errorPage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	s.view.Execute(w, viewData{
		Title:     "Дозировки: просмотр",
		RecordErr: message,
	})
}

func viewURL(stem string, page int) string {
	u := "/view/" + url.PathEscape(stem)
	if page > 0 {
		u += "?page=" + strconv.Itoa(page)
	}
	return u
}

func pageImageURL(stem string, page int) string {
	return "/pdf/" + url.PathEscape(stem) + "/page/" + strconv.Itoa(page)
}

func fileURL(stem string) string {
	return "/pdf/" + url.PathEscape(stem) + "/file"
}
