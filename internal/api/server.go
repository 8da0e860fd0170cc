package api

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pharmadoc/doseview/internal/catalog"
	"github.com/pharmadoc/doseview/internal/config"
	"github.com/pharmadoc/doseview/internal/pdftool"
	"github.com/pharmadoc/doseview/internal/record"
)

// Server is the HTTP surface of the viewer.
type Server struct {
	router   chi.Router
	catalog  *catalog.Catalog
	tools    *pdftool.Tools
	renderer *record.Renderer
	view     *template.Template
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(cat *catalog.Catalog, tools *pdftool.Tools, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		catalog:  cat,
		tools:    tools,
		renderer: record.NewRenderer(),
		view:     template.Must(template.New("view").Parse(viewTemplate)),
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Get("/", s.handleIndex)
	r.Get("/view/{item}", s.handleView)
	r.Get("/pdf/{item}/page/{page}", s.handlePage)
	r.Get("/pdf/{item}/file", s.handleFile)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
