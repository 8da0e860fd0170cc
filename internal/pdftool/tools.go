// Package pdftool wraps the PDF collaborators: the ledongthuc/pdf library
// for in-process text access and the poppler command-line tools (pdftotext,
// pdfinfo, pdftoppm) for fallback extraction, page metadata, and page
// rasterization. Tool failures degrade to defaults instead of propagating;
// the viewer must keep working with a broken or absent poppler install.
package pdftool

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pharmadoc/doseview/internal/cache"
)

const (
	binPdftotext = "pdftotext"
	binPdfinfo   = "pdfinfo"
	binPdftoppm  = "pdftoppm"
)

// runner abstracts command execution for testing.
type runner interface {
	LookPath(file string) (string, error)
	FileExists(path string) bool
	Output(name string, args ...string) ([]byte, error)
}

// osRunner is the production runner backed by os/exec.
type osRunner struct{}

func (osRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osRunner) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osRunner) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// Config selects tool locations and rendering parameters. Empty binary
// paths mean "resolve by name".
type Config struct {
	PdftotextBin string
	PdfinfoBin   string
	PdftoppmBin  string

	// FallbackDir is checked when a tool is not on PATH, e.g. the Homebrew
	// prefix on macOS.
	FallbackDir string

	DPI int

	// FallbackPdftotext enables the pdftotext fallback when library
	// extraction fails.
	FallbackPdftotext bool
}

// Tools invokes the PDF collaborators. Binary paths are resolved once at
// construction; derived values are memoized per document.
type Tools struct {
	run runner
	log *slog.Logger

	pdftotext string
	pdfinfo   string
	pdftoppm  string

	dpi               int
	fallbackPdftotext bool

	sections *cache.Store[int]
	counts   *cache.Store[int]
	images   *cache.Store[[]byte]
}

func New(cfg Config, log *slog.Logger) *Tools {
	return newTools(cfg, log, osRunner{})
}

func newTools(cfg Config, log *slog.Logger, run runner) *Tools {
	dpi := cfg.DPI
	if dpi <= 0 {
		dpi = 120
	}
	return &Tools{
		run:               run,
		log:               log,
		pdftotext:         resolveBin(run, binPdftotext, cfg.PdftotextBin, cfg.FallbackDir),
		pdfinfo:           resolveBin(run, binPdfinfo, cfg.PdfinfoBin, cfg.FallbackDir),
		pdftoppm:          resolveBin(run, binPdftoppm, cfg.PdftoppmBin, cfg.FallbackDir),
		dpi:               dpi,
		fallbackPdftotext: cfg.FallbackPdftotext,
		sections:          cache.New[int](0),
		counts:            cache.New[int](0),
		images:            cache.New[[]byte](0),
	}
}

// resolveBin picks the tool location: explicit override, then PATH, then the
// fallback directory. When nothing is found the bare name is returned and
// allowed to fail at invocation time.
func resolveBin(run runner, name, override, fallbackDir string) string {
	if override != "" {
		return override
	}
	if found, err := run.LookPath(name); err == nil {
		return found
	}
	if fallbackDir != "" {
		candidate := filepath.Join(fallbackDir, name)
		if run.FileExists(candidate) {
			return candidate
		}
	}
	return name
}
