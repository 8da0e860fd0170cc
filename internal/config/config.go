package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Data layout
	ResultsDir string
	PDFDir     string

	// Section lookup
	SectionLabel string

	// Rendering
	RenderDPI int

	// External tool locations. Empty means "resolve by name at startup"
	// (PATH, then ToolFallbackDir, then the bare name).
	PdftotextBin    string
	PdfinfoBin      string
	PdftoppmBin     string
	ToolFallbackDir string

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		ResultsDir: envOr("RESULTS_DIR", "data/results"),
		PDFDir:     envOr("PDF_DIR", "data/pdfs"),

		SectionLabel: envOr("SECTION_LABEL", "4.1"),

		RenderDPI: envInt("RENDER_DPI", 120),

		PdftotextBin:    os.Getenv("PDFTOTEXT_BIN"),
		PdfinfoBin:      os.Getenv("PDFINFO_BIN"),
		PdftoppmBin:     os.Getenv("PDFTOPPM_BIN"),
		ToolFallbackDir: envOr("TOOL_FALLBACK_DIR", "/opt/homebrew/bin"),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.RenderDPI <= 0 {
		cfg.RenderDPI = 120
	}
	if cfg.SectionLabel == "" {
		cfg.SectionLabel = "4.1"
	}

	return cfg
}

func (c Config) Validate() error {
	info, err := os.Stat(c.ResultsDir)
	if err != nil {
		return fmt.Errorf("results dir %s is not accessible: %w", c.ResultsDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("results dir %s is not a directory", c.ResultsDir)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
