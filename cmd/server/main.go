package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pharmadoc/doseview/internal/api"
	"github.com/pharmadoc/doseview/internal/catalog"
	"github.com/pharmadoc/doseview/internal/config"
	"github.com/pharmadoc/doseview/internal/pdftool"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Tool locations are resolved once here; a missing poppler install
	// degrades to defaults at request time instead of failing startup.
	tools := pdftool.New(pdftool.Config{
		PdftotextBin:      cfg.PdftotextBin,
		PdfinfoBin:        cfg.PdfinfoBin,
		PdftoppmBin:       cfg.PdftoppmBin,
		FallbackDir:       cfg.ToolFallbackDir,
		DPI:               cfg.RenderDPI,
		FallbackPdftotext: cfg.PDFFallbackPdftotext,
	}, log)

	cat := catalog.New(cfg.ResultsDir, cfg.PDFDir)

	srv := api.NewServer(cat, tools, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting doseview", "port", cfg.Port, "results_dir", cfg.ResultsDir, "pdf_dir", cfg.PDFDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
