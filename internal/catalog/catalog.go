// Package catalog lists the extraction results and pairs each one with its
// source document. The layout is two flat directories: JSON records in the
// results dir, source documents in the PDF dir, matched by filename stem.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pharmadoc/doseview/internal/cache"
	"github.com/pharmadoc/doseview/internal/record"
)

// protectedSubstring triggers the single-survivor listing rule: at most one
// result whose name contains it (case-insensitive) is kept. The business
// rule behind it is undocumented upstream; the behavior is preserved as-is
// rather than generalized into a dedup.
const protectedSubstring = "преднизолон"

// SourceKind tells what kind of source document an item has.
type SourceKind int

const (
	SourceNone SourceKind = iota
	SourcePDF
	SourceDOCX
)

// Catalog reads records and source documents from the configured
// directories. Loaded records are memoized per file.
type Catalog struct {
	resultsDir string
	pdfDir     string
	records    *cache.Store[record.Value]
}

func New(resultsDir, pdfDir string) *Catalog {
	return &Catalog{
		resultsDir: resultsDir,
		pdfDir:     pdfDir,
		records:    cache.New[record.Value](0),
	}
}

// List returns the selectable result file names in sorted order. Names with
// a "_" prefix are reserved and excluded. A missing results directory is
// the one hard error in the system.
func (c *Catalog) List() ([]string, error) {
	entries, err := os.ReadDir(c.resultsDir)
	if err != nil {
		return nil, fmt.Errorf("read results dir %s: %w", c.resultsDir, err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, "_") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}
		names = append(names, name)
	}
	return filterListing(names), nil
}

// filterListing applies the single-survivor rule: the first name containing
// the protected substring is kept, later ones are dropped. Everything else
// passes through untouched.
func filterListing(names []string) []string {
	filtered := make([]string, 0, len(names))
	kept := false
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), protectedSubstring) {
			if kept {
				continue
			}
			kept = true
		}
		filtered = append(filtered, name)
	}
	return filtered
}

// Load decodes the record for a result file name. The name is reduced to
// its base to keep lookups inside the results dir.
func (c *Catalog) Load(name string) (record.Value, error) {
	path := filepath.Join(c.resultsDir, filepath.Base(name))
	return c.records.GetOrCompute(path, func() (record.Value, error) {
		f, err := os.Open(path)
		if err != nil {
			return record.Value{}, fmt.Errorf("open record: %w", err)
		}
		defer f.Close()
		v, err := record.Decode(f)
		if err != nil {
			return record.Value{}, fmt.Errorf("decode record %s: %w", name, err)
		}
		return v, nil
	})
}

// Source returns the path and kind of the source document for an item stem:
// the PDF when one exists, else a DOCX, else nothing.
func (c *Catalog) Source(stem string) (string, SourceKind) {
	stem = filepath.Base(stem)
	pdf := filepath.Join(c.pdfDir, stem+".pdf")
	if _, err := os.Stat(pdf); err == nil {
		return pdf, SourcePDF
	}
	docx := filepath.Join(c.pdfDir, stem+".docx")
	if _, err := os.Stat(docx); err == nil {
		return docx, SourceDOCX
	}
	return pdf, SourceNone
}

// Stem strips the .json extension from a result file name.
func Stem(name string) string {
	return strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
}
