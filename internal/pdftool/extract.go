package pdftool

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PageTexts extracts the text of every page, in order. The Go library is
// tried first; when it fails and the pdftotext fallback is enabled, the
// poppler tool is invoked instead.
func (t *Tools) PageTexts(path string) ([]string, error) {
	text, err := extractLibrary(path)
	if err != nil && t.fallbackPdftotext {
		t.log.Debug("library extraction failed, falling back to pdftotext", "path", path, "error", err)
		text, err = t.extractPdftotext(path)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	return splitPages(text), nil
}

func extractLibrary(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if i > 1 {
			buf.WriteString("\f") // Form feed as page separator.
		}
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func (t *Tools) extractPdftotext(path string) (string, error) {
	out, err := t.run.Output(t.pdftotext, "-layout", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}

func splitPages(text string) []string {
	return strings.Split(text, "\f")
}
