package pdftool

import (
	"strconv"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PageCount returns the document's page count, never less than 1. The
// library is tried first, then pdfinfo; when both fail the document is
// treated as a single page. Memoized per document.
func (t *Tools) PageCount(path string) int {
	if n, ok := t.counts.Get(path); ok {
		return n
	}

	n := countLibrary(path)
	if n == 0 {
		n = t.countPdfinfo(path)
	}
	if n < 1 {
		t.log.Warn("page count unavailable, assuming one page", "path", path)
		n = 1
	}

	t.counts.Put(path, n)
	return n
}

func countLibrary(path string) int {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()
	return reader.NumPage()
}

func (t *Tools) countPdfinfo(path string) int {
	out, err := t.run.Output(t.pdfinfo, path)
	if err != nil {
		return 0
	}
	n, ok := parsePdfinfoPages(string(out))
	if !ok {
		return 0
	}
	return n
}

// parsePdfinfoPages finds the "Pages:" line in pdfinfo output.
func parsePdfinfoPages(out string) (int, bool) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(strings.ToLower(line), "pages:") {
			continue
		}
		_, rest, _ := strings.Cut(line, ":")
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return 0, false
		}
		if n < 1 {
			n = 1
		}
		return n, true
	}
	return 0, false
}
