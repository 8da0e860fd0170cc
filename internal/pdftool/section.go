package pdftool

import (
	"regexp"
	"strings"
)

// SectionPattern builds the matcher for a section label like "4.1": case
// insensitive, word-bounded, accepting either "." or "," as the separator
// (scanned documents vary by locale and OCR quality).
func SectionPattern(label string) (*regexp.Regexp, error) {
	parts := strings.Split(label, ".")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexp.Compile(`(?i)\b` + strings.Join(parts, `[.,]`) + `\b`)
}

// LocateSection returns the 1-based index of the first page whose text
// matches the pattern, or 0 when no page matches.
func LocateSection(pages []string, marker *regexp.Regexp) int {
	for i, text := range pages {
		if marker.MatchString(text) {
			return i + 1
		}
	}
	return 0
}

// FindSectionPage locates the page carrying the section label. Extraction
// failures, bad labels, and documents without a match all yield page 1;
// the viewer simply opens at the start. The result is memoized per
// document and label.
func (t *Tools) FindSectionPage(path, label string) int {
	key := path + "\x00" + label
	if page, ok := t.sections.Get(key); ok {
		return page
	}

	page := 1
	if marker, err := SectionPattern(label); err == nil {
		pages, err := t.PageTexts(path)
		if err != nil {
			t.log.Warn("section lookup failed, defaulting to first page", "path", path, "error", err)
		} else if found := LocateSection(pages, marker); found > 0 {
			page = found
		}
	}

	t.sections.Put(key, page)
	return page
}
