package record

import (
	"regexp"
	"strconv"
	"strings"
)

// durationRe matches the years/months/weeks/days subset of ISO-8601
// durations that the extraction pipeline emits for course lengths.
var durationRe = regexp.MustCompile(`^P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)W)?(?:(\d+)D)?$`)

// durationKeys are the schema keys whose string values carry ISO durations.
var durationKeys = map[string]bool{
	"courseDurationMin": true,
	"courseDurationMax": true,
	"courseDuration":    true,
}

// intervalUnits maps the enumerated interval-unit codes to Russian words.
var intervalUnits = map[string]string{
	"DAY":   "день",
	"WEEK":  "неделя",
	"MONTH": "месяц",
	"YEAR":  "год",
}

// HumanizeDuration rewrites "P1Y2M3W4D" style strings as "1 г. 2 мес.
// 3 нед. 4 дн.", keeping only the units present. Anything that is not a
// valid duration, including a bare "P", comes back unchanged.
func HumanizeDuration(value string) string {
	m := durationRe.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return value
	}
	var parts []string
	for i, suffix := range []string{"г.", "мес.", "нед.", "дн."} {
		if m[i+1] == "" {
			continue
		}
		n, _ := strconv.Atoi(m[i+1])
		if n == 0 {
			continue
		}
		parts = append(parts, m[i+1]+" "+suffix)
	}
	if len(parts) == 0 {
		return value
	}
	return strings.Join(parts, " ")
}

// humanize applies the per-key display transforms: duration strings for the
// course-length keys and the interval-unit enumeration. Everything else
// passes through.
func humanize(key, value string) string {
	if durationKeys[key] {
		return HumanizeDuration(value)
	}
	if key == "intervalUnit" {
		if word, ok := intervalUnits[value]; ok {
			return word
		}
	}
	return value
}

// SplitTags splits a raw tags string on ";", trimming whitespace and
// dropping empty segments.
func SplitTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ";") {
		if p := strings.TrimSpace(part); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
