package record

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
)

// chipPalette is cycled to pick a background for each tag chip.
var chipPalette = []string{"#E3F2FD", "#E8F5E9", "#FFF3E0", "#F3E5F5", "#E0F7FA"}

// Renderer turns a decoded record into HTML for the left viewer panel.
// Every scalar is escaped here; callers embed the result as-is.
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	return &Renderer{md: goldmark.New()}
}

// Render produces the HTML for a whole record.
func (r *Renderer) Render(v Value) template.HTML {
	var b strings.Builder
	r.renderValue(&b, v)
	return template.HTML(b.String())
}

func (r *Renderer) renderValue(b *strings.Builder, v Value) {
	switch v.Kind {
	case KindObject:
		r.renderObject(b, v)
	case KindList:
		for i, item := range v.Items {
			openBlock(b, schemeTitle(i), "block")
			r.renderValue(b, item)
			closeBlock(b)
		}
	default:
		if s := v.ScalarString(); strings.TrimSpace(s) != "" {
			b.WriteString(`<div class="dense-line">` + template.HTMLEscapeString(s) + `</div>`)
		}
	}
}

func (r *Renderer) renderObject(b *strings.Builder, obj Value) {
	for _, e := range obj.Entries {
		switch e.Value.Kind {
		case KindObject:
			// "indication" groups recurse without their own heading;
			// "administration" gets a tinted block.
			switch e.Key {
			case "indication":
				r.renderObject(b, e.Value)
			case "administration":
				openBlock(b, Label(e.Key), "block block-soft")
				r.renderObject(b, e.Value)
				closeBlock(b)
			default:
				subtitle(b, Label(e.Key))
				r.renderObject(b, e.Value)
			}
		case KindList:
			if e.Key == "dosage" {
				b.WriteString(`<hr class="dense-rule">`)
			}
			subtitle(b, Label(e.Key))
			if len(e.Value.Items) == 0 {
				b.WriteString(`<div class="dense-caption">Пусто</div>`)
				continue
			}
			for i, item := range e.Value.Items {
				if item.Scalar() {
					b.WriteString(`<div class="dense-bullet">` + template.HTMLEscapeString(item.ScalarString()) + `</div>`)
					continue
				}
				openBlock(b, schemeTitle(i), "block")
				r.renderValue(b, item)
				closeBlock(b)
			}
		default:
			r.renderScalarLine(b, e.Key, e.Value)
		}
	}
}

// renderScalarLine writes one "label: value" line. Null and blank values
// produce nothing.
func (r *Renderer) renderScalarLine(b *strings.Builder, key string, v Value) {
	if v.Kind == KindNull {
		return
	}
	s := v.ScalarString()
	if v.Kind == KindString && strings.TrimSpace(s) == "" {
		return
	}
	if key == "tags" {
		r.renderTags(b, s)
		return
	}
	if key == "schemaDescription" {
		b.WriteString(`<div class="dense-line"><span class="dense-key">` +
			template.HTMLEscapeString(Label(key)) + `:</span>` +
			`<div class="dense-value-regular">` + r.markdown(s) + `</div></div>`)
		return
	}
	b.WriteString(`<div class="dense-line"><span class="dense-key">` +
		template.HTMLEscapeString(Label(key)) + `:</span> <span class="dense-value">` +
		template.HTMLEscapeString(humanize(key, s)) + `</span></div>`)
}

func (r *Renderer) renderTags(b *strings.Builder, raw string) {
	tags := SplitTags(raw)
	if len(tags) == 0 {
		return
	}
	b.WriteString(`<div class="dense-line"><span class="chip-label">` +
		template.HTMLEscapeString(Label("tags")) + `:</span> `)
	for i, tag := range tags {
		bg := chipPalette[i%len(chipPalette)]
		b.WriteString(`<span class="chip" style="background:` + bg + `">` +
			template.HTMLEscapeString(tag) + `</span>`)
	}
	b.WriteString(`</div>`)
}

// markdown converts a description through goldmark; raw HTML in the source
// is not passed through (goldmark default). On conversion failure the text
// is escaped verbatim.
func (r *Renderer) markdown(s string) string {
	var out strings.Builder
	if err := r.md.Convert([]byte(s), &out); err != nil {
		return template.HTMLEscapeString(s)
	}
	return out.String()
}

func schemeTitle(idx int) string {
	return "Схема " + strconv.Itoa(idx+1)
}

func openBlock(b *strings.Builder, title, class string) {
	b.WriteString(`<div class="` + class + `"><div class="block-title">` +
		template.HTMLEscapeString(title) + `</div>`)
}

func closeBlock(b *strings.Builder) {
	b.WriteString(`</div>`)
}

func subtitle(b *strings.Builder, title string) {
	b.WriteString(`<div class="dense-subtitle">` + template.HTMLEscapeString(title) + `</div>`)
}
