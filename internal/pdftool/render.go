package pdftool

import (
	"bytes"
	"strconv"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// RenderPage rasterizes one page to PNG at the configured DPI via pdftoppm.
// Any failure returns nil; the caller presents a link to the file instead
// of an image. Rendered pages are memoized per document and page.
func (t *Tools) RenderPage(path string, page int) []byte {
	key := path + "#" + strconv.Itoa(page)
	if img, ok := t.images.Get(key); ok {
		return img
	}

	p := strconv.Itoa(page)
	out, err := t.run.Output(t.pdftoppm,
		"-png",
		"-r", strconv.Itoa(t.dpi),
		"-f", p,
		"-l", p,
		"-singlefile",
		path,
		"-",
	)
	if err != nil || !bytes.HasPrefix(out, pngMagic) {
		t.log.Warn("page render failed", "path", path, "page", page, "error", err)
		return nil
	}

	t.images.Put(key, out)
	return out
}
