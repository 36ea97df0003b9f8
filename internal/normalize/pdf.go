package normalize

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfStrategy extracts text page by page. The library can panic on malformed
// files, so every call into it is wrapped with recover; a page that yields
// nothing contributes an empty segment rather than an error.
type pdfStrategy struct{}

func (pdfStrategy) Name() string { return "pdf" }

func (pdfStrategy) TextOf(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	pages := 0
	func() {
		defer func() { _ = recover() }()
		pages = reader.NumPage()
	}()
	if pages <= 0 {
		return "", fmt.Errorf("pdf has no readable pages")
	}

	segments := make([]string, 0, pages)
	for i := 1; i <= pages; i++ {
		segments = append(segments, pageText(reader, i))
	}
	return strings.Join(segments, "<br/>"), nil
}

func pageText(reader *pdf.Reader, n int) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()
	page := reader.Page(n)
	if page.V.IsNull() {
		return ""
	}
	var b strings.Builder
	for _, item := range page.Content().Text {
		b.WriteString(item.S)
		b.WriteByte(' ')
	}
	return strings.TrimSpace(b.String())
}
