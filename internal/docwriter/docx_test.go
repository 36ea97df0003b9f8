package docwriter

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open container: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(b)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestWriteDOCX_PackageParts(t *testing.T) {
	data, err := WriteDOCX([]Block{{Level: 1, Text: "Multi Content"}})
	if err != nil {
		t.Fatalf("WriteDOCX: %v", err)
	}
	for _, part := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml", "word/styles.xml"} {
		_ = readPart(t, data, part)
	}
}

func TestWriteDOCX_HeadingsAndBody(t *testing.T) {
	blocks := []Block{
		{Level: 1, Text: "Multi Content"},
		{Level: 2, Text: "Promotion Title"},
		{Text: "Mega Cash Draw"},
	}
	data, err := WriteDOCX(blocks)
	if err != nil {
		t.Fatalf("WriteDOCX: %v", err)
	}
	doc := readPart(t, data, "word/document.xml")
	if !strings.Contains(doc, `<w:pStyle w:val="Heading1"/>`) {
		t.Fatalf("missing Heading1 style: %s", doc)
	}
	if !strings.Contains(doc, `<w:pStyle w:val="Heading2"/>`) {
		t.Fatalf("missing Heading2 style: %s", doc)
	}
	if !strings.Contains(doc, "Mega Cash Draw") {
		t.Fatalf("missing body text: %s", doc)
	}
}

func TestWriteDOCX_EscapesAndBreaks(t *testing.T) {
	data, err := WriteDOCX([]Block{{Text: "Slots & Jackpots\nline <two>"}})
	if err != nil {
		t.Fatalf("WriteDOCX: %v", err)
	}
	doc := readPart(t, data, "word/document.xml")
	if !strings.Contains(doc, "Slots &amp; Jackpots") {
		t.Fatalf("ampersand not escaped: %s", doc)
	}
	if !strings.Contains(doc, "<w:br/>") {
		t.Fatalf("newline not converted to break: %s", doc)
	}
	if strings.Contains(doc, "<two>") {
		t.Fatalf("angle brackets not escaped: %s", doc)
	}
}
