package normalize

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"
)

var errNoDocumentXML = errors.New("word/document.xml not found")

// documentXML mirrors the subset of word/document.xml we read: paragraphs,
// their style, and their text runs. Namespaces are matched by local name.
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    struct {
		Paragraphs []paragraphXML `xml:"p"`
	} `xml:"body"`
}

type paragraphXML struct {
	Style struct {
		Val string `xml:"val,attr"`
	} `xml:"pPr>pStyle"`
	Runs []struct {
		Text []string `xml:"t"`
	} `xml:"r"`
}

func (p paragraphXML) text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		for _, t := range r.Text {
			b.WriteString(t)
		}
	}
	return b.String()
}

func readDocumentXML(data []byte) (*documentXML, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open docx container: %w", err)
	}
	for _, f := range reader.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open document.xml: %w", err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read document.xml: %w", err)
		}
		var doc documentXML
		if err := xml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parse document.xml: %w", err)
		}
		return &doc, nil
	}
	return nil, errNoDocumentXML
}

// docxMarkupStrategy is the preferred docx path: it rebuilds structural HTML
// so heading and paragraph boundaries survive into the stripper.
type docxMarkupStrategy struct{}

func (docxMarkupStrategy) Name() string { return "docx-markup" }

func (docxMarkupStrategy) TextOf(data []byte) (string, error) {
	doc, err := readDocumentXML(data)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, p := range doc.Body.Paragraphs {
		text := html.EscapeString(p.text())
		tag := tagForStyle(p.Style.Val)
		b.WriteString("<")
		b.WriteString(tag)
		b.WriteString(">")
		b.WriteString(text)
		b.WriteString("</")
		b.WriteString(tag)
		b.WriteString(">\n")
	}
	return b.String(), nil
}

func tagForStyle(style string) string {
	switch {
	case strings.EqualFold(style, "Title"), strings.EqualFold(style, "Heading1"):
		return "h1"
	case strings.EqualFold(style, "Heading2"):
		return "h2"
	case strings.EqualFold(style, "Heading3"):
		return "h3"
	default:
		return "p"
	}
}

// docxPlainStrategy is the degraded docx path: paragraph text only, joined
// with explicit line breaks, heading semantics lost.
type docxPlainStrategy struct{}

func (docxPlainStrategy) Name() string { return "docx-plain" }

func (docxPlainStrategy) TextOf(data []byte) (string, error) {
	doc, err := readDocumentXML(data)
	if err != nil {
		return "", err
	}
	paragraphs := make([]string, 0, len(doc.Body.Paragraphs))
	for _, p := range doc.Body.Paragraphs {
		paragraphs = append(paragraphs, html.EscapeString(p.text()))
	}
	return strings.Join(paragraphs, "<br/>"), nil
}
