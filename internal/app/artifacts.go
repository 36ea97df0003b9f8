package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hyperifyio/gopromo/internal/content"
	"github.com/hyperifyio/gopromo/internal/docwriter"
	"github.com/hyperifyio/gopromo/internal/facts"
	"github.com/hyperifyio/gopromo/internal/translate"
)

// writeArtifacts exports the content pack: a markdown preview, a facts
// sidecar for auditing, the .docx deliverable, and optionally a PDF. It
// returns the paths written.
func writeArtifacts(cfg Config, rec facts.Record, sections content.Sections) ([]string, error) {
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir output dir: %w", err)
	}
	base := cfg.Basename
	if base == "" {
		base = slugify(rec.Title)
	}
	var paths []string

	previewPath := filepath.Join(cfg.OutDir, base+".md")
	if err := os.WriteFile(previewPath, []byte(content.Preview(sections)), 0o644); err != nil {
		return nil, fmt.Errorf("write preview: %w", err)
	}
	paths = append(paths, previewPath)

	factsPath := filepath.Join(cfg.OutDir, base+".facts.json")
	if err := writeJSON(factsPath, rec); err != nil {
		return nil, fmt.Errorf("write facts sidecar: %w", err)
	}
	paths = append(paths, factsPath)

	blocks := content.Blocks(sections)

	docxPath := filepath.Join(cfg.OutDir, base+".docx")
	docx, err := docwriter.WriteDOCX(blocks)
	if err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	if err := os.WriteFile(docxPath, docx, 0o644); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}
	paths = append(paths, docxPath)

	if cfg.EnablePDF {
		pdfPath := filepath.Join(cfg.OutDir, base+".pdf")
		if err := docwriter.WritePDF(blocks, pdfPath); err != nil {
			return nil, fmt.Errorf("render pdf: %w", err)
		}
		paths = append(paths, pdfPath)
	}
	return paths, nil
}

// writeTranslatedDOCX renders a second .docx with every block translated
// paragraph by paragraph. Heading labels are translated too; paragraphs that
// fail keep their source text per the translator's fallback contract.
func writeTranslatedDOCX(ctx context.Context, cfg Config, tr translate.Translator, target string, rec facts.Record, sections content.Sections) (string, error) {
	blocks := content.Blocks(sections)
	translated := make([]docwriter.Block, len(blocks))
	for i, blk := range blocks {
		lines := translate.Document(ctx, tr, strings.Split(blk.Text, "\n"), target)
		translated[i] = docwriter.Block{Level: blk.Level, Text: strings.Join(lines, "\n")}
	}

	base := cfg.Basename
	if base == "" {
		base = slugify(rec.Title)
	}
	outPath := filepath.Join(cfg.OutDir, base+"."+target+".docx")
	docx, err := docwriter.WriteDOCX(translated)
	if err != nil {
		return "", fmt.Errorf("render translated docx: %w", err)
	}
	if err := os.WriteFile(outPath, docx, 0o644); err != nil {
		return "", fmt.Errorf("write translated docx: %w", err)
	}
	return outPath, nil
}

var slugNoiseRe = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugNoiseRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "content"
	}
	return s
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
