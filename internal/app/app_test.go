package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperifyio/gopromo/internal/facts"
)

func TestRun_EndToEnd_HTMLBrief(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "brief.html")
	html := "<h1>Promo</h1><p>Subject: Mega Cash Draw</p><p>Max 250 tickets per week</p><p>$1,000 Cash - 5</p>"
	if err := os.WriteFile(input, []byte(html), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	outDir := filepath.Join(dir, "out")

	a, err := New(Config{InputPath: input, OutDir: outDir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	preview, err := os.ReadFile(filepath.Join(outDir, "mega-cash-draw.md"))
	if err != nil {
		t.Fatalf("read preview: %v", err)
	}
	if !strings.Contains(string(preview), "Mega Cash Draw") {
		t.Fatalf("preview missing title: %s", preview)
	}

	sidecar, err := os.ReadFile(filepath.Join(outDir, "mega-cash-draw.facts.json"))
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}
	var rec facts.Record
	if err := json.Unmarshal(sidecar, &rec); err != nil {
		t.Fatalf("parse sidecar: %v", err)
	}
	if rec.EntryCapPerWeek != "250" {
		t.Fatalf("cap: got %q", rec.EntryCapPerWeek)
	}
	if len(rec.Prizes) != 1 || rec.Prizes[0].Quantity != 5 {
		t.Fatalf("prizes: got %+v", rec.Prizes)
	}

	if _, err := os.Stat(filepath.Join(outDir, "mega-cash-draw.docx")); err != nil {
		t.Fatalf("docx missing: %v", err)
	}
}

func TestRun_MissingInputFails(t *testing.T) {
	a, err := New(Config{InputPath: "/does/not/exist.docx", OutDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.Run(context.Background()); err == nil {
		t.Fatalf("expected error for missing input")
	}
}

func TestNew_RejectsBogusTranslationTag(t *testing.T) {
	_, err := New(Config{InputPath: "x", OutDir: "y", TranslateLang: "definitely-not-a-language-tag", LLMModel: "m"})
	if err == nil {
		t.Fatalf("expected error for bogus language tag")
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Mega Cash Draw":         "mega-cash-draw",
		"  Pragmatic $20K Draw ": "pragmatic-20k-draw",
		"***":                    "content",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q): got %q want %q", in, got, want)
		}
	}
}
