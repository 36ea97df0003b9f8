package docwriter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePDF_ProducesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "content.pdf")
	blocks := []Block{
		{Level: 1, Text: "Multi Content"},
		{Level: 2, Text: "Promotion Title"},
		{Text: "Mega Cash Draw"},
		{Text: "€300 Bonus – 10\n\n$1,000 Cash – 1"},
	}
	if err := WritePDF(blocks, out); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", data[:min(8, len(data))])
	}
}
