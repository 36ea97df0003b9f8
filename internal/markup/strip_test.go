package markup

import (
	"strings"
	"testing"
)

func TestToPlainText_BreaksBecomeNewlines(t *testing.T) {
	// A break element separates text nodes that are already newline-joined,
	// so a single <br/> yields one blank line, never more.
	got := ToPlainText("first<br/>second<br>third")
	if got != "first\n\nsecond\n\nthird" {
		t.Fatalf("got %q", got)
	}
}

func TestToPlainText_BlocksFlattenToLines(t *testing.T) {
	got := ToPlainText("<h1>Heading</h1><p>One</p><p>Two</p>")
	for _, want := range []string{"Heading", "One", "Two"} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in %q", want, got)
		}
	}
	if strings.Contains(got, "<") {
		t.Fatalf("markup leaked into %q", got)
	}
}

func TestToPlainText_CollapsesBlankRuns(t *testing.T) {
	got := ToPlainText("a<br/><br/><br/><br/>b")
	if got != "a\n\nb" {
		t.Fatalf("got %q", got)
	}
}

func TestToPlainText_PlainTextPassesThrough(t *testing.T) {
	in := "Subject: Mega Cash Draw\nMax 250 tickets per week"
	got := ToPlainText(in)
	if got != in {
		t.Fatalf("got %q want %q", got, in)
	}
}

func TestToPlainText_SkipsScriptAndStyle(t *testing.T) {
	got := ToPlainText("<p>keep</p><script>drop()</script><style>.x{}</style>")
	if !strings.Contains(got, "keep") || strings.Contains(got, "drop") || strings.Contains(got, ".x") {
		t.Fatalf("got %q", got)
	}
}

func TestToPlainText_TrimsWholeText(t *testing.T) {
	got := ToPlainText("<br/><br/>middle<br/><br/>")
	if got != "middle" {
		t.Fatalf("got %q", got)
	}
}

func TestToPlainText_EmptyInput(t *testing.T) {
	if got := ToPlainText(""); got != "" {
		t.Fatalf("got %q", got)
	}
}
