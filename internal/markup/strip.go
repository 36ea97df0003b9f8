package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// ToPlainText flattens HTML or markup-ish text into newline-joined visible
// text. Line-break elements become literal newlines, block and inline
// elements alike separate their text with newlines, and runs of three or more
// newlines collapse to exactly two so a single blank line survives as a
// paragraph separator.
//
// The function is fail-open: plain text with no markup passes through with
// only whitespace normalisation, and a nil parse tree returns the input
// unchanged rather than dropping it.
func ToPlainText(input string) string {
	node, err := html.Parse(strings.NewReader(input))
	if err != nil || node == nil {
		return strings.TrimSpace(input)
	}
	var b strings.Builder
	collectText(&b, node)
	return tidy(b.String())
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		name := strings.ToLower(n.Data)
		switch name {
		case "script", "style", "noscript", "head", "iframe":
			return
		case "br", "hr":
			b.WriteString("\n")
			return
		}
	}

	if n.Type == html.TextNode {
		data := strings.ReplaceAll(n.Data, "\r", "")
		if strings.TrimSpace(data) != "" {
			b.WriteString(data)
			b.WriteString("\n")
		} else if strings.Count(data, "\n") >= 2 {
			// A whitespace-only node spanning a blank line keeps its role
			// as a paragraph separator.
			b.WriteString("\n")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

// tidy trims each line, collapses 3+ newlines to exactly 2, and trims the
// whole text.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			// Keep at most one consecutive blank line.
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, trimmed)
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
