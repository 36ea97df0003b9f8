package docwriter

import (
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders blocks into a simple A4 PDF: bold larger fonts for the two
// heading levels, plain paragraphs for body text. Layout is intentionally
// minimal.
func WritePDF(blocks []Block, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; translate so currency symbols survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	for _, blk := range blocks {
		switch blk.Level {
		case 1:
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 14)
			pdf.CellFormat(0, 8, tr(blk.Text), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
		case 2:
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 7, tr(blk.Text), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
		default:
			for _, line := range strings.Split(blk.Text, "\n") {
				s := strings.TrimSpace(line)
				if s == "" {
					pdf.Ln(4)
					continue
				}
				pdf.MultiCell(0, 5, tr(s), "", "L", false)
			}
			pdf.Ln(3)
		}
	}

	return pdf.OutputFileAndClose(outPath)
}
