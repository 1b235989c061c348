package render

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/runnerr0/patina/internal/layout"
)

// WritePDF renders a multi-section document to path. Text is translated
// to the core-font codepage, so exotic runes degrade to replacements
// rather than failing the render.
func WritePDF(path, title string, sections []Section) error {
	if err := layout.EnsureParent(path); err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "", false, 0, "")
	pdf.Ln(4)

	for _, sec := range sections {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr(sec.Heading), "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, line := range strings.Split(sec.Body, "\n") {
			pdf.MultiCell(0, 6, tr(line), "", "", false)
		}
		pdf.Ln(2)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}
