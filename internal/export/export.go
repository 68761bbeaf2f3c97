// Package export writes the assignment list as a printable PDF handout.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/idilsaglam/teacherhub/internal/model"
)

// AssignmentsPDF writes one line per assignment, in list order, with details
// underneath. Core fonts are cp1252, so text is translated from UTF-8.
func AssignmentsPDF(w io.Writer, items []model.Assignment, generated time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Assignments", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Assignments")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 5, tr(fmt.Sprintf("Generated %s · %d item(s)", generated.Format("Jan 2, 2006"), len(items))))
	pdf.Ln(4)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(5)
	pdf.SetTextColor(0, 0, 0)

	if len(items) == 0 {
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, 6, "No assignments yet.")
	}
	for i, it := range items {
		pdf.SetFont("Arial", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", i+1, it.Line())), "0", "L", false)
		if it.Details != "" {
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, tr(it.Details), "0", "L", false)
		}
		pdf.Ln(2)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
