package render

import (
	"bytes"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/dgallion1/dc4u/internal/dc"
)

const (
	pdfLineHeight = 7.0
	pdfLabelWidth = 55.0
)

// pdfEpoch pins the document creation date.
var pdfEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDFRenderer produces a PDF charge sheet with the core Helvetica font.
type PDFRenderer struct{}

func (r *PDFRenderer) Ext() string         { return "pdf" }
func (r *PDFRenderer) ContentType() string { return "application/pdf" }

func (r *PDFRenderer) Render(rec *dc.Record) ([]byte, error) {
	s := newSheet(rec)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(s.Title, false)
	pdf.SetCreator("dc4u", false)
	pdf.SetCreationDate(pdfEpoch)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, strings.ToUpper(s.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdfSection(pdf, "Particulars of the Accused", s.Accused)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, "Charge", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, pdfLineHeight, s.Charge, "", "J", false)
	pdf.Ln(4)

	pdfSection(pdf, "Charging Officer", s.Officer)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfSection(pdf *fpdf.Fpdf, title string, lines []line) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	for _, l := range lines {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(pdfLabelWidth, pdfLineHeight, l.Label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, pdfLineHeight, l.Value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}
