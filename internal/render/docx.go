package render

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/dgallion1/dc4u/internal/dc"
)

// DOCXRenderer produces a Word document.
type DOCXRenderer struct{}

func (r *DOCXRenderer) Ext() string { return "docx" }
func (r *DOCXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

func (r *DOCXRenderer) Render(rec *dc.Record) ([]byte, error) {
	s := newSheet(rec)
	doc := docx.New().WithDefaultTheme().WithA4Page()

	doc.AddParagraph().Justification("center").AddText(strings.ToUpper(s.Title)).Bold().Size("32")

	heading(doc, "Particulars of the Accused")
	for _, l := range s.Accused {
		labelled(doc, l)
	}

	heading(doc, "Charge")
	doc.AddParagraph().Justification("both").AddText(s.Charge)

	heading(doc, "Charging Officer")
	for _, l := range s.Officer {
		labelled(doc, l)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func heading(doc *docx.Docx, text string) {
	doc.AddParagraph().AddText(text).Bold().Size("26")
}

func labelled(doc *docx.Docx, l line) {
	p := doc.AddParagraph()
	p.AddText(l.Label + ": ").Bold()
	p.AddText(l.Value)
}
