package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCXLoader handles DC source typed into a Word document, one paragraph
// per line.
type DOCXLoader struct{}

func (l *DOCXLoader) Load(r io.Reader, filename string) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var lines []string
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		lines = append(lines, docxParagraphText(para))
	}

	return &Source{
		Name: Name(filename),
		Text: strings.Join(lines, "\n"),
	}, nil
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			switch t := rc.(type) {
			case *docx.Text:
				buf.WriteString(t.Text)
			case *docx.Tab:
				buf.WriteByte(' ')
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
