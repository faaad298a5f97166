package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFLoader handles DC source exported to PDF. Page text is joined with
// newlines; layout is not preserved.
type PDFLoader struct{}

func (l *PDFLoader) Load(r io.Reader, filename string) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract pdf page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	return &Source{
		Name: Name(filename),
		Text: strings.Join(pages, "\n"),
	}, nil
}
