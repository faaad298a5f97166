package render

import (
	"errors"
	"fmt"

	"github.com/dgallion1/dc4u/internal/dc"
)

// ErrUnknownFormat is returned when a record names no supported renderer.
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer turns a completed record into a charge sheet payload.
type Renderer interface {
	Render(rec *dc.Record) ([]byte, error)
	Ext() string
	ContentType() string
}

// ForFormat returns the renderer for an output format.
func ForFormat(format dc.OutputFormat) (Renderer, error) {
	switch format {
	case dc.FormatPDF:
		return &PDFRenderer{}, nil
	case dc.FormatHTML:
		return &HTMLRenderer{}, nil
	case dc.FormatTXT:
		return &TextRenderer{}, nil
	case dc.FormatMD:
		return &MarkdownRenderer{}, nil
	case dc.FormatDOC:
		return &DOCXRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Output is a rendered draft charge paired with its file name.
type Output struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// FileName derives the output name for the n-th draft charge of a source.
func FileName(source string, n int, ext string) string {
	return fmt.Sprintf("%s-Draft-Charge-%d.%s", source, n, ext)
}

// Render dispatches rec to the renderer for its declared format.
func Render(rec *dc.Record, source string, n int) (*Output, error) {
	r, err := ForFormat(rec.OutputFormat)
	if err != nil {
		return nil, err
	}
	data, err := r.Render(rec)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", rec.OutputFormat, err)
	}
	return &Output{
		FileName:    FileName(source, n, r.Ext()),
		ContentType: r.ContentType(),
		Data:        data,
	}, nil
}
