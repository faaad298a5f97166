package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/dgallion1/dc4u/internal/dc"
)

var textTemplate = template.Must(template.New("txt").
	Funcs(template.FuncMap{"upper": strings.ToUpper, "label": textLabel}).
	Parse(`{{upper .Title}}
============

PARTICULARS OF THE ACCUSED
{{range .Accused}}{{label .Label}}{{.Value}}
{{end}}
CHARGE
{{.Charge}}

{{range .Officer}}{{label .Label}}{{.Value}}
{{end}}`))

// textLabel pads a label so values line up in one column.
func textLabel(s string) string {
	return fmt.Sprintf("%-20s", s+":")
}

// TextRenderer produces a plain text charge sheet.
type TextRenderer struct{}

func (r *TextRenderer) Ext() string         { return "txt" }
func (r *TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r *TextRenderer) Render(rec *dc.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := textTemplate.Execute(&buf, newSheet(rec)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
