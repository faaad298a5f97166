package render

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/dgallion1/dc4u/internal/dc"
)

var mdTemplate = template.Must(template.New("md").
	Funcs(template.FuncMap{"esc": mdEscape}).
	Parse(`# {{.Title}}

## Particulars of the Accused

| Particular | Detail |
| --- | --- |
{{range .Accused}}| {{.Label}} | {{esc .Value}} |
{{end}}
## Charge

{{esc .Charge}}

## Charging Officer

| Particular | Detail |
| --- | --- |
{{range .Officer}}| {{.Label}} | {{esc .Value}} |
{{end}}`))

// mdEscaper neutralizes the word characters that Markdown reads as emphasis.
var mdEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `_`, `\_`, `|`, `\|`)

func mdEscape(s string) string { return mdEscaper.Replace(s) }

// MarkdownRenderer produces a Markdown charge sheet.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Ext() string         { return "md" }
func (r *MarkdownRenderer) ContentType() string { return "text/markdown; charset=utf-8" }

func (r *MarkdownRenderer) Render(rec *dc.Record) ([]byte, error) {
	return renderMarkdown(rec)
}

func renderMarkdown(rec *dc.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, newSheet(rec)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
