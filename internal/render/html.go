package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dgallion1/dc4u/internal/dc"
)

const pageStyle = `body { font-family: serif; max-width: 48em; margin: 2em auto; }
table { border-collapse: collapse; }
td, th { border: 1px solid #444; padding: 0.3em 0.8em; text-align: left; }`

// HTMLRenderer produces a standalone HTML page. The body is the Markdown
// sheet converted with goldmark; the page around it is built as a node tree.
type HTMLRenderer struct{}

func (r *HTMLRenderer) Ext() string         { return "html" }
func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *HTMLRenderer) Render(rec *dc.Record) ([]byte, error) {
	src, err := renderMarkdown(rec)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var body bytes.Buffer
	if err := md.Convert(src, &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	bodyNode := element(atom.Body)
	nodes, err := html.ParseFragment(&body, bodyNode)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	for _, n := range nodes {
		bodyNode.AppendChild(n)
	}

	doc := page(fmt.Sprintf("%s: %s", sheetTitle, rec.SuspectName), bodyNode)
	var out bytes.Buffer
	if err := html.Render(&out, doc); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return out.Bytes(), nil
}

func page(title string, body *html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	root.Attr = []html.Attribute{{Key: "lang", Val: "en"}}

	head := element(atom.Head)
	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)

	t := element(atom.Title)
	t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(t)

	style := element(atom.Style)
	style.AppendChild(&html.Node{Type: html.TextNode, Data: pageStyle})
	head.AppendChild(style)

	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)
	return doc
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}
