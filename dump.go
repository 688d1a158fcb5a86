package textpage

import (
	"fmt"
	"io"

	"github.com/tsawler/textpage/model"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Dump writes every entity with its rect, grouped by line.
func (p *Page) Dump(w io.Writer) error {
	s := p.current()
	for li, span := range s.lines {
		if _, err := fmt.Fprintf(w, "line %d:\n", li); err != nil {
			return fmt.Errorf("dump page: %w", err)
		}
		for i := span.Start; i < span.End; i++ {
			e := s.entities[i]
			if _, err := fmt.Fprintf(w, "  [%d] %q %s\n", i, e.Text(), formatRect(e.Area())); err != nil {
				return fmt.Errorf("dump page: %w", err)
			}
		}
	}
	return nil
}

// DumpHTML writes the page as an hOCR-style HTML fragment: one ocr_line span
// per line holding one ocrx_word span per entity. Bounding boxes are given
// in normalized page units.
func (p *Page) DumpHTML(w io.Writer) error {
	s := p.current()

	page := element(atom.Div, "ocr_page", model.PageRect())
	for li, span := range s.lines {
		if span.Len() == 0 {
			continue
		}
		band := s.entities[span.Start].Area()
		for _, e := range s.entities[span.Start+1 : span.End] {
			band = band.Union(e.Area())
		}

		line := element(atom.Span, "ocr_line", band)
		line.Attr = append(line.Attr, html.Attribute{Key: "id", Val: fmt.Sprintf("line_%d", li)})
		for _, e := range s.entities[span.Start:span.End] {
			word := element(atom.Span, "ocrx_word", e.Area())
			word.AppendChild(&html.Node{Type: html.TextNode, Data: e.Text()})
			line.AppendChild(word)
		}
		page.AppendChild(line)
	}

	if err := html.Render(w, page); err != nil {
		return fmt.Errorf("render page html: %w", err)
	}
	return nil
}

func element(a atom.Atom, class string, r model.NormalizedRect) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr: []html.Attribute{
			{Key: "class", Val: class},
			{Key: "title", Val: "bbox " + formatRect(r)},
		},
	}
}

func formatRect(r model.NormalizedRect) string {
	return fmt.Sprintf("%.4f %.4f %.4f %.4f", r.Left, r.Top, r.Right, r.Bottom)
}
