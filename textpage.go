// Package textpage reconstructs readable, searchable text from the
// unordered, positioned fragments a document format reports for a page.
//
// Basic usage:
//
//	page := textpage.New(text.Character)
//	for _, g := range glyphs {
//	    page.Append(g.Text, g.Area)
//	}
//	fmt.Println(page.Text(textpage.NoRegion))
//
// Region extraction and search:
//
//	title := page.Text(textpage.InRect(model.NormalizedRect{Left: 0, Top: 0, Right: 1, Bottom: 0.1}))
//
//	hit := page.FindText(1, "lo", search.Forward, search.CaseInsensitive, nil)
//	for hit != nil {
//	    fmt.Println(hit.Area())
//	    hit = page.FindText(1, "lo", search.Forward, search.CaseInsensitive, hit)
//	}
//
// Fragments may be appended at any time. Reconstruction runs lazily before
// the next query, and queries are safe for concurrent use.
package textpage

import (
	"strings"
	"sync"

	"github.com/tsawler/textpage/layout"
	"github.com/tsawler/textpage/model"
	"github.com/tsawler/textpage/search"
	"github.com/tsawler/textpage/text"
)

// Page holds the text of one document page. Fragments are appended in any
// order; queries see them in reconstructed reading order.
type Page struct {
	mu        sync.Mutex
	options   Options
	rec       *layout.Reconstructor
	seed      []text.Entity
	fragments []text.Fragment
	snap      *snapshot
}

// snapshot is the reconstructed, read-only state of a page. It is replaced
// as a whole when fragments are appended.
type snapshot struct {
	entities []text.Entity
	lines    []layout.LineSpan
	index    *search.Index
	warnings []Warning
}

// New creates an empty page for fragments of the given granularity.
func New(granularity text.Granularity) *Page {
	return NewWithOptions(DefaultOptions().WithGranularity(granularity))
}

// NewWithOptions creates an empty page with custom options.
func NewWithOptions(opts Options) *Page {
	opts = opts.withDefaults()
	rec := layout.NewReconstructorWithConfig(opts.Layout)
	rec.SetLogger(opts.Logger)
	return &Page{options: opts, rec: rec}
}

// NewFromEntities creates a page from entities built elsewhere, for instance
// word boxes from OCR. The entities still go through reconstruction with the
// granularity from opts, and keep any glyph rects they carry.
func NewFromEntities(entities []text.Entity, opts Options) *Page {
	p := NewWithOptions(opts)
	for _, e := range entities {
		if e.Text() == "" {
			continue
		}
		p.seed = append(p.seed, e)
	}
	return p
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	page := textpage.Must(client.RecognizePage(img))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Options returns the options the page was created with.
func (p *Page) Options() Options {
	return p.options
}

// Append adds one raw fragment to the page.
func (p *Page) Append(s string, area model.NormalizedRect) {
	p.AppendFragments(text.Fragment{Text: s, Area: area})
}

// AppendFragments adds raw fragments to the page.
func (p *Page) AppendFragments(fragments ...text.Fragment) {
	if len(fragments) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fragments = append(p.fragments, fragments...)
	p.snap = nil
}

// current returns the reconstructed state, rebuilding it after appends.
func (p *Page) current() *snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.snap == nil {
		p.snap = p.rebuild()
	}
	return p.snap
}

// rebuild normalizes every fragment and runs the reconstruction pipeline.
// Must be called with p.mu held.
func (p *Page) rebuild() *snapshot {
	normalized, rejected := text.Normalize(p.fragments)
	warnings := warningsFrom(rejected)

	if logger := p.options.Logger; logger != nil {
		for _, w := range warnings {
			logger.Debug("fragment dropped", "index", w.Index, "text", w.Text, "reason", w.Reason)
		}
	}

	entities := make([]text.Entity, 0, len(p.seed)+len(normalized))
	entities = append(entities, p.seed...)
	entities = append(entities, normalized...)

	res := p.rec.Run(entities, p.options.Granularity)

	if logger := p.options.Logger; logger != nil {
		logger.Debug("page rebuilt",
			"fragments", len(p.fragments),
			"dropped", len(warnings),
			"entities", len(res.Entities),
			"lines", len(res.Lines))
	}

	return &snapshot{
		entities: res.Entities,
		lines:    res.Lines,
		index:    search.NewIndex(res.Entities, res.Lines),
		warnings: warnings,
	}
}

// Text returns the page text inside region, using AnyPixel inclusion.
// Lines are separated by "\n".
func (p *Page) Text(region Region) string {
	return p.TextWithInclusion(region, AnyPixel)
}

// TextWithInclusion returns the text of the entities inside region under the
// given inclusion policy, in reading order with lines separated by "\n". An
// empty region yields "".
func (p *Page) TextWithInclusion(region Region, inclusion Inclusion) string {
	if region.IsEmpty() {
		return ""
	}
	s := p.current()

	var sb strings.Builder
	lastLine := -1
	for li, span := range s.lines {
		for i := span.Start; i < span.End; i++ {
			e := s.entities[i]
			if !region.includes(e.Area(), inclusion) {
				continue
			}
			if lastLine >= 0 && li != lastLine {
				sb.WriteByte('\n')
			}
			lastLine = li
			sb.WriteString(e.Text())
		}
	}
	return sb.String()
}

// TextArea returns the region covered by a selection: one rect per line,
// clipped to the selected characters where glyph rects are known. It
// returns nil for an empty selection.
func (p *Page) TextArea(sel Selection) model.RegularAreaRect {
	if sel == nil {
		return nil
	}
	s := p.current()
	start, end := s.selectionRange(sel)
	return s.index.Area(start, end)
}

// SelectedText returns the flattened text covered by a selection, with
// lines joined by a single space as in search.
func (p *Page) SelectedText(sel Selection) string {
	if sel == nil {
		return ""
	}
	s := p.current()
	start, end := s.selectionRange(sel)
	return s.index.Slice(start, end)
}

// selectionRange resolves both anchors to ordered rune offsets
func (s *snapshot) selectionRange(sel Selection) (int, int) {
	start := s.offset(sel.Start())
	end := s.offset(sel.End())
	if start > end {
		start, end = end, start
	}
	return start, end
}

func (s *snapshot) offset(a Anchor) int {
	if a.Kind == PointAnchor {
		return s.index.OffsetAt(a.Point)
	}
	return a.Offset
}

// FindText searches the page for needle and returns the match, or nil when
// there is none. Pass the previous result as from to continue the search;
// nil starts at the beginning (Forward) or end (Backward) of the page.
// Reusing id with a needle that extends the previous one keeps the current
// match, as in find-as-you-type.
func (p *Page) FindText(id int, needle string, dir search.Direction, cs search.CaseSensitivity, from *search.Cursor) *search.Cursor {
	return p.current().index.Find(search.Query{
		ID:        id,
		Needle:    needle,
		Direction: dir,
		Case:      cs,
	}, from)
}

// Entities returns a copy of the reconstructed entities in reading order.
func (p *Page) Entities() []text.Entity {
	s := p.current()
	out := make([]text.Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Lines returns the text of every line in reading order.
func (p *Page) Lines() []string {
	s := p.current()
	out := make([]string, len(s.lines))
	for i, span := range s.lines {
		var sb strings.Builder
		for _, e := range s.entities[span.Start:span.End] {
			sb.WriteString(e.Text())
		}
		out[i] = sb.String()
	}
	return out
}

// Len returns the number of reconstructed entities.
func (p *Page) Len() int {
	return len(p.current().entities)
}

// Warnings returns the fragments dropped during the last reconstruction.
func (p *Page) Warnings() []Warning {
	s := p.current()
	return append([]Warning(nil), s.warnings...)
}
