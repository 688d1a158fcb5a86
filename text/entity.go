package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/textpage/model"
	"golang.org/x/image/math/f64"
)

// Granularity describes what one raw fragment of a source represents
type Granularity int

const (
	// Character sources report one glyph per fragment
	Character Granularity = iota
	// Word sources report one word per fragment
	Word
	// Line sources report whole lines (or the whole page) per fragment
	Line
)

// String returns a string representation of the granularity
func (g Granularity) String() string {
	switch g {
	case Character:
		return "character"
	case Word:
		return "word"
	case Line:
		return "line"
	default:
		return "unknown"
	}
}

// Fragment is one raw, positioned piece of decoded text as reported by a
// page-format parser, before reconstruction
type Fragment struct {
	Text string
	Area model.NormalizedRect
}

// Entity is a fragment, or a merged group of fragments, after normalization.
// Entities are values and are never modified after construction.
type Entity struct {
	text string
	area model.NormalizedRect

	// glyphs holds one rect per rune when the entity was built from
	// character-level fragments; nil otherwise
	glyphs []model.NormalizedRect
}

// NewEntity creates an entity from text and its bounding area.
// A single-rune entity records its area as its only glyph rect.
func NewEntity(text string, area model.NormalizedRect) Entity {
	e := Entity{text: text, area: area}
	if utf8.RuneCountInString(text) == 1 {
		e.glyphs = []model.NormalizedRect{area}
	}
	return e
}

// Text returns the text of the entity
func (e Entity) Text() string {
	return e.text
}

// Area returns the bounding area of the entity
func (e Entity) Area() model.NormalizedRect {
	return e.area
}

// TransformedArea returns the entity's area mapped through m
func (e Entity) TransformedArea(m f64.Aff3) model.NormalizedRect {
	return e.area.Transform(m)
}

// RuneCount returns the number of runes in the entity's text
func (e Entity) RuneCount() int {
	return utf8.RuneCountInString(e.text)
}

// HasGlyphs reports whether per-rune rects are known
func (e Entity) HasGlyphs() bool {
	return len(e.glyphs) > 0 && len(e.glyphs) == e.RuneCount()
}

// Glyphs returns a copy of the per-rune rects, or nil if they are unknown
func (e Entity) Glyphs() []model.NormalizedRect {
	if !e.HasGlyphs() {
		return nil
	}
	out := make([]model.NormalizedRect, len(e.glyphs))
	copy(out, e.glyphs)
	return out
}

// SubArea returns the area covered by runes [start, end) of the entity. With
// known glyph rects this is their union; otherwise the whole entity area is
// returned.
func (e Entity) SubArea(start, end int) model.NormalizedRect {
	if !e.HasGlyphs() {
		return e.area
	}
	if start < 0 {
		start = 0
	}
	if end > len(e.glyphs) {
		end = len(e.glyphs)
	}
	if start >= end {
		return e.area
	}
	out := e.glyphs[start]
	for _, g := range e.glyphs[start+1 : end] {
		out = out.Union(g)
	}
	return out
}

// IsSpace reports whether the entity is a single space-like rune
func (e Entity) IsSpace() bool {
	r, size := utf8.DecodeRuneInString(e.text)
	return size > 0 && size == len(e.text) && unicode.IsSpace(r)
}

// StartsWithSpace reports whether the entity text begins with whitespace
func (e Entity) StartsWithSpace() bool {
	r, size := utf8.DecodeRuneInString(e.text)
	return size > 0 && unicode.IsSpace(r)
}

// EndsWithSpace reports whether the entity text ends with whitespace
func (e Entity) EndsWithSpace() bool {
	r, size := utf8.DecodeLastRuneInString(e.text)
	return size > 0 && unicode.IsSpace(r)
}

// CharWidth returns the average width of one rune of the entity
func (e Entity) CharWidth() float64 {
	n := e.RuneCount()
	if n == 0 {
		return 0
	}
	return e.area.Width() / float64(n)
}

// Join merges entities into one whose text is the concatenation and whose
// area is the union of theirs. Glyph rects are kept only when every member
// has them.
func Join(members ...Entity) Entity {
	if len(members) == 0 {
		return Entity{}
	}
	if len(members) == 1 {
		return members[0]
	}

	var sb strings.Builder
	area := members[0].area
	withGlyphs := true
	total := 0
	for _, m := range members {
		sb.WriteString(m.text)
		area = area.Union(m.area)
		if !m.HasGlyphs() {
			withGlyphs = false
		}
		total += len(m.glyphs)
	}

	e := Entity{text: sb.String(), area: area}
	if withGlyphs {
		e.glyphs = make([]model.NormalizedRect, 0, total)
		for _, m := range members {
			e.glyphs = append(e.glyphs, m.glyphs...)
		}
	}
	return e
}
