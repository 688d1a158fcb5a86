package text

import (
	"math"
	"testing"

	"github.com/tsawler/textpage/model"
)

// makeChar creates a single-glyph entity at x with the given width on a fixed band
func makeChar(txt string, x, width float64) Entity {
	return NewEntity(txt, model.NormalizedRect{Left: x, Top: 0.1, Right: x + width, Bottom: 0.12})
}

func TestGranularity_String(t *testing.T) {
	tests := []struct {
		g    Granularity
		want string
	}{
		{Character, "character"},
		{Word, "word"},
		{Line, "line"},
		{Granularity(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.g.String(); got != tt.want {
			t.Errorf("Granularity(%d).String() = %q, want %q", tt.g, got, tt.want)
		}
	}
}

func TestNewEntity_SingleRuneHasGlyph(t *testing.T) {
	e := makeChar("\u00e9", 0.1, 0.01)
	if !e.HasGlyphs() {
		t.Fatal("Expected single-rune entity to carry its glyph rect")
	}
	if len(e.Glyphs()) != 1 || e.Glyphs()[0] != e.Area() {
		t.Errorf("Expected glyph to equal the area, got %+v", e.Glyphs())
	}

	w := NewEntity("word", model.NormalizedRect{Left: 0.1, Top: 0.1, Right: 0.2, Bottom: 0.12})
	if w.HasGlyphs() {
		t.Error("Expected multi-rune entity without glyph rects")
	}
}

func TestEntity_GlyphsIsCopy(t *testing.T) {
	e := Join(makeChar("a", 0.1, 0.01), makeChar("b", 0.11, 0.01))
	g := e.Glyphs()
	g[0] = model.NormalizedRect{}
	if e.Glyphs()[0].Left != 0.1 {
		t.Error("Mutating Glyphs() result changed the entity")
	}
}

func TestJoin(t *testing.T) {
	e := Join(makeChar("H", 0.1, 0.01), makeChar("i", 0.11, 0.005))

	if e.Text() != "Hi" {
		t.Errorf("Expected 'Hi', got %q", e.Text())
	}
	want := model.NormalizedRect{Left: 0.1, Top: 0.1, Right: 0.115, Bottom: 0.12}
	if math.Abs(e.Area().Right-want.Right) > 1e-9 || e.Area().Left != want.Left {
		t.Errorf("Expected area %+v, got %+v", want, e.Area())
	}
	if !e.HasGlyphs() {
		t.Error("Expected joined characters to keep glyph rects")
	}

	mixed := Join(e, NewEntity("there", model.NormalizedRect{Left: 0.12, Top: 0.1, Right: 0.16, Bottom: 0.12}))
	if mixed.HasGlyphs() {
		t.Error("Expected join with a word entity to drop glyph rects")
	}
	if mixed.Text() != "Hithere" {
		t.Errorf("Expected 'Hithere', got %q", mixed.Text())
	}
}

func TestJoin_DoesNotShareStorage(t *testing.T) {
	a := Join(makeChar("a", 0.1, 0.01), makeChar("b", 0.11, 0.01))
	b1 := Join(a, makeChar("c", 0.12, 0.01))
	b2 := Join(a, makeChar("d", 0.5, 0.01))
	if b1.SubArea(2, 3).Left != 0.12 {
		t.Errorf("Expected third glyph of first join at 0.12, got %v", b1.SubArea(2, 3).Left)
	}
	if b2.SubArea(2, 3).Left != 0.5 {
		t.Errorf("Expected third glyph of second join at 0.5, got %v", b2.SubArea(2, 3).Left)
	}
}

func TestEntity_SubArea(t *testing.T) {
	e := Join(makeChar("a", 0.1, 0.01), makeChar("b", 0.11, 0.01), makeChar("c", 0.12, 0.01))

	sub := e.SubArea(1, 3)
	if sub.Left != 0.11 || math.Abs(sub.Right-0.13) > 1e-9 {
		t.Errorf("SubArea(1,3) = %+v", sub)
	}

	word := NewEntity("abc", model.NormalizedRect{Left: 0.1, Top: 0.1, Right: 0.13, Bottom: 0.12})
	if word.SubArea(1, 2) != word.Area() {
		t.Error("Expected whole area for an entity without glyph rects")
	}
}

func TestEntity_SpacePredicates(t *testing.T) {
	tests := []struct {
		txt                   string
		space, starts, ending bool
	}{
		{" ", true, true, true},
		{"\u00a0", true, true, true},
		{"a", false, false, false},
		{" a", false, true, false},
		{"a ", false, false, true},
		{"  ", false, true, true},
	}
	for _, tt := range tests {
		e := makeChar(tt.txt, 0.1, 0.01)
		if e.IsSpace() != tt.space || e.StartsWithSpace() != tt.starts || e.EndsWithSpace() != tt.ending {
			t.Errorf("%q: IsSpace=%v StartsWithSpace=%v EndsWithSpace=%v", tt.txt, e.IsSpace(), e.StartsWithSpace(), e.EndsWithSpace())
		}
	}
}

func TestEntity_CharWidth(t *testing.T) {
	e := NewEntity("four", model.NormalizedRect{Left: 0.1, Top: 0.1, Right: 0.18, Bottom: 0.12})
	if math.Abs(e.CharWidth()-0.02) > 1e-9 {
		t.Errorf("Expected 0.02, got %v", e.CharWidth())
	}
}

func TestEntity_TransformedArea(t *testing.T) {
	e := NewEntity("x", model.NormalizedRect{Left: 0.1, Top: 0.1, Right: 0.2, Bottom: 0.2})
	moved := e.TransformedArea(model.Translate(0.1, 0))
	if math.Abs(moved.Left-0.2) > 1e-9 {
		t.Errorf("Expected translated left 0.2, got %v", moved.Left)
	}
	if e.Area().Left != 0.1 {
		t.Error("TransformedArea modified the entity")
	}
}
