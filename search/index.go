package search

import (
	"strings"
	"sync"

	"github.com/tsawler/textpage/layout"
	"github.com/tsawler/textpage/model"
	"github.com/tsawler/textpage/text"
)

// lineSeparator joins consecutive lines in the flattened text. It belongs to
// no entity and has no area.
const lineSeparator = ' '

// lineRange is one line of the index in rune offsets
type lineRange struct {
	start, end int
	band       model.NormalizedRect
}

// Index is the flattened reading-order text of a page together with a
// parallel map from every rune back to its owning entity. It is immutable
// once built and safe for concurrent use.
type Index struct {
	entities []text.Entity
	runes    []rune
	owner    []int // entity index per rune, -1 for line separators
	pos      []int // rune position inside the owning entity
	first    []int // first rune offset of every entity
	lines    []lineRange

	plainOnce sync.Once
	plain     foldedText
	foldOnce  sync.Once
	folded    foldedText
}

// NewIndex flattens entities in reading order. lines partitions entities into
// text lines; a nil partition treats the whole sequence as one line.
func NewIndex(entities []text.Entity, lines []layout.LineSpan) *Index {
	if lines == nil && len(entities) > 0 {
		lines = []layout.LineSpan{{Start: 0, End: len(entities)}}
	}

	ix := &Index{
		entities: entities,
		first:    make([]int, len(entities)),
		lines:    make([]lineRange, 0, len(lines)),
	}

	for li, span := range lines {
		if li > 0 {
			ix.push(lineSeparator, -1, 0)
		}
		lr := lineRange{start: len(ix.runes)}
		for ei := span.Start; ei < span.End; ei++ {
			e := entities[ei]
			ix.first[ei] = len(ix.runes)
			if ei == span.Start {
				lr.band = e.Area()
			} else {
				lr.band = lr.band.Union(e.Area())
			}
			k := 0
			for _, r := range e.Text() {
				ix.push(r, ei, k)
				k++
			}
		}
		lr.end = len(ix.runes)
		ix.lines = append(ix.lines, lr)
	}

	return ix
}

func (ix *Index) push(r rune, owner, pos int) {
	ix.runes = append(ix.runes, r)
	ix.owner = append(ix.owner, owner)
	ix.pos = append(ix.pos, pos)
}

// Len returns the number of runes in the flattened text
func (ix *Index) Len() int {
	return len(ix.runes)
}

// String returns the flattened text
func (ix *Index) String() string {
	return string(ix.runes)
}

// RuneRange returns the offsets [start, end) covered by entity i
func (ix *Index) RuneRange(i int) (start, end int) {
	if i < 0 || i >= len(ix.entities) {
		return 0, 0
	}
	start = ix.first[i]
	return start, start + ix.entities[i].RuneCount()
}

// glyphArea returns the area of the rune at offset k
func (ix *Index) glyphArea(k int) model.NormalizedRect {
	e := ix.entities[ix.owner[k]]
	return e.SubArea(ix.pos[k], ix.pos[k]+1)
}

// Area returns the region covered by runes [start, end): for every entity
// touched, the rects of the covered runes (or the whole entity when its
// glyphs are unknown), merged into one rect per line. It returns nil when
// the range covers no entity.
func (ix *Index) Area(start, end int) model.RegularAreaRect {
	if start < 0 {
		start = 0
	}
	if end > len(ix.runes) {
		end = len(ix.runes)
	}

	var area model.RegularAreaRect
	for k := start; k < end; {
		o := ix.owner[k]
		if o < 0 {
			k++
			continue
		}
		runEnd := k + 1
		for runEnd < end && ix.owner[runEnd] == o {
			runEnd++
		}
		sub := ix.entities[o].SubArea(ix.pos[k], ix.pos[runEnd-1]+1)
		area = area.Add(sub)
		k = runEnd
	}
	return area
}

// Locate maps an area back to the rune offsets [start, end) of every rune
// whose center it contains
func (ix *Index) Locate(area model.RegularAreaRect) (start, end int, ok bool) {
	start, end = -1, -1
	for k := range ix.runes {
		if ix.owner[k] < 0 {
			continue
		}
		if area.ContainsCenter(ix.glyphArea(k)) {
			if start < 0 {
				start = k
			}
			end = k + 1
		}
	}
	return start, end, start >= 0
}

// OffsetAt maps a point to the rune offset a text cursor placed there would
// have: before the first rune whose center lies right of the point on the
// line containing it, at the start of the next line when the point falls
// between lines, and at the end of the text below the last line.
func (ix *Index) OffsetAt(p model.Point) int {
	for _, l := range ix.lines {
		if p.Y < l.band.Top {
			return l.start
		}
		if p.Y > l.band.Bottom {
			continue
		}
		for k := l.start; k < l.end; k++ {
			if p.X < ix.glyphArea(k).Center().X {
				return k
			}
		}
		return l.end
	}
	return len(ix.runes)
}

// Slice returns the flattened text of runes [start, end)
func (ix *Index) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(ix.runes) {
		end = len(ix.runes)
	}
	if start >= end {
		return ""
	}
	var sb strings.Builder
	for _, r := range ix.runes[start:end] {
		sb.WriteRune(r)
	}
	return sb.String()
}
