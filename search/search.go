package search

import (
	"sort"
	"strings"

	"github.com/tsawler/textpage/model"
	"github.com/tsawler/textpage/text"
)

// Direction selects which way a search scans from its resume point
type Direction int

const (
	// Forward finds the first match at or after the resume point
	Forward Direction = iota
	// Backward finds the last match before the resume point
	Backward
)

// String returns the string representation of the direction
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// CaseSensitivity selects how runes are compared
type CaseSensitivity int

const (
	// CaseSensitive compares code points exactly
	CaseSensitive CaseSensitivity = iota
	// CaseInsensitive compares Unicode case-folded code points
	CaseInsensitive
)

// String returns the string representation of the case mode
func (c CaseSensitivity) String() string {
	if c == CaseInsensitive {
		return "insensitive"
	}
	return "sensitive"
}

// Query describes one search request
type Query struct {
	// ID groups consecutive searches of one session. A search that repeats
	// the ID of its resume cursor with a needle extending the previous one
	// is incremental: the current match may grow instead of being skipped.
	ID        int
	Needle    string
	Direction Direction
	Case      CaseSensitivity
}

// Cursor is a search result. It carries the matched region and is passed
// back to continue a search after (or before) that match.
type Cursor struct {
	id     int
	needle string
	start  int
	end    int
	area   model.RegularAreaRect
	source *Index
	anchor anchor
}

// anchor pins a match to the entity holding its first rune, so it can be
// found again in an index rebuilt from a changed page
type anchor struct {
	text   string
	area   model.NormalizedRect
	offset int // rune offset inside the entity
	lead   int // runes of the match before the entity's rune
	length int
	ok     bool
}

// anchorOverlap is the intersection over union an entity of a rebuilt index
// needs with the anchored one to count as the same entity
const anchorOverlap = 0.9

// CursorAt creates a resume cursor from a region alone, for instance a
// selection made by the user. The text it covers is located geometrically.
func CursorAt(id int, area model.RegularAreaRect) *Cursor {
	return &Cursor{id: id, start: -1, end: -1, area: area.Clone()}
}

// ID returns the search id the cursor was produced for
func (c *Cursor) ID() int {
	return c.id
}

// Needle returns the needle that produced the cursor, "" for CursorAt
func (c *Cursor) Needle() string {
	return c.needle
}

// Area returns a copy of the matched region
func (c *Cursor) Area() model.RegularAreaRect {
	return c.area.Clone()
}

// Offsets returns the matched rune range in the flattened text of the page
// that produced the cursor, or -1, -1 for cursors built with CursorAt.
func (c *Cursor) Offsets() (start, end int) {
	return c.start, c.end
}

// Find searches the index for q.Needle and returns the match as a cursor,
// or nil when there is none. from is the cursor to resume from; nil starts
// at the beginning (Forward) or end (Backward) of the text.
//
// A Forward search returns the first match starting at or after the end of
// from, a Backward search the last match starting before its start. When
// the query is incremental the bound moves to include the previous match
// itself.
func (ix *Index) Find(q Query, from *Cursor) *Cursor {
	needle := prepareNeedle(q.Needle, q.Case)
	if len(needle) == 0 {
		return nil
	}

	hay := ix.haystack(q.Case)
	n := len(needle)
	if n > len(hay.runes) {
		return nil
	}

	start, end, resuming := ix.resumeRange(from)
	incremental := resuming && isIncremental(q, from)

	var at int
	switch q.Direction {
	case Backward:
		limit := len(ix.runes)
		if resuming {
			limit = start
			if incremental {
				limit = start + 1
			}
		}
		// Last folded position whose source rune is before limit
		i := sort.SearchInts(hay.origin, limit) - 1
		if i > len(hay.runes)-n {
			i = len(hay.runes) - n
		}
		at = -1
		for ; i >= 0; i-- {
			if matchAt(hay.runes, needle, i) {
				at = i
				break
			}
		}
	default:
		limit := 0
		if resuming {
			limit = end
			if incremental {
				limit = start
			}
		}
		at = -1
		for i := sort.SearchInts(hay.origin, limit); i+n <= len(hay.runes); i++ {
			if matchAt(hay.runes, needle, i) {
				at = i
				break
			}
		}
	}

	if at < 0 {
		return nil
	}

	mStart := hay.origin[at]
	mEnd := hay.origin[at+n-1] + 1
	return &Cursor{
		id:     q.ID,
		needle: q.Needle,
		start:  mStart,
		end:    mEnd,
		area:   ix.Area(mStart, mEnd),
		source: ix,
		anchor: ix.anchorAt(mStart, mEnd),
	}
}

// resumeRange returns the offsets of from in this index. A cursor produced by
// another index is resolved through its anchor entity, and located by its
// area when that entity is gone or the cursor was built with CursorAt.
func (ix *Index) resumeRange(from *Cursor) (start, end int, ok bool) {
	if from == nil {
		return 0, 0, false
	}
	if from.source == ix && from.start >= 0 {
		return from.start, from.end, true
	}
	if start, end, ok = ix.resolve(from.anchor); ok {
		return start, end, true
	}
	return ix.Locate(from.area)
}

// anchorAt builds the anchor of the match [start, end)
func (ix *Index) anchorAt(start, end int) anchor {
	for k := start; k < end; k++ {
		o := ix.owner[k]
		if o < 0 {
			continue
		}
		e := ix.entities[o]
		return anchor{
			text:   e.Text(),
			area:   e.Area(),
			offset: ix.pos[k],
			lead:   k - start,
			length: end - start,
			ok:     true,
		}
	}
	return anchor{}
}

// resolve maps an anchor to offsets in this index. The anchor entity is the
// entity with the same text whose area overlaps the anchored one best.
func (ix *Index) resolve(a anchor) (start, end int, ok bool) {
	if !a.ok {
		return 0, 0, false
	}
	best, bestScore := -1, anchorOverlap
	for i, e := range ix.entities {
		if e.Text() != a.text {
			continue
		}
		if score := e.Area().IoU(a.area); score >= bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	start = ix.first[best] + a.offset - a.lead
	end = start + a.length
	if start < 0 || end > len(ix.runes) {
		return 0, 0, false
	}
	return start, end, true
}

// isIncremental reports whether q extends the search that produced from
func isIncremental(q Query, from *Cursor) bool {
	if from.id != q.ID || from.needle == "" {
		return false
	}
	return len(q.Needle) > len(from.needle) && strings.HasPrefix(q.Needle, from.needle)
}

// prepareNeedle normalizes the needle the same way page text is normalized
func prepareNeedle(needle string, cs CaseSensitivity) []rune {
	runes := []rune(text.CleanText(needle))
	if cs == CaseInsensitive {
		return fold(runes).runes
	}
	return runes
}

func matchAt(hay, needle []rune, i int) bool {
	for j, r := range needle {
		if hay[i+j] != r {
			return false
		}
	}
	return true
}
