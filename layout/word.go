package layout

import (
	"github.com/tsawler/textpage/text"
)

// MakeWord joins character entities into words. Entities are scanned in
// their current order; an entity is appended to the word being built when
// the horizontal gap to the word stays below the adaptive word gap and the
// two share a vertical band. Space entities always end a word and are kept
// as they are. The merged entity's area is the union of its members' and it
// keeps every member's glyph rect.
func (r *Reconstructor) MakeWord(entities []text.Entity) []text.Entity {
	return r.makeWord(entities, averageCharWidth(entities))
}

func (r *Reconstructor) makeWord(entities []text.Entity, avg float64) []text.Entity {
	if len(entities) == 0 {
		return nil
	}

	maxGap := avg * r.config.WordGapRatio
	maxOverlap := avg * r.config.KerningTolerance

	out := make([]text.Entity, 0, len(entities))
	var word []text.Entity

	flush := func() {
		if len(word) > 0 {
			out = append(out, text.Join(word...))
			word = word[:0]
		}
	}

	for _, e := range entities {
		if e.IsSpace() {
			flush()
			out = append(out, e)
			continue
		}
		if len(word) > 0 && !r.continuesWord(word[len(word)-1], e, maxGap, maxOverlap) {
			flush()
		}
		word = append(word, e)
	}
	flush()

	return out
}

// continuesWord reports whether next directly follows last within a word
func (r *Reconstructor) continuesWord(last, next text.Entity, maxGap, maxOverlap float64) bool {
	a, b := last.Area(), next.Area()
	gap := b.Left - a.Right
	if gap > maxGap || gap < -maxOverlap {
		return false
	}
	return a.VerticalOverlap(b) >= r.config.MinVerticalOverlap
}
