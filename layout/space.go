package layout

import (
	"math"

	"github.com/tsawler/textpage/model"
	"github.com/tsawler/textpage/text"
)

// RemoveSpace drops single-space entities that are much wider than the
// page's median character width, and glyphs drawn twice at the same spot.
// Some sources emit such oversized separators or double-draw glyphs for fake
// bold, and both would otherwise corrupt word and line clustering.
func (r *Reconstructor) RemoveSpace(entities []text.Entity) []text.Entity {
	out := make([]text.Entity, 0, len(entities))
	median := medianCharWidth(entities)
	limit := median * r.config.OversizedSpaceRatio

	for _, e := range entities {
		if median > 0 && e.IsSpace() && e.Area().Width() > limit {
			continue
		}
		out = append(out, e)
	}
	return r.removeDuplicates(out)
}

// removeDuplicates keeps the first of every group of entities with equal
// text whose areas overlap by at least DuplicateOverlap
func (r *Reconstructor) removeDuplicates(entities []text.Entity) []text.Entity {
	if r.config.DuplicateOverlap <= 0 {
		return entities
	}

	seen := make(map[string][]model.NormalizedRect)
	out := entities[:0]
	for _, e := range entities {
		area := e.Area()
		if isDuplicate(seen[e.Text()], area, r.config.DuplicateOverlap) {
			continue
		}
		seen[e.Text()] = append(seen[e.Text()], area)
		out = append(out, e)
	}
	return out
}

func isDuplicate(kept []model.NormalizedRect, area model.NormalizedRect, minOverlap float64) bool {
	for _, k := range kept {
		if k.IoU(area) >= minOverlap {
			return true
		}
	}
	return false
}

// AddNecessarySpace inserts a zero-width space entity between consecutive
// entities of a line whose horizontal gap exceeds the space threshold, so
// that concatenating entity texts yields natural word spacing. Line spans
// are returned adjusted for the inserted entities. The adaptive threshold is
// derived from the entities' own character width; Run uses the width of the
// characters before word merging instead.
func (r *Reconstructor) AddNecessarySpace(entities []text.Entity, lines []LineSpan) ([]text.Entity, []LineSpan) {
	return r.addNecessarySpace(entities, lines, averageCharWidth(entities))
}

func (r *Reconstructor) addNecessarySpace(entities []text.Entity, lines []LineSpan, avgCharWidth float64) ([]text.Entity, []LineSpan) {
	threshold := r.spaceThreshold(avgCharWidth)

	out := make([]text.Entity, 0, len(entities)+len(entities)/2)
	outLines := make([]LineSpan, 0, len(lines))

	for _, line := range lines {
		start := len(out)
		for i := line.Start; i < line.End; i++ {
			cur := entities[i]
			if i > line.Start {
				prev := entities[i-1]
				if needsSpace(prev, cur, threshold) {
					out = append(out, spaceBetween(prev, cur))
				}
			}
			out = append(out, cur)
		}
		outLines = append(outLines, LineSpan{Start: start, End: len(out)})
	}

	return out, outLines
}

// spaceThreshold returns the gap above which a space is inserted
func (r *Reconstructor) spaceThreshold(avg float64) float64 {
	if r.config.SpaceGap > 0 {
		return r.config.SpaceGap
	}
	if avg <= 0 {
		return math.Inf(1)
	}
	return avg * r.config.SpaceGapRatio
}

func needsSpace(prev, cur text.Entity, threshold float64) bool {
	if prev.EndsWithSpace() || cur.StartsWithSpace() {
		return false
	}
	return cur.Area().Left-prev.Area().Right > threshold
}

// spaceBetween builds a zero-width space entity centered in the gap between
// prev and cur, spanning both entities vertically
func spaceBetween(prev, cur text.Entity) text.Entity {
	a, b := prev.Area(), cur.Area()
	x := (a.Right + b.Left) / 2
	return text.NewEntity(" ", model.NormalizedRect{
		Left:   x,
		Top:    math.Min(a.Top, b.Top),
		Right:  x,
		Bottom: math.Max(a.Bottom, b.Bottom),
	})
}
