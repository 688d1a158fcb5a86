package layout

import (
	"math"
	"sort"

	"github.com/tsawler/textpage/model"
	"github.com/tsawler/textpage/text"
)

// CorrectTextOrder reorders entities reported in drawing order into
// approximate reading order without changing membership. Two entities that
// share a line are ordered by their left edge, otherwise by their vertical
// center.
func (r *Reconstructor) CorrectTextOrder(entities []text.Entity) []text.Entity {
	out := make([]text.Entity, len(entities))
	copy(out, entities)

	sort.SliceStable(out, func(i, j int) bool {
		return r.readsBefore(out[i].Area(), out[j].Area())
	})
	return out
}

// readsBefore is the line-aware reading-order comparator
func (r *Reconstructor) readsBefore(a, b model.NormalizedRect) bool {
	if a.VerticalOverlap(b) >= r.config.MinVerticalOverlap {
		return a.Left < b.Left
	}
	return a.Center().Y < b.Center().Y
}

// lineGroup is a line under construction
type lineGroup struct {
	band    model.NormalizedRect
	members []text.Entity
}

// accepts reports whether an entity belongs to the line: its vertical center
// lies within the line's band, or it overlaps the band enough
func (g *lineGroup) accepts(area model.NormalizedRect, minOverlap float64) bool {
	cy := area.Center().Y
	if cy >= g.band.Top && cy <= g.band.Bottom {
		return true
	}
	return g.band.VerticalOverlap(area) >= minOverlap
}

func (g *lineGroup) add(e text.Entity) {
	area := e.Area()
	g.band.Top = math.Min(g.band.Top, area.Top)
	g.band.Bottom = math.Max(g.band.Bottom, area.Bottom)
	g.band.Left = math.Min(g.band.Left, area.Left)
	g.band.Right = math.Max(g.band.Right, area.Right)
	g.members = append(g.members, e)
}

// MakeAndSortLines clusters entities into lines and produces the final
// reading order. Entities are scanned sorted by their top edge and each
// joins the most recently started line whose vertical band accepts it,
// growing that band; otherwise it starts a new line. Lines are sorted top to
// bottom (ties by the left edge of their first entity) and entities within a
// line left to right.
func (r *Reconstructor) MakeAndSortLines(entities []text.Entity) ([]text.Entity, []LineSpan) {
	if len(entities) == 0 {
		return nil, nil
	}

	sorted := make([]text.Entity, len(entities))
	copy(sorted, entities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Area().Top < sorted[j].Area().Top
	})

	var groups []*lineGroup
	for _, e := range sorted {
		var target *lineGroup
		// Recent lines are the likeliest match
		for k := len(groups) - 1; k >= 0; k-- {
			if groups[k].accepts(e.Area(), r.config.MinVerticalOverlap) {
				target = groups[k]
				break
			}
		}
		if target == nil {
			target = &lineGroup{band: e.Area()}
			groups = append(groups, target)
		}
		target.add(e)
	}

	for _, g := range groups {
		sort.SliceStable(g.members, func(i, j int) bool {
			return g.members[i].Area().Left < g.members[j].Area().Left
		})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.band.Top != b.band.Top {
			return a.band.Top < b.band.Top
		}
		return a.members[0].Area().Left < b.members[0].Area().Left
	})

	out := make([]text.Entity, 0, len(entities))
	lines := make([]LineSpan, 0, len(groups))
	for _, g := range groups {
		start := len(out)
		out = append(out, g.members...)
		lines = append(lines, LineSpan{Start: start, End: len(out)})
	}
	return out, lines
}
