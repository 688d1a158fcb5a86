package layout

import (
	"sort"

	"github.com/tsawler/textpage/text"
)

// charWidths returns the per-rune width of every non-space entity with a
// positive width
func charWidths(entities []text.Entity) []float64 {
	widths := make([]float64, 0, len(entities))
	for _, e := range entities {
		if e.IsSpace() || e.Area().Width() <= 0 {
			continue
		}
		widths = append(widths, e.CharWidth())
	}
	return widths
}

// averageCharWidth returns the mean character width of the page, or 0 when
// no entity carries width information
func averageCharWidth(entities []text.Entity) float64 {
	widths := charWidths(entities)
	if len(widths) == 0 {
		return 0
	}
	total := 0.0
	for _, w := range widths {
		total += w
	}
	return total / float64(len(widths))
}

// medianCharWidth returns the median character width of the page, or 0 when
// no entity carries width information
func medianCharWidth(entities []text.Entity) float64 {
	widths := charWidths(entities)
	if len(widths) == 0 {
		return 0
	}
	sort.Float64s(widths)
	mid := len(widths) / 2
	if len(widths)%2 == 0 {
		return (widths[mid-1] + widths[mid]) / 2
	}
	return widths[mid]
}
