package search

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// foldedText is a case-folded copy of a rune sequence with, for every folded
// rune, the offset of the source rune it came from. Folding may expand one
// rune into several (ß folds to ss), so the mapping is not one to one.
type foldedText struct {
	runes  []rune
	origin []int
}

// fold case-folds src rune by rune. A Caser is stateful, so each call
// creates its own.
func fold(src []rune) foldedText {
	caser := cases.Fold()
	out := foldedText{
		runes:  make([]rune, 0, len(src)),
		origin: make([]int, 0, len(src)),
	}
	for i, r := range src {
		if r < utf8.RuneSelf {
			if 'A' <= r && r <= 'Z' {
				r += 'a' - 'A'
			}
			out.runes = append(out.runes, r)
			out.origin = append(out.origin, i)
			continue
		}
		for _, fr := range caser.String(string(r)) {
			out.runes = append(out.runes, fr)
			out.origin = append(out.origin, i)
		}
	}
	return out
}

// identity returns src unfolded with a one-to-one origin map
func identity(src []rune) foldedText {
	out := foldedText{runes: src, origin: make([]int, len(src))}
	for i := range src {
		out.origin[i] = i
	}
	return out
}

// haystack returns the flattened text prepared for the given comparison
// mode. Each form is built once on first use.
func (ix *Index) haystack(cs CaseSensitivity) foldedText {
	if cs == CaseSensitive {
		ix.plainOnce.Do(func() {
			ix.plain = identity(ix.runes)
		})
		return ix.plain
	}
	ix.foldOnce.Do(func() {
		ix.folded = fold(ix.runes)
	})
	return ix.folded
}
