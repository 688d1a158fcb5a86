// Package text provides the text entities a page is reconstructed from.
//
// A page-format parser reports raw [Fragment] values: decoded text plus a
// normalized bounding box, in arbitrary order. [Normalize] cleans them into
// [Entity] values, dropping fragments that cannot be repaired:
//
//	entities, rejected := text.Normalize(fragments)
//
// Each entity is immutable. Merging character entities into words with
// [Join] produces a new entity that remembers the rect of every glyph, so
// later stages can map any rune back to its position on the page.
//
// # Granularity
//
// Sources differ in how much of the text one fragment carries:
//
//   - Character - one glyph per fragment (best positional fidelity)
//   - Word - one word per fragment
//   - Line - whole lines or the whole page per fragment
package text
