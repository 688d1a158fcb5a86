package textpage

import (
	"github.com/tsawler/textpage/model"
)

// AnchorKind tells how an Anchor is expressed
type AnchorKind int

const (
	// OffsetAnchor is a rune offset in the page's flattened text
	OffsetAnchor AnchorKind = iota
	// PointAnchor is a position on the page
	PointAnchor
)

// Anchor is one end of a selection
type Anchor struct {
	Kind   AnchorKind
	Offset int
	Point  model.Point
}

// AtOffset returns an anchor at rune offset i of the flattened text
func AtOffset(i int) Anchor {
	return Anchor{Kind: OffsetAnchor, Offset: i}
}

// AtPoint returns an anchor at page position p
func AtPoint(p model.Point) Anchor {
	return Anchor{Kind: PointAnchor, Point: p}
}

// Selection is a text selection made by the caller, for example a mouse
// drag or a keyboard range. The page only needs its two anchors.
type Selection interface {
	Start() Anchor
	End() Anchor
}

// Range is a Selection between two anchors. The anchors may come in either
// order and may mix kinds.
type Range struct {
	From Anchor
	To   Anchor
}

// Start returns the first anchor of the range
func (r Range) Start() Anchor {
	return r.From
}

// End returns the second anchor of the range
func (r Range) End() Anchor {
	return r.To
}
