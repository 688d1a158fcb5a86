package textpage

import (
	"github.com/tsawler/textpage/model"
)

// Inclusion decides whether an entity counts as inside a query region.
type Inclusion int

const (
	// AnyPixel includes an entity when any part of it overlaps the region
	AnyPixel Inclusion = iota
	// CentralPixel includes an entity when its center lies in the region
	CentralPixel
)

// String returns the string representation of the inclusion policy
func (i Inclusion) String() string {
	switch i {
	case AnyPixel:
		return "any-pixel"
	case CentralPixel:
		return "central-pixel"
	default:
		return "unknown"
	}
}

type regionKind int

const (
	regionNone regionKind = iota
	regionEmpty
	regionArea
)

// Region restricts text extraction to part of a page. It is one of three
// cases: no region at all (the whole page), an explicitly empty region
// (nothing), or an area. The zero value is NoRegion.
type Region struct {
	kind regionKind
	area model.RegularAreaRect
}

// NoRegion selects the whole page.
var NoRegion = Region{}

// EmptyRegion returns a region that selects nothing.
func EmptyRegion() Region {
	return Region{kind: regionEmpty}
}

// InRect returns a region covering r.
func InRect(r model.NormalizedRect) Region {
	return Region{kind: regionArea, area: model.RegularAreaRect{r}}
}

// InArea returns a region covering every rect of a.
func InArea(a model.RegularAreaRect) Region {
	return Region{kind: regionArea, area: a.Clone()}
}

// IsWholePage reports whether the region selects the whole page.
func (r Region) IsWholePage() bool {
	return r.kind == regionNone
}

// IsEmpty reports whether the region can select nothing: explicitly empty,
// or an area made only of null rects.
func (r Region) IsEmpty() bool {
	switch r.kind {
	case regionEmpty:
		return true
	case regionArea:
		return r.area.IsNull()
	default:
		return false
	}
}

// Area returns a copy of the region's rects, nil for NoRegion and EmptyRegion.
func (r Region) Area() model.RegularAreaRect {
	return r.area.Clone()
}

// includes applies the inclusion policy to an entity area
func (r Region) includes(area model.NormalizedRect, inclusion Inclusion) bool {
	switch r.kind {
	case regionNone:
		return true
	case regionEmpty:
		return false
	}
	if inclusion == CentralPixel {
		return r.area.ContainsCenter(area)
	}
	return r.area.OverlapsAny(area)
}
