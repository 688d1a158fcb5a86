package model

import "golang.org/x/image/math/f64"

// sameLineOverlap is the vertical overlap fraction above which Add folds a
// rect into the previous one
const sameLineOverlap = 0.5

// RegularAreaRect is an ordered list of rects forming one logical selection
// region, typically one rect per text line.
type RegularAreaRect []NormalizedRect

// Add returns the area with r appended. When r shares a line with the last
// rect the two are merged so that each line of a selection stays one rect.
func (a RegularAreaRect) Add(r NormalizedRect) RegularAreaRect {
	if len(a) > 0 {
		last := a[len(a)-1]
		if last.VerticalOverlap(r) >= sameLineOverlap {
			out := a.Clone()
			out[len(out)-1] = last.Union(r)
			return out
		}
	}
	out := make(RegularAreaRect, len(a), len(a)+1)
	copy(out, a)
	return append(out, r)
}

// Clone returns a copy that shares no storage with a
func (a RegularAreaRect) Clone() RegularAreaRect {
	if a == nil {
		return nil
	}
	out := make(RegularAreaRect, len(a))
	copy(out, a)
	return out
}

// IsNull returns true if the area has no rect with a positive area
func (a RegularAreaRect) IsNull() bool {
	for _, r := range a {
		if !r.IsNull() {
			return false
		}
	}
	return true
}

// BoundingRect returns the smallest rect containing every rect of the area
func (a RegularAreaRect) BoundingRect() NormalizedRect {
	if len(a) == 0 {
		return NormalizedRect{}
	}
	out := a[0]
	for _, r := range a[1:] {
		out = out.Union(r)
	}
	return out
}

// OverlapsAny reports whether any pixel of r lies inside one of the area's rects
func (a RegularAreaRect) OverlapsAny(r NormalizedRect) bool {
	for _, ar := range a {
		if !ar.IsNull() && ar.OverlapsAny(r) {
			return true
		}
	}
	return false
}

// ContainsCenter reports whether the center of r lies inside one of the area's rects
func (a RegularAreaRect) ContainsCenter(r NormalizedRect) bool {
	for _, ar := range a {
		if !ar.IsNull() && ar.ContainsCenter(r) {
			return true
		}
	}
	return false
}

// Transform applies m to every rect and returns the new area
func (a RegularAreaRect) Transform(m f64.Aff3) RegularAreaRect {
	if a == nil {
		return nil
	}
	out := make(RegularAreaRect, len(a))
	for i, r := range a {
		out[i] = r.Transform(m)
	}
	return out
}
