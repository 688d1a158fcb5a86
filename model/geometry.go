package model

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Point represents a position in normalized page coordinates
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// NormalizedRect is an axis-aligned bounding box in unit page coordinates.
// The origin is the top-left corner of the page and Y grows downward, so
// Top <= Bottom for every well-formed rect.
type NormalizedRect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// NewNormalizedRect creates a rect from two opposite corners given in any order
func NewNormalizedRect(left, top, right, bottom float64) NormalizedRect {
	return NormalizedRect{
		Left:   math.Min(left, right),
		Top:    math.Min(top, bottom),
		Right:  math.Max(left, right),
		Bottom: math.Max(top, bottom),
	}
}

// PageRect returns the rect covering the whole page
func PageRect() NormalizedRect {
	return NormalizedRect{Left: 0, Top: 0, Right: 1, Bottom: 1}
}

// Width returns the horizontal extent
func (r NormalizedRect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent
func (r NormalizedRect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the center point
func (r NormalizedRect) Center() Point {
	return Point{
		X: (r.Left + r.Right) / 2,
		Y: (r.Top + r.Bottom) / 2,
	}
}

// IsNull returns true if the rect has zero or negative area
func (r NormalizedRect) IsNull() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// IsValid returns true if all bounds are finite and ordered.
// Zero-area rects are valid.
func (r NormalizedRect) IsValid() bool {
	for _, v := range [4]float64{r.Left, r.Top, r.Right, r.Bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Left <= r.Right && r.Top <= r.Bottom
}

// Clamp restricts the rect to the unit page square
func (r NormalizedRect) Clamp() NormalizedRect {
	return NormalizedRect{
		Left:   clampUnit(r.Left),
		Top:    clampUnit(r.Top),
		Right:  clampUnit(r.Right),
		Bottom: clampUnit(r.Bottom),
	}
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// ContainsPoint checks if a point lies inside the rect (edges included)
func (r NormalizedRect) ContainsPoint(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right &&
		p.Y >= r.Top && p.Y <= r.Bottom
}

// Intersects checks if the closed rects share at least one point
func (r NormalizedRect) Intersects(other NormalizedRect) bool {
	return !(r.Right < other.Left ||
		r.Left > other.Right ||
		r.Bottom < other.Top ||
		r.Top > other.Bottom)
}

// OverlapsAny reports whether any pixel of other lies inside r. Touching
// edges do not count. A zero-width or zero-height rect counts when it lies
// within r's extent along that axis.
func (r NormalizedRect) OverlapsAny(other NormalizedRect) bool {
	return overlapsOpen(r.Left, r.Right, other.Left, other.Right) &&
		overlapsOpen(r.Top, r.Bottom, other.Top, other.Bottom)
}

func overlapsOpen(a0, a1, b0, b1 float64) bool {
	if b0 == b1 {
		return b0 >= a0 && b0 <= a1
	}
	if a0 == a1 {
		return a0 >= b0 && a0 <= b1
	}
	return a0 < b1 && b0 < a1
}

// ContainsCenter reports whether the central pixel of other lies inside r
func (r NormalizedRect) ContainsCenter(other NormalizedRect) bool {
	return r.ContainsPoint(other.Center())
}

// Intersection returns the overlapping part of two rects, or the zero rect
// when they do not intersect
func (r NormalizedRect) Intersection(other NormalizedRect) NormalizedRect {
	if !r.Intersects(other) {
		return NormalizedRect{}
	}
	return NormalizedRect{
		Left:   math.Max(r.Left, other.Left),
		Top:    math.Max(r.Top, other.Top),
		Right:  math.Min(r.Right, other.Right),
		Bottom: math.Min(r.Bottom, other.Bottom),
	}
}

// Union returns the smallest rect containing both rects
func (r NormalizedRect) Union(other NormalizedRect) NormalizedRect {
	return NormalizedRect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Area returns the area of the rect
func (r NormalizedRect) Area() float64 {
	if r.IsNull() {
		return 0
	}
	return r.Width() * r.Height()
}

// IoU returns the intersection area of two rects divided by the area of
// their union. Two zero-area rects score 1 when equal and 0 otherwise.
func (r NormalizedRect) IoU(other NormalizedRect) float64 {
	inter := r.Intersection(other).Area()
	union := r.Area() + other.Area() - inter
	if union <= 0 {
		if r == other {
			return 1
		}
		return 0
	}
	return inter / union
}

// VerticalOverlap returns the shared vertical extent of two rects as a
// fraction of the shorter one's height. When either rect has zero height the
// result is 1 if its vertical position falls inside the other rect's band and
// 0 otherwise.
func (r NormalizedRect) VerticalOverlap(other NormalizedRect) float64 {
	shorter := math.Min(r.Height(), other.Height())
	if shorter <= 0 {
		if r.Height() <= 0 {
			return bandHit(r.Top, other)
		}
		return bandHit(other.Top, r)
	}
	overlap := math.Min(r.Bottom, other.Bottom) - math.Max(r.Top, other.Top)
	if overlap <= 0 {
		return 0
	}
	return overlap / shorter
}

func bandHit(y float64, band NormalizedRect) float64 {
	if y >= band.Top && y <= band.Bottom {
		return 1
	}
	return 0
}

// DistanceTo returns the distance from p to the nearest point of the rect,
// 0 when p is inside
func (r NormalizedRect) DistanceTo(p Point) float64 {
	dx := math.Max(0, math.Max(r.Left-p.X, p.X-r.Right))
	dy := math.Max(0, math.Max(r.Top-p.Y, p.Y-r.Bottom))
	return math.Sqrt(dx*dx + dy*dy)
}

// Transform applies an affine transform and returns the bounding rect of the
// transformed corners. The receiver is left unchanged.
func (r NormalizedRect) Transform(m f64.Aff3) NormalizedRect {
	corners := [4]Point{
		{r.Left, r.Top},
		{r.Right, r.Top},
		{r.Left, r.Bottom},
		{r.Right, r.Bottom},
	}
	out := NormalizedRect{
		Left:   math.Inf(1),
		Top:    math.Inf(1),
		Right:  math.Inf(-1),
		Bottom: math.Inf(-1),
	}
	for _, c := range corners {
		p := TransformPoint(m, c)
		out.Left = math.Min(out.Left, p.X)
		out.Top = math.Min(out.Top, p.Y)
		out.Right = math.Max(out.Right, p.X)
		out.Bottom = math.Max(out.Bottom, p.Y)
	}
	return out
}

// TransformPoint applies the affine transform m to p
func TransformPoint(m f64.Aff3, p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// Identity returns an identity transform
func Identity() f64.Aff3 {
	return f64.Aff3{1, 0, 0, 0, 1, 0}
}

// Translate creates a translation transform
func Translate(tx, ty float64) f64.Aff3 {
	return f64.Aff3{1, 0, tx, 0, 1, ty}
}

// Scale creates a scaling transform
func Scale(sx, sy float64) f64.Aff3 {
	return f64.Aff3{sx, 0, 0, 0, sy, 0}
}

// Rotate creates a rotation transform around the origin (angle in radians)
func Rotate(angle float64) f64.Aff3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return f64.Aff3{cos, -sin, 0, sin, cos, 0}
}

// Concat returns the transform that applies a first and then b
func Concat(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		b[0]*a[0] + b[1]*a[3],
		b[0]*a[1] + b[1]*a[4],
		b[0]*a[2] + b[1]*a[5] + b[2],
		b[3]*a[0] + b[4]*a[3],
		b[3]*a[1] + b[4]*a[4],
		b[3]*a[2] + b[4]*a[5] + b[5],
	}
}

// RotatePage returns the transform that turns normalized page coordinates
// clockwise by the given number of quarter turns. The unit square maps onto
// itself.
func RotatePage(quarterTurns int) f64.Aff3 {
	switch ((quarterTurns % 4) + 4) % 4 {
	case 1:
		return f64.Aff3{0, -1, 1, 1, 0, 0}
	case 2:
		return f64.Aff3{-1, 0, 1, 0, -1, 1}
	case 3:
		return f64.Aff3{0, 1, 0, -1, 0, 1}
	default:
		return Identity()
	}
}
