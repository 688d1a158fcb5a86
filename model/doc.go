// Package model provides the geometric primitives shared by every stage of
// text page reconstruction.
//
// All coordinates are normalized to the unit page square, with the origin at
// the top-left corner and Y growing downward.
//
// # Geometry
//
//   - [NormalizedRect] - bounding box with union, intersection, overlap and
//     transform operations
//   - [RegularAreaRect] - ordered list of rects forming one selection region,
//     typically one rect per text line
//   - [Point] - 2D point with distance calculation
//
// # Inclusion Tests
//
// Two predicates decide whether a rect counts as inside a query region:
//
//   - [NormalizedRect.OverlapsAny] - any pixel of the rect is inside
//   - [NormalizedRect.ContainsCenter] - the central pixel of the rect is inside
//
// # Transforms
//
// Transforms use [f64.Aff3] from golang.org/x/image/math/f64 in row-major
// order with an implicit bottom row of [0 0 1]:
//
//	rotated := rect.Transform(model.RotatePage(1))
//	moved := rect.Transform(model.Concat(model.Scale(0.5, 0.5), model.Translate(0.25, 0.25)))
//
// Every operation returns a new value and leaves its receiver unchanged.
package model
