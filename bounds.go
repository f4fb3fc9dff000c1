package fillpath

import "math"

// BoundingBox is an axis-aligned double-precision rectangle, used for both
// SubPath bounds and Subset bounds (§3: "a bounding box (fp64 and fp32)").
type BoundingBox struct {
	Min, Max Point
}

// EmptyBoundingBox returns a bounding box that contains no points; the first
// call to Union establishes its extent.
func EmptyBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Pt(math.Inf(1), math.Inf(1)),
		Max: Pt(math.Inf(-1), math.Inf(-1)),
	}
}

// BoxFromPoint returns the degenerate bounding box containing exactly p.
func BoxFromPoint(p Point) BoundingBox {
	return BoundingBox{Min: p, Max: p}
}

// IsEmpty reports whether the box contains no points.
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Width returns the box's extent along x.
func (b BoundingBox) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the box's extent along y.
func (b BoundingBox) Height() float64 { return b.Max.Y - b.Min.Y }

// Union returns the smallest box containing both b and p.
func (b BoundingBox) Union(p Point) BoundingBox {
	return BoundingBox{
		Min: Pt(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y)),
		Max: Pt(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y)),
	}
}

// UnionBox returns the smallest box containing both b and o.
func (b BoundingBox) UnionBox(o BoundingBox) BoundingBox {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return BoundingBox{
		Min: Pt(math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y)),
		Max: Pt(math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y)),
	}
}

// Contains reports whether p lies within the closed box.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Inflate returns a box expanded by d on every side.
func (b BoundingBox) Inflate(d float64) BoundingBox {
	return BoundingBox{
		Min: Pt(b.Min.X-d, b.Min.Y-d),
		Max: Pt(b.Max.X+d, b.Max.Y+d),
	}
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Point {
	return Pt(0.5*(b.Min.X+b.Max.X), 0.5*(b.Min.Y+b.Max.Y))
}

// AsRectangle returns the box's four corners as a closed CCW contour
// (min, (max.X,min.Y), max, (min.X,max.Y)) — the "four-segment rectangular
// bounding path" §3 attaches to every subset tree node.
func (b BoundingBox) AsRectangle() [4]Point {
	return [4]Point{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Max.Y},
	}
}

// BoundsF32 is the single-precision mirror of BoundingBox kept alongside the
// fp64 box on every realized subset node, so a renderer's hot culling path
// need not touch fp64 arithmetic.
type BoundsF32 struct {
	Min, Max [2]float32
}

// ToF32 narrows a BoundingBox to single precision.
func (b BoundingBox) ToF32() BoundsF32 {
	return BoundsF32{
		Min: [2]float32{float32(b.Min.X), float32(b.Min.Y)},
		Max: [2]float32{float32(b.Max.X), float32(b.Max.Y)},
	}
}
