package fillpath

import "math"

// Point is a 2-D double-precision point or displacement vector. Unlike the
// wider 2-D graphics API this engine was distilled from, fillpath has no need
// to distinguish positions from directions: every value in the pipeline is a
// coordinate pair carried through affine remaps, so one type serves both.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2-D cross product (the z-component of the 3-D cross
// product with z=0). Its sign indicates orientation: positive when q is
// counter-clockwise from p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Lerp performs linear interpolation between p and q; t=0 returns p, t=1
// returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Approx reports whether p and q are equal within epsilon on each axis.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

// IVec2 is an integer point on the discretization grid, always within
// [0, 1+2^24] on each axis once produced by a CoordinateConverter.
type IVec2 struct {
	X, Y int32
}
