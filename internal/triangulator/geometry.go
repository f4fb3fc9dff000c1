package triangulator

import "math"

// epsilon bounds the numerical slop tolerated when comparing coordinates
// derived from intersections and interpolation; it is small relative to the
// coordinate-converter grid's own precision but large enough to swallow
// fp64 rounding from repeated interpolation.
const epsilon = 1e-9

// Point is a plain double-precision coordinate pair, independent of the
// root package's Point so this package stays import-free of it.
type Point struct {
	X, Y float64
}

func sub(a, b Point) Point { return Point{a.X - b.X, a.Y - b.Y} }

func cross(a, b Point) float64 { return a.X*b.Y - a.Y*b.X }

func lerp(a, b Point, t float64) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

func nearlyEqual(a, b float64) bool { return math.Abs(a-b) < epsilon }

// segmentIntersect finds the interior crossing point of segments p0p1 and
// p2p3, if one exists strictly inside both segments. t and s are the
// crossing's parametric position along each segment, in (0,1).
func segmentIntersect(p0, p1, p2, p3 Point) (pt Point, t, s float64, ok bool) {
	d1 := sub(p1, p0)
	d2 := sub(p3, p2)
	denom := cross(d1, d2)
	if math.Abs(denom) < epsilon {
		return Point{}, 0, 0, false
	}
	diff := sub(p2, p0)
	t = cross(diff, d2) / denom
	s = cross(diff, d1) / denom
	if t <= epsilon || t >= 1-epsilon || s <= epsilon || s >= 1-epsilon {
		return Point{}, 0, 0, false
	}
	return lerp(p0, p1, t), t, s, true
}
