package fillpath

// maxFlattenDepth bounds the recursive Bezier subdivision in Flatten so a
// pathological (near-cusp, or exactly straight) curve can't recurse forever
// chasing a tolerance it will never reach exactly.
const maxFlattenDepth = 24

// TessellatedPath is a Path's curves reduced to straight-line contours,
// the input SubPath's root ultimately consumes (§3, §4.9).
type TessellatedPath struct {
	contours []Contour
	weights  []int
	bounds   BoundingBox
}

// Bounds returns the tessellated path's bounding box.
func (tp *TessellatedPath) Bounds() BoundingBox { return tp.bounds }

// Contours returns the closed polyline contours.
func (tp *TessellatedPath) Contours() []Contour { return tp.contours }

// Weights returns each contour's winding weight, parallel to Contours: a
// caller-supplied MoveToWithWinding value, or the shoelace-derived sign of
// the contour's authored point order if none was given (§3, §4.9).
func (tp *TessellatedPath) Weights() []int { return tp.weights }

// Flatten reduces p's curves into straight-line contours accurate to within
// tolerance (the maximum deviation, in p's own coordinate units, between a
// curve and its polyline approximation). It returns ErrEmptyPath if p has no
// elements and ErrNoCurrentPoint if a drawing command appears before any
// MoveTo.
func (p *Path) Flatten(tolerance float64) (*TessellatedPath, error) {
	if len(p.elements) == 0 {
		return nil, ErrEmptyPath
	}
	if tolerance <= 0 {
		fail("Flatten: tolerance must be positive, got %v", tolerance)
	}

	var contours []Contour
	var weights []int
	var current Contour
	var currentPt Point
	var currentWeight int
	haveCurrent := false
	box := EmptyBoundingBox()

	flush := func() {
		if len(current) >= 2 {
			w := currentWeight
			if w == 0 {
				w = shoelaceSign(current)
			}
			contours = append(contours, current)
			weights = append(weights, w)
			for _, pt := range current {
				box = box.Union(pt.pos)
			}
		}
		current = nil
	}

	for _, el := range p.elements {
		switch el.Kind {
		case MoveTo:
			flush()
			current = append(current, subContourPoint{pos: el.To})
			currentPt = el.To
			currentWeight = el.Weight
			haveCurrent = true
		case LineTo:
			if !haveCurrent {
				return nil, ErrNoCurrentPoint
			}
			current = append(current, subContourPoint{pos: el.To})
			currentPt = el.To
		case QuadTo:
			if !haveCurrent {
				return nil, ErrNoCurrentPoint
			}
			flattenQuad(currentPt, el.Control1, el.To, tolerance, 0, &current)
			currentPt = el.To
		case CubicTo:
			if !haveCurrent {
				return nil, ErrNoCurrentPoint
			}
			flattenCubic(currentPt, el.Control1, el.Control2, el.To, tolerance, 0, &current)
			currentPt = el.To
		case Close:
			if !haveCurrent {
				return nil, ErrNoCurrentPoint
			}
			haveCurrent = false
		default:
			fail("Flatten: unknown path element kind %d", el.Kind)
		}
	}
	flush()

	if len(contours) == 0 {
		return nil, ErrDegenerateBounds
	}
	return &TessellatedPath{contours: contours, weights: weights, bounds: box}, nil
}

// shoelaceSign returns +1 if c winds counter-clockwise, -1 if clockwise, by
// the sign of its signed area; a degenerate (zero-area) contour defaults to
// +1, matching a CCW-authored subpath's default winding contribution.
func shoelaceSign(c Contour) int {
	var sum float64
	n := len(c)
	for i := 0; i < n; i++ {
		a := c[i].pos
		b := c[(i+1)%n].pos
		sum += a.X*b.Y - b.X*a.Y
	}
	if sum < 0 {
		return -1
	}
	return 1
}

// quadFlatEnough reports whether a quadratic control point's deviation from
// the chord p0-p2 is within tolerance.
func quadFlatEnough(p0, c, p2 Point, tolerance float64) bool {
	chord := p2.Sub(p0)
	d := chord.Cross(c.Sub(p0))
	length := chord.Length()
	if length == 0 {
		return c.Sub(p0).Length() < tolerance
	}
	return abs64(d)/length < tolerance
}

func flattenQuad(p0, c, p2 Point, tolerance float64, depth int, out *Contour) {
	if depth >= maxFlattenDepth || quadFlatEnough(p0, c, p2, tolerance) {
		*out = append(*out, subContourPoint{pos: p2})
		return
	}
	p01 := p0.Lerp(c, 0.5)
	p12 := c.Lerp(p2, 0.5)
	mid := p01.Lerp(p12, 0.5)
	flattenQuad(p0, p01, mid, tolerance, depth+1, out)
	flattenQuad(mid, p12, p2, tolerance, depth+1, out)
}

func cubicFlatEnough(p0, c1, c2, p3 Point, tolerance float64) bool {
	chord := p3.Sub(p0)
	length := chord.Length()
	if length == 0 {
		return c1.Sub(p0).Length() < tolerance && c2.Sub(p3).Length() < tolerance
	}
	d1 := abs64(chord.Cross(c1.Sub(p0))) / length
	d2 := abs64(chord.Cross(c2.Sub(p0))) / length
	return d1 < tolerance && d2 < tolerance
}

func flattenCubic(p0, c1, c2, p3 Point, tolerance float64, depth int, out *Contour) {
	if depth >= maxFlattenDepth || cubicFlatEnough(p0, c1, c2, p3, tolerance) {
		*out = append(*out, subContourPoint{pos: p3})
		return
	}
	p01 := p0.Lerp(c1, 0.5)
	p12 := c1.Lerp(c2, 0.5)
	p23 := c2.Lerp(p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	flattenCubic(p0, p01, p012, mid, tolerance, depth+1, out)
	flattenCubic(mid, p123, p23, p3, tolerance, depth+1, out)
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
