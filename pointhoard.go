package fillpath

// hoardPoint is one (vertex_index, flags) pair, the element type of the
// Contour output PointHoard hands to the Tesser (§3: "Contour output Path is
// a list of Contours, each a sequence of (vertex_index, flags) pairs").
type hoardPoint struct {
	index int
	flags boundaryFlags
}

// HoardContour is a simple (no repeated vertex) closed contour of hoardPoints.
type HoardContour []hoardPoint

// PointHoard is a deduplicating, discretizing point table. It owns the fp64
// input points, their parallel integer grid points, and the map used to
// coalesce points that discretize to the same grid cell (§3, §4.3).
type PointHoard struct {
	conv *CoordinateConverter

	pts   []Point
	ipts  []IVec2
	index map[IVec2]int

	// WindingOffset accumulates the winding contribution of every reduced
	// (boundary-hugging) contour discarded during contour generation.
	WindingOffset float64
}

// NewPointHoard creates an empty PointHoard bound to conv.
func NewPointHoard(conv *CoordinateConverter) *PointHoard {
	return &PointHoard{
		conv:  conv,
		index: make(map[IVec2]int),
	}
}

// Points returns the fp64 input points, indexed the same way as Integers.
func (h *PointHoard) Points() []Point { return h.pts }

// Integers returns the discretized integer points, parallel to Points.
func (h *PointHoard) Integers() []IVec2 { return h.ipts }

func (h *PointHoard) appendNew(pt Point, ipt IVec2) int {
	if len(h.pts) != len(h.ipts) {
		fail("pointhoard: pts/ipts length mismatch (%d vs %d)", len(h.pts), len(h.ipts))
	}
	idx := len(h.pts)
	h.pts = append(h.pts, pt)
	h.ipts = append(h.ipts, ipt)
	return idx
}

// snapToBoundary overrides ip's coordinates with the grid's exact extreme
// values wherever flags claims the point lies on that boundary, so every
// point claimed to be on the same edge of the SubPath's box becomes exactly
// collinear on the grid (§4.3).
func snapToBoundary(ip IVec2, flags boundaryFlags) IVec2 {
	switch {
	case flags&onMinX != 0:
		ip.X = 1
	case flags&onMaxX != 0:
		ip.X = 1 + boxDim
	}
	switch {
	case flags&onMinY != 0:
		ip.Y = 1
	case flags&onMaxY != 0:
		ip.Y = 1 + boxDim
	}
	return ip
}

// FetchDiscretized snaps pt to the integer grid, overrides it onto the exact
// boundary if flags requests it, and deduplicates via the ipt->index map.
func (h *PointHoard) FetchDiscretized(pt Point, flags boundaryFlags) int {
	if !flags.isValid() {
		fail("pointhoard: boundary flags %v set both extremes of an axis", flags)
	}
	ip := snapToBoundary(h.conv.IApply(pt), flags)
	if idx, ok := h.index[ip]; ok {
		return idx
	}
	idx := h.appendNew(pt, ip)
	h.index[ip] = idx
	return idx
}

// FetchUndiscretized adds pt as a brand new vertex without deduplication,
// used for combine-callback results that must have a unique id.
func (h *PointHoard) FetchUndiscretized(pt Point) int {
	ip := h.conv.IApply(pt)
	return h.appendNew(pt, ip)
}

// FetchCorner returns the canonical vertex for one of the box's four
// corners, deduplicated the same way as FetchDiscretized.
func (h *PointHoard) FetchCorner(isMaxX, isMaxY bool) int {
	box := h.conv.Bounds()
	x, y := box.Min.X, box.Min.Y
	flags := boundaryFlags(onMinX | onMinY)
	if isMaxX {
		x = box.Max.X
		flags = (flags &^ onMinX) | onMaxX
	}
	if isMaxY {
		y = box.Max.Y
		flags = (flags &^ onMinY) | onMaxY
	}
	return h.FetchDiscretized(Pt(x, y), flags)
}

// Apply returns the fp64 point for the i'th integer vertex, offset by ±k·δ
// per axis toward the center of the bounding box (§4.3). k should be
// incremented on every vertex delivered to the triangulator so that no two
// delivered points coincide in fp64 even when their discretized ipt is
// identical.
func (h *PointHoard) Apply(i, k int) Point {
	ip := h.ipts[i]
	base := h.conv.Unapply(ip)
	center := h.conv.Bounds().Center()
	delta := h.conv.FudgeDelta() * float64(k)

	x := base.X
	if base.X > center.X {
		x -= delta
	} else {
		x += delta
	}
	y := base.Y
	if base.Y > center.Y {
		y -= delta
	} else {
		y += delta
	}
	return Pt(x, y)
}

// GenerateContours runs the full §4.3 contour-generation pipeline over a
// SubPath's contours: discretize and dedupe, close the cycle, discard
// contours below three vertices, unloop self-intersecting contours, and
// reduce boundary-hugging contours into WindingOffset.
func (h *PointHoard) GenerateContours(contours []Contour) []HoardContour {
	var out []HoardContour
	for _, c := range contours {
		discretized := h.discretizeAndDedupe(c)
		discretized = closeCycle(discretized)
		if len(discretized) < 3 {
			continue
		}
		for _, simple := range unloop(discretized) {
			if progress, hugs := hugsBoundaryProgress(simple); hugs {
				if progress%4 != 0 {
					Logger().Warn("fillpath: reducible contour boundary progress is not a multiple of 4", "progress", progress)
					fail("pointhoard: reducible contour boundary progress %d is not a multiple of 4", progress)
				}
				h.WindingOffset += -float64(progress) / 4
				continue
			}
			if len(simple) >= 3 {
				out = append(out, simple)
			}
		}
	}
	return out
}

// discretizeAndDedupe maps every point through FetchDiscretized and drops
// consecutive duplicates introduced by snapping.
func (h *PointHoard) discretizeAndDedupe(c Contour) HoardContour {
	var out HoardContour
	for _, p := range c {
		idx := h.FetchDiscretized(p.pos, p.flags)
		if len(out) > 0 && out[len(out)-1].index == idx {
			continue
		}
		out = append(out, hoardPoint{index: idx, flags: p.flags})
	}
	return out
}

// closeCycle drops a cyclically-equal head and tail until they differ,
// closing the cycle cleanly.
func closeCycle(c HoardContour) HoardContour {
	for len(c) > 1 && c[0].index == c[len(c)-1].index {
		c = c[:len(c)-1]
	}
	return c
}

// unloop detects any cyclic sub-range that visits the same vertex twice,
// extracts it as a separate closed contour, and recurses on the remainder,
// guaranteeing every output contour is simple. This is the O(n^2) scan
// SPEC_FULL.md's open question calls out: acceptable for typical inputs,
// observable on adversarial ones, and not to be "fixed" without measurement.
func unloop(c HoardContour) []HoardContour {
	seen := make(map[int]int, len(c))
	for pos, p := range c {
		if first, ok := seen[p.index]; ok {
			loop := append(HoardContour{}, c[first:pos]...)
			rest := make(HoardContour, 0, len(c)-len(loop))
			rest = append(rest, c[:first]...)
			rest = append(rest, c[pos:]...)
			result := unloop(rest)
			if len(loop) >= 3 {
				result = append([]HoardContour{loop}, result...)
			}
			return result
		}
		seen[p.index] = pos
	}
	return []HoardContour{c}
}

// hugsBoundaryProgress reports whether every edge of c hugs the SubPath
// boundary with a nonzero, consistently-signed cyclic corner progress, and
// if so, the total signed progress (§4.3's "Reduce" step operating on
// discretized, indexed points instead of raw SubContourPoints).
func hugsBoundaryProgress(c HoardContour) (progress int, hugs bool) {
	if len(c) < 4 {
		return 0, false
	}
	total := 0
	sawNonzero := false
	for i := range c {
		a := cornerOf(c[i].flags)
		b := cornerOf(c[(i+1)%len(c)].flags)
		p := cornerProgress(a, b)
		if p == 0 {
			return 0, false
		}
		if sawNonzero && (p > 0) != (total > 0) {
			return 0, false
		}
		sawNonzero = true
		total += p
	}
	return total, sawNonzero
}
