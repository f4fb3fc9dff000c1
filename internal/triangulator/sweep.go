package triangulator

import "sort"

// edge is one directed atomic segment of the arrangement, after all
// pairwise intersections have been discovered and cut in. Its direction is
// inherited from whichever original contour edge produced it, which is what
// gives sign(edge) (§4.8) a stable meaning.
type edge struct {
	a, b     Point
	aID, bID VertexID
}

func (e edge) minX() float64 { return min(e.a.X, e.b.X) }
func (e edge) maxX() float64 { return max(e.a.X, e.b.X) }

// sign is +1 if the edge runs rightward (its end sits at a greater X than
// its start), -1 if it runs leftward, matching §4.8's sign(edge) convention.
//
// The sweep advances in X and orders active edges by Y, which makes it the
// mirror image of the textbook rightward-ray-in-X / sign-by-Y-direction
// crossing rule: here the ray effectively travels upward in Y, so the
// crossing sign of an edge is governed by its X-direction instead of its
// Y-direction. A horizontal edge's sign is exactly the one case this
// distinction matters for: it has no Y-direction to fall back on, yet still
// needs a stable sign to seed the cumulative winding sum at a slab's lowest
// active edge. Purely vertical edges carry no meaningful sign and are never
// selected as a slab boundary (buildEdges/sweepBands only select edges whose
// X-span covers the query X).
func (e edge) sign() int {
	if e.b.X > e.a.X {
		return 1
	}
	return -1
}

// yAt linearly interpolates the edge's Y coordinate at the given X, which
// the caller guarantees lies within the edge's X span.
func (e edge) yAt(x float64) float64 {
	if nearlyEqual(e.a.X, e.b.X) {
		return e.a.Y
	}
	t := (x - e.a.X) / (e.b.X - e.a.X)
	return e.a.Y + t*(e.b.Y-e.a.Y)
}

func buildEdges(contours []Contour) []edge {
	var edges []edge
	for _, c := range contours {
		n := len(c.Vertices)
		for i := 0; i < n; i++ {
			a := c.Vertices[i]
			b := c.Vertices[(i+1)%n]
			if samePoint(Point{a.X, a.Y}, Point{b.X, b.Y}) {
				continue
			}
			edges = append(edges, edge{
				a: Point{a.X, a.Y}, aID: a.ID,
				b: Point{b.X, b.Y}, bID: b.ID,
			})
		}
	}
	return edges
}

// splitEdges discovers every pairwise crossing among edges and cuts each
// crossing edge into atomic sub-edges at that point, minting a vertex id for
// each new crossing via combine. The resulting edge set has no interior
// crossings left: every pair either shares an endpoint or is disjoint.
func splitEdges(edges []edge, combine func(x, y float64, data [4]VertexID, weight [4]float64) VertexID) []edge {
	type splitPoint struct {
		t   float64
		pos Point
		id  VertexID
	}
	splits := make(map[int][]splitPoint, len(edges))
	crossingID := make(map[[2]int]VertexID)
	crossingSeen := make(map[[2]int]bool)

	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			ei, ej := edges[i], edges[j]
			if ei.aID == ej.aID || ei.aID == ej.bID || ei.bID == ej.aID || ei.bID == ej.bID {
				continue
			}
			pt, t, s, ok := segmentIntersect(ei.a, ei.b, ej.a, ej.b)
			if !ok {
				continue
			}
			key := [2]int{i, j}
			id, ok2 := crossingID[key]
			if !ok2 && !crossingSeen[key] {
				weight := [4]float64{(1 - t) / 2, t / 2, (1 - s) / 2, s / 2}
				data := [4]VertexID{ei.aID, ei.bID, ej.aID, ej.bID}
				id = combine(pt.X, pt.Y, data, weight)
				crossingID[key] = id
				crossingSeen[key] = true
			}
			if id == NullVertexID {
				continue
			}
			splits[i] = append(splits[i], splitPoint{t: t, pos: pt, id: id})
			splits[j] = append(splits[j], splitPoint{t: s, pos: pt, id: id})
		}
	}

	var out []edge
	for i, e := range edges {
		pts := splits[i]
		if len(pts) == 0 {
			out = append(out, e)
			continue
		}
		sort.Slice(pts, func(a, b int) bool { return pts[a].t < pts[b].t })
		prevPos, prevID := e.a, e.aID
		for _, sp := range pts {
			out = append(out, edge{a: prevPos, aID: prevID, b: sp.pos, bID: sp.id})
			prevPos, prevID = sp.pos, sp.id
		}
		out = append(out, edge{a: prevPos, aID: prevID, b: e.b, bID: e.bID})
	}
	return out
}

// band is one trapezoid of the sweep decomposition: a maximal X-range over
// which the same pair of edges bounds a region of constant winding number.
type band struct {
	xLeft, xRight      float64
	lowerIdx, upperIdx int
	winding            int
}

// sweepBands runs the vertical-slab sweep described in §4.8: slice the
// arrangement at every vertex X coordinate, and within each slice sort the
// spanning edges by Y to derive each gap's winding number as a running sum
// of edge signs. Adjacent slabs bounded by the same edge pair are merged
// into a single band.
func sweepBands(edges []edge) []band {
	xsSet := make(map[float64]struct{})
	for _, e := range edges {
		xsSet[e.a.X] = struct{}{}
		xsSet[e.b.X] = struct{}{}
	}
	xs := make([]float64, 0, len(xsSet))
	for x := range xsSet {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	xs = dedupeSorted(xs)
	if len(xs) < 2 {
		return nil
	}

	type activeEdge struct {
		idx int
		y   float64
		sgn int
	}

	var out []band
	openBands := make(map[[2]int]*band)

	for j := 0; j < len(xs)-1; j++ {
		xLeft, xRight := xs[j], xs[j+1]
		xmid := (xLeft + xRight) / 2

		var active []activeEdge
		for idx, e := range edges {
			if e.minX() < xmid-epsilon && e.maxX() > xmid+epsilon {
				active = append(active, activeEdge{idx: idx, y: e.yAt(xmid), sgn: e.sign()})
			}
		}
		sort.Slice(active, func(a, b int) bool { return active[a].y < active[b].y })

		seen := make(map[[2]int]bool, len(active))
		cum := 0
		for k := 0; k < len(active)-1; k++ {
			cum += active[k].sgn
			key := [2]int{active[k].idx, active[k+1].idx}
			seen[key] = true
			if b, ok := openBands[key]; ok && nearlyEqual(b.xRight, xLeft) {
				b.xRight = xRight
				continue
			}
			if b, ok := openBands[key]; ok {
				out = append(out, *b)
				delete(openBands, key)
			}
			openBands[key] = &band{xLeft: xLeft, xRight: xRight, lowerIdx: active[k].idx, upperIdx: active[k+1].idx, winding: cum}
		}
		for key, b := range openBands {
			if !seen[key] {
				out = append(out, *b)
				delete(openBands, key)
			}
		}
	}
	for _, b := range openBands {
		out = append(out, *b)
	}
	return out
}

func dedupeSorted(xs []float64) []float64 {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if !nearlyEqual(x, out[len(out)-1]) {
			out = append(out, x)
		}
	}
	return out
}
