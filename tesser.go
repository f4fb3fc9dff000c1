package fillpath

import "math"

// TesserEdge is one boundary edge discovered while triangulating, together
// with the winding numbers on both sides of it, per §3's "(start, end, next,
// draw_edge, draw_bevel)" edge-list record. Next indexes the following edge
// around the same monotone-region boundary loop within the owning Tesser's
// edge list; the last edge of a loop points back to the first, so a one-edge
// loop points to itself. DrawEdge marks a real silhouette worth drawing as
// anti-aliasing fuzz, as opposed to an internal cut between two regions of
// the same winding number or an edge that
// only traces the SubPath's own bounding rectangle. DrawBevel marks a joint
// between this edge and Next that needs a bevel triangle to cover the wedge
// between their offset fuzz quads.
type TesserEdge struct {
	A, B                          int32
	WindingInside, WindingOutside int
	Next                          int
	DrawEdge                      bool
	DrawBevel                     bool
}

// Tesser drives a Triangulator over a PointHoard's discretized contours,
// applying the non-degeneracy checks and winding-offset bookkeeping of
// §4.4, and collecting the resulting triangles bucketed by winding number
// plus the silhouette edges emitted alongside them.
type Tesser struct {
	hoard        *PointHoard
	triangulator Triangulator

	windingOffset int
	nextFudge     int

	triangles map[int][]int32
	edges     []TesserEdge
}

// NewTesser creates a Tesser bound to hoard, using t to perform the actual
// triangulation.
func NewTesser(hoard *PointHoard, t Triangulator) *Tesser {
	if t == nil {
		t = NewBuiltinTriangulator()
	}
	return &Tesser{
		hoard:         hoard,
		triangulator:  t,
		windingOffset: int(math.Round(hoard.WindingOffset)),
		triangles:     make(map[int][]int32),
	}
}

// Triangles returns the accepted triangles for a given (already
// offset-adjusted) winding number, as flattened index triples into the
// PointHoard's point table.
func (te *Tesser) Triangles(winding int) []int32 { return te.triangles[winding] }

// Windings returns every winding number that has at least one triangle.
func (te *Tesser) Windings() []int {
	out := make([]int, 0, len(te.triangles))
	for w := range te.triangles {
		out = append(out, w)
	}
	return out
}

// Edges returns the silhouette-candidate edges collected during Run.
func (te *Tesser) Edges() []TesserEdge { return te.edges }

// Run triangulates hoard's contours. It returns false if the triangulator
// itself refused to run (too little input); a false return leaves Tesser's
// triangle and edge sets exactly as they were before the call.
func (te *Tesser) Run(contours []HoardContour) bool {
	tessContours := make([]TessContour, len(contours))
	for i, c := range contours {
		verts := make([]TessVertexInput, len(c))
		for j, hp := range c {
			pos := te.hoard.Apply(hp.index, te.nextFudge)
			te.nextFudge++
			verts[j] = TessVertexInput{X: pos.X, Y: pos.Y, ID: VertexID(hp.index)}
		}
		tessContours[i] = TessContour{Vertices: verts}
	}

	var currentWinding int
	var pending []VertexID

	flush := func() {
		if len(pending) != 3 {
			pending = pending[:0]
			return
		}
		a, b, c := pending[0], pending[1], pending[2]
		pending = pending[:0]
		if a == NullVertexID || b == NullVertexID || c == NullVertexID {
			return
		}
		ia, ib, ic := te.hoard.Integers()[a], te.hoard.Integers()[b], te.hoard.Integers()[c]
		if !triangleWellFormed(ia, ib, ic) {
			return
		}
		te.triangles[currentWinding] = append(te.triangles[currentWinding], int32(a), int32(b), int32(c))
	}

	cb := Callbacks{
		Begin: func(kind BeginType, winding int) {
			currentWinding = winding + te.windingOffset
			pending = pending[:0]
		},
		Vertex: func(id VertexID) {
			if id == NullVertexID {
				pending = pending[:0]
				return
			}
			pending = append(pending, id)
			if len(pending) == 3 {
				flush()
			}
		},
		Combine: func(x, y float64, data [4]VertexID, weight [4]float64) VertexID {
			var px, py, wsum float64
			for i, id := range data {
				if id == NullVertexID || weight[i] == 0 {
					continue
				}
				p := te.hoard.Apply(int(id), 0)
				px += p.X * weight[i]
				py += p.Y * weight[i]
				wsum += weight[i]
			}
			if wsum == 0 {
				return NullVertexID
			}
			idx := te.hoard.FetchUndiscretized(Pt(px/wsum, py/wsum))
			return VertexID(idx)
		},
		Boundary: func(x, y float64, step int, isMaxX, isMaxY bool) VertexID {
			return VertexID(te.hoard.FetchCorner(isMaxX, isMaxY))
		},
		FillRule: func(winding int) bool { return true },
		EmitMonotone: func(winding int, ids []VertexID, neighborWinding []int) {
			w := winding + te.windingOffset
			n := len(ids)

			type rawEdge struct {
				a, b     int32
				outside  int
				drawEdge bool
			}
			raw := make([]rawEdge, 0, n)
			for i := 0; i < n; i++ {
				a, b := ids[i], ids[(i+1)%n]
				if a == NullVertexID || b == NullVertexID {
					continue
				}
				outside := neighborWinding[i] + te.windingOffset
				sameWinding := outside == w
				hugs := edgeHugsBoundary(te.hoard.Integers()[a], te.hoard.Integers()[b])
				raw = append(raw, rawEdge{
					a: int32(a), b: int32(b),
					outside:  outside,
					drawEdge: !hugs && !sameWinding,
				})
			}
			if len(raw) == 0 {
				return
			}

			base := len(te.edges)
			for i, re := range raw {
				te.edges = append(te.edges, TesserEdge{
					A: re.a, B: re.b,
					WindingInside: w, WindingOutside: re.outside,
					Next:     base + (i+1)%len(raw),
					DrawEdge: re.drawEdge,
				})
			}
			// A joint needs a bevel triangle whenever either edge meeting
			// there is itself drawn as a silhouette (§4.4's emitMonotone).
			for i := range raw {
				cur := &te.edges[base+i]
				nxt := &te.edges[cur.Next]
				if cur.DrawEdge || nxt.DrawEdge {
					cur.DrawBevel = true
				}
			}
		},
	}

	return te.triangulator.Run(tessContours, te.hoard.conv.Bounds(), cb)
}

// purgeEmpty drops any winding component whose triangle list is empty
// (§4.5 step 3). Run only ever creates a component by appending a triangle
// to it, so this is a defensive no-op today; it exists so a future triangle-
// removal path (e.g. post-hoc degeneracy re-checks) can't silently leave a
// hollow component behind.
func (te *Tesser) purgeEmpty() {
	for w, tris := range te.triangles {
		if len(tris) == 0 {
			delete(te.triangles, w)
		}
	}
}

// synthesizeFallback adds two triangles spanning the full bounding rectangle
// under winding = windingOffset, so a SubPath whose triangulation produced
// no surviving triangles still yields drawable geometry under the
// complement-nonzero rule instead of a completely blank result (§4.5 step
// 4, §7's "empty-component fallback").
func (te *Tesser) synthesizeFallback() {
	tl := int32(te.hoard.FetchCorner(false, false))
	tr := int32(te.hoard.FetchCorner(true, false))
	br := int32(te.hoard.FetchCorner(true, true))
	bl := int32(te.hoard.FetchCorner(false, true))
	w := te.windingOffset
	te.triangles[w] = append(te.triangles[w], tl, tr, br, tl, br, bl)
}

// triangleWellFormed applies §4.4's non-degeneracy checks in integer grid
// space: three distinct vertices, nonzero signed area, and an altitude (with
// respect to its longest edge, the best-conditioned choice) of at least
// minHeight grid units.
func triangleWellFormed(a, b, c IVec2) bool {
	if a == b || b == c || a == c {
		return false
	}
	area2 := cross64(a, b, c)
	if area2 == 0 {
		return false
	}
	longest := math.Max(lenSq64(a, b), math.Max(lenSq64(b, c), lenSq64(c, a)))
	if longest == 0 {
		return false
	}
	altitude := math.Abs(area2) / math.Sqrt(longest)
	return altitude >= minHeight
}

func cross64(a, b, c IVec2) float64 {
	abx, aby := float64(b.X-a.X), float64(b.Y-a.Y)
	acx, acy := float64(c.X-a.X), float64(c.Y-a.Y)
	return abx*acy - aby*acx
}

func lenSq64(a, b IVec2) float64 {
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	return dx*dx + dy*dy
}
