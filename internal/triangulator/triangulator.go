package triangulator

// cornerCache memoizes the vertex minted for a given (edge, x) sample so
// that two bands sharing a boundary reuse the same id instead of minting a
// duplicate coincident vertex.
type cornerCache struct {
	byEdge map[int][]cornerEntry
}

type cornerEntry struct {
	x   float64
	pos Point
	id  VertexID
}

func newCornerCache() *cornerCache {
	return &cornerCache{byEdge: make(map[int][]cornerEntry)}
}

func (c *cornerCache) get(edges []edge, idx int, x float64, combine func(x, y float64, data [4]VertexID, weight [4]float64) VertexID) (Point, VertexID) {
	e := edges[idx]
	if nearlyEqual(x, e.a.X) {
		return e.a, e.aID
	}
	if nearlyEqual(x, e.b.X) {
		return e.b, e.bID
	}
	for _, entry := range c.byEdge[idx] {
		if nearlyEqual(entry.x, x) {
			return entry.pos, entry.id
		}
	}
	t := (x - e.a.X) / (e.b.X - e.a.X)
	pos := Point{X: x, Y: e.yAt(x)}
	id := combine(pos.X, pos.Y, [4]VertexID{e.aID, e.bID, NullVertexID, NullVertexID}, [4]float64{1 - t, t, 0, 0})
	c.byEdge[idx] = append(c.byEdge[idx], cornerEntry{x: x, pos: pos, id: id})
	return pos, id
}

// Triangulator is the concrete, from-scratch planar triangulator this
// module ships: pairwise segment splitting followed by a vertical-slab
// sweep and per-band monotone triangulation (§4.8).
type Triangulator struct{}

// New returns a ready-to-use Triangulator. It carries no state between
// calls to Run.
func New() *Triangulator { return &Triangulator{} }

// Run triangulates contours, reporting triangles and monotone-region
// boundaries through cb. It returns false only when the input has fewer
// than three edges to work with. A failed Combine at a band corner drops
// that band; a failed Combine at an edge crossing leaves those two edges
// uncut.
func (t *Triangulator) Run(contours []Contour, cb Callbacks) bool {
	edges := buildEdges(contours)
	if len(edges) < 3 {
		return false
	}
	if cb.Combine != nil {
		edges = splitEdges(edges, cb.Combine)
	}
	bands := sweepBands(edges)
	cache := newCornerCache()

	for _, b := range bands {
		if cb.Combine == nil {
			continue
		}
		lowerLeftPos, lowerLeftID := cache.get(edges, b.lowerIdx, b.xLeft, cb.Combine)
		lowerRightPos, lowerRightID := cache.get(edges, b.lowerIdx, b.xRight, cb.Combine)
		upperLeftPos, upperLeftID := cache.get(edges, b.upperIdx, b.xLeft, cb.Combine)
		upperRightPos, upperRightID := cache.get(edges, b.upperIdx, b.xRight, cb.Combine)

		if hasNull(lowerLeftID, lowerRightID, upperLeftID, upperRightID) {
			continue
		}

		top := []Point{upperLeftPos, upperRightPos}
		topIDs := []VertexID{upperLeftID, upperRightID}
		bottom := []Point{lowerLeftPos, lowerRightPos}
		bottomIDs := []VertexID{lowerLeftID, lowerRightID}

		tris := triangulateMonotoneX(top, bottom, topIDs, bottomIDs)
		if len(tris) == 0 {
			continue
		}

		if cb.Begin != nil {
			cb.Begin(b.winding)
		}
		for _, tri := range tris {
			if cb.Vertex != nil {
				cb.Vertex(tri[0], tri[1], tri[2])
			}
		}

		if cb.EmitMonotone != nil {
			lowerEdge, upperEdge := edges[b.lowerIdx], edges[b.upperIdx]
			ids := []VertexID{lowerLeftID, lowerRightID, upperRightID, upperLeftID}
			neighbor := []int{
				b.winding - lowerEdge.sign(), // bottom: real contour edge
				b.winding,                    // right: synthetic slab cut
				b.winding + upperEdge.sign(), // top: real contour edge
				b.winding,                    // left: synthetic slab cut
			}
			ids, neighbor = dedupeLoop(ids, neighbor)
			if len(ids) >= 3 {
				cb.EmitMonotone(b.winding, ids, neighbor)
			}
		}
	}
	return true
}

func hasNull(ids ...VertexID) bool {
	for _, id := range ids {
		if id == NullVertexID {
			return true
		}
	}
	return false
}

// dedupeLoop drops a vertex that coincides with its predecessor (the
// degenerate case where a band collapses from a quad to a triangle),
// keeping the neighbor winding of the edge leaving the surviving vertex.
func dedupeLoop(ids []VertexID, neighbor []int) ([]VertexID, []int) {
	if len(ids) == 0 {
		return ids, neighbor
	}
	outIDs := append([]VertexID{}, ids[0])
	outNeighbor := append([]int{}, neighbor[0])
	for i := 1; i < len(ids); i++ {
		if ids[i] == outIDs[len(outIDs)-1] {
			outNeighbor[len(outNeighbor)-1] = neighbor[i]
			continue
		}
		outIDs = append(outIDs, ids[i])
		outNeighbor = append(outNeighbor, neighbor[i])
	}
	if len(outIDs) > 1 && outIDs[0] == outIDs[len(outIDs)-1] {
		outIDs = outIDs[:len(outIDs)-1]
		outNeighbor = outNeighbor[:len(outNeighbor)-1]
	}
	return outIDs, outNeighbor
}
