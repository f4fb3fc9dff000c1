package fillpath

import (
	"sort"

	"golang.org/x/image/math/f64"
)

// Subset is one node of the binary spatial hierarchy §4.6 builds over a
// path's SubPaths: a leaf lazily realizes a Builder (and therefore a full
// PointHoard/Tesser run) the first time it is asked for attribute data,
// while an interior node realizes by merging its two children's already-
// realized data rather than re-triangulating anything itself.
type Subset struct {
	id    int
	box   BoundingBox
	sub   *SubPath
	left  *Subset
	right *Subset
	depth int

	triangulator Triangulator
	builder      *Builder

	realized       bool
	windingNumbers []int
	sizeAttr       int
	sizeIdx        int
	fill           FillAttributeDataFiller
	edge           EdgeAttributeDataFiller
}

// buildSubsetTree recursively splits sp per §4.2/§4.6's stopping rule: stop
// at recursionDepth, stop when the SubPath's own point count is small
// enough to fit one subset, and stop wherever Split itself refuses (its own
// failure mode, propagated rather than retried). nextID hands out ids in
// depth-first construction order, matching §4.6's "node ID assigned at
// construction (DFS order)" — every node gets one, not just leaves.
func buildSubsetTree(sp *SubPath, depth, recursionDepth, pointsPerSubset int, sizeMaxRatio float64, t Triangulator, nextID *int) *Subset {
	node := &Subset{id: *nextID, box: sp.Bounds(), sub: sp, depth: depth, triangulator: t}
	*nextID++
	if depth >= recursionDepth || sp.PointCount() <= pointsPerSubset {
		return node
	}
	plan := sp.chooseSplit(sizeMaxRatio)
	left, right, ok := sp.Split(plan)
	if !ok {
		return node
	}
	node.left = buildSubsetTree(left, depth+1, recursionDepth, pointsPerSubset, sizeMaxRatio, t, nextID)
	node.right = buildSubsetTree(right, depth+1, recursionDepth, pointsPerSubset, sizeMaxRatio, t, nextID)
	node.sub = nil // interior nodes never realize their own geometry
	return node
}

// newSubsetTree builds a whole tree starting IDs at 0, the entry point every
// caller other than a recursive buildSubsetTree call should use.
func newSubsetTree(sp *SubPath, recursionDepth, pointsPerSubset int, sizeMaxRatio float64, t Triangulator) *Subset {
	id := 0
	return buildSubsetTree(sp, 0, recursionDepth, pointsPerSubset, sizeMaxRatio, t, &id)
}

// ID returns this node's depth-first construction index. IDs are stable
// across constructions from equal input (§8's "Subset ID stability").
func (s *Subset) ID() int { return s.id }

// IsLeaf reports whether this node holds SubPath geometry of its own,
// rather than delegating entirely to its two children.
func (s *Subset) IsLeaf() bool { return s.left == nil && s.right == nil }

// Bounds returns the node's fp64 bounding box.
func (s *Subset) Bounds() BoundingBox { return s.box }

// BoundsF32 returns the single-precision mirror of Bounds, so a renderer's
// hot culling path need not touch fp64 arithmetic (§3: "a bounding box
// (fp64 and fp32)" on every subset tree node).
func (s *Subset) BoundsF32() BoundsF32 { return s.box.ToF32() }

// WindingNumbers returns the sorted set of winding numbers present in this
// node's triangulation — for an interior node, the union of its
// descendants' winding numbers (§8's "winding-set union" invariant). Valid
// only once the node has been realized.
func (s *Subset) WindingNumbers() []int { return s.windingNumbers }

// SizeAttr and SizeIdx report the upper-bound attribute-vertex and index
// counts a caller would need to buffer to draw this node (and, for an
// interior node, everything beneath it) as one aggregated piece. Valid only
// once the node has been realized.
func (s *Subset) SizeAttr() int { return s.sizeAttr }
func (s *Subset) SizeIdx() int  { return s.sizeIdx }

// makeReady realizes this node if it has not been already. A leaf
// triangulates its own SubPath; an interior node first realizes both
// children, then merges their attribute data by concatenation instead of
// triangulating anything of its own (§4.6's "Lazy realization").
func (s *Subset) makeReady() {
	if s.realized {
		return
	}
	if s.IsLeaf() {
		s.builder = NewBuilder(s.sub, s.triangulator)
		s.fill = FillAttributeData(s.builder)
		s.edge = EdgeAttributeData(s.builder)
		s.windingNumbers = s.builder.Windings()
		s.sizeAttr = len(s.fill.Vertices)
		s.sizeIdx = totalIndices(s.fill.Chunks)
		s.realized = true
		return
	}
	s.left.makeReady()
	s.right.makeReady()
	s.fill = mergeFillData(s.left.fill, s.right.fill)
	s.edge = mergeEdgeData(s.left.edge, s.right.edge)
	s.windingNumbers = unionSortedInts(s.left.windingNumbers, s.right.windingNumbers)
	s.sizeAttr = s.left.sizeAttr + s.right.sizeAttr
	s.sizeIdx = s.left.sizeIdx + s.right.sizeIdx
	s.realized = true
}

// FillAttributeData realizes this node (if not already) and returns its
// (possibly merged) GPU-ready fill triangle attribute data.
func (s *Subset) FillAttributeData() FillAttributeDataFiller {
	s.makeReady()
	return s.fill
}

// EdgeAttributeData realizes this node (if not already) and returns its
// (possibly merged) anti-aliasing fuzz attribute data.
func (s *Subset) EdgeAttributeData() EdgeAttributeDataFiller {
	s.makeReady()
	return s.edge
}

func totalIndices(chunks map[int][]int32) int {
	n := 0
	for _, idx := range chunks {
		n += len(idx)
	}
	return n
}

func unionSortedInts(a, b []int) []int {
	set := make(map[int]struct{}, len(a)+len(b))
	for _, w := range a {
		set[w] = struct{}{}
	}
	for _, w := range b {
		set[w] = struct{}{}
	}
	out := make([]int, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Ints(out)
	return out
}

// mergeFillData concatenates two children's fill attribute data, rewriting
// b's index chunks to offset into the concatenated attribute range and
// unioning their chunk maps (§4.6: "merge... concatenates attribute arrays,
// rewrites index chunks to offset into the concatenated attribute range").
func mergeFillData(a, b FillAttributeDataFiller) FillAttributeDataFiller {
	verts := make([]FillVertex, 0, len(a.Vertices)+len(b.Vertices))
	verts = append(verts, a.Vertices...)
	verts = append(verts, b.Vertices...)

	offset := int32(len(a.Vertices))
	chunks := make(map[int][]int32, len(a.Chunks)+len(b.Chunks))
	for chunk, idx := range a.Chunks {
		chunks[chunk] = append(chunks[chunk], idx...)
	}
	for chunk, idx := range b.Chunks {
		shifted := make([]int32, len(idx))
		for i, v := range idx {
			shifted[i] = v + offset
		}
		chunks[chunk] = append(chunks[chunk], shifted...)
	}
	return FillAttributeDataFiller{Vertices: verts, Chunks: chunks}
}

// mergeEdgeData is mergeFillData's counterpart for fuzz data, additionally
// shifting a's Z layer past b's so that, per §4.6, "child A's edges sort
// above child B's".
func mergeEdgeData(a, b EdgeAttributeDataFiller) EdgeAttributeDataFiller {
	verts := make([]EdgeVertex, 0, len(a.Vertices)+len(b.Vertices))

	var maxZ float32
	for _, v := range b.Vertices {
		if v.Z > maxZ {
			maxZ = v.Z
		}
	}
	zShift := maxZ + 1
	for _, v := range a.Vertices {
		v.Z += zShift
		verts = append(verts, v)
	}
	verts = append(verts, b.Vertices...)

	offset := int32(len(a.Vertices))
	chunks := make(map[int][]int32, len(a.Chunks)+len(b.Chunks))
	for chunk, idx := range a.Chunks {
		chunks[chunk] = append(chunks[chunk], idx...)
	}
	for chunk, idx := range b.Chunks {
		shifted := make([]int32, len(idx))
		for i, v := range idx {
			shifted[i] = v + offset
		}
		chunks[chunk] = append(chunks[chunk], shifted...)
	}
	return EdgeAttributeDataFiller{Vertices: verts, Chunks: chunks}
}

// clipPlane is a half-plane in homogeneous form: a point (x, y) is inside
// the plane when dot(plane, (x, y, 1)) >= 0.
type clipPlane = f64.Vec3

func evalPlane(p clipPlane, x, y float64) float64 {
	return p[0]*x + p[1]*y + p[2]
}

// boxOutsidePlane reports whether every corner of box lies strictly outside
// plane, which is sufficient (conservative) grounds to cull the whole
// subtree rooted at that box.
func boxOutsidePlane(box BoundingBox, plane clipPlane) bool {
	corners := box.AsRectangle()
	for _, c := range corners {
		if evalPlane(plane, c.X, c.Y) >= 0 {
			return false
		}
	}
	return true
}

// clipState classifies a box against a set of half-planes.
type clipState int

const (
	clipEmpty clipState = iota
	clipFull
	clipPartial
)

// classifyBox reports whether box lies entirely outside some plane
// (clipEmpty), entirely inside every plane (clipFull), or neither
// (clipPartial) — §4.6 step 2's "clip the node's rectangle against all
// half-planes".
func classifyBox(box BoundingBox, planes []clipPlane) clipState {
	corners := box.AsRectangle()
	allInside := true
	for _, plane := range planes {
		outsideAll := true
		for _, c := range corners {
			if evalPlane(plane, c.X, c.Y) >= 0 {
				outsideAll = false
			} else {
				allInside = false
			}
		}
		if outsideAll {
			return clipEmpty
		}
	}
	if allInside {
		return clipFull
	}
	return clipPartial
}

// selectSubsets implements §4.6's select_subsets traversal: prune subtrees
// entirely outside the clip region, aggregate a fully-unclipped or leaf node
// into one emitted ID when it fits the caller's size caps, and otherwise
// recurse into (or, past a leaf's own realization, descend into) children.
func (s *Subset) selectSubsets(clipPlanesLocal []clipPlane, maxAttr, maxIdx int, out *[]uint32) {
	switch classifyBox(s.box, clipPlanesLocal) {
	case clipEmpty:
		return
	case clipFull:
		s.selectAllUnculled(maxAttr, maxIdx, out)
		return
	}
	if s.IsLeaf() {
		s.selectAllUnculled(maxAttr, maxIdx, out)
		return
	}
	s.left.selectSubsets(clipPlanesLocal, maxAttr, maxIdx, out)
	s.right.selectSubsets(clipPlanesLocal, maxAttr, maxIdx, out)
}

// selectAllUnculled realizes s and emits its own ID if its merged size fits
// within the caller's caps, otherwise descends into its children and emits
// theirs instead. A leaf always emits itself: it has no children to descend
// into regardless of how its size compares to the caps.
func (s *Subset) selectAllUnculled(maxAttr, maxIdx int, out *[]uint32) {
	s.makeReady()
	if s.IsLeaf() || (s.sizeAttr <= maxAttr && s.sizeIdx <= maxIdx) {
		*out = append(*out, uint32(s.id))
		return
	}
	s.left.selectAllUnculled(maxAttr, maxIdx, out)
	s.right.selectAllUnculled(maxAttr, maxIdx, out)
}

// collectLeaves appends every leaf under s to out without realizing any of
// them, used to build FilledPath's stable subset index.
func (s *Subset) collectLeaves(out *[]*Subset) {
	if s.IsLeaf() {
		*out = append(*out, s)
		return
	}
	s.left.collectLeaves(out)
	s.right.collectLeaves(out)
}

// collectAll indexes every node under s (interior and leaf alike) by ID, so
// a caller holding only an ID from SelectSubsets can look up the node it
// names, whether or not that node is a leaf.
func (s *Subset) collectAll(out map[int]*Subset) {
	out[s.id] = s
	if !s.IsLeaf() {
		s.left.collectAll(out)
		s.right.collectAll(out)
	}
}
