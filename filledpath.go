package fillpath

import "golang.org/x/image/math/f64"

// IdentityClipMatrix is the identity element for SelectSubsets'
// clipMatrixLocal parameter, for callers that have no local-frame transform
// to apply to their clip half-planes.
var IdentityClipMatrix = f64.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}

// FilledPath is the top-level façade (§4.10): given a TessellatedPath, it
// builds the subset spatial hierarchy skeleton eagerly but defers all
// triangulation until a caller actually asks for a subset's geometry.
//
// A FilledPath's tree structure is immutable and safe to read from multiple
// goroutines simultaneously; realizing two different subsets concurrently is
// safe, but realizing the same subset from two goroutines at once is not
// (§5) — callers that fan work out across subsets should partition by
// subset index and never re-enter the same one.
type FilledPath struct {
	root   *Subset
	leaves []*Subset
	nodes  map[int]*Subset
}

// NewFilledPath builds the subset tree over tp. Options tune the split
// stopping rule (WithRecursionDepth, WithPointsPerSubset, WithSizeMaxRatio)
// and swap in an alternate Triangulator (WithTriangulator); the built-in
// triangulator is used if none is given.
func NewFilledPath(tp *TessellatedPath, opts ...Option) *FilledPath {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.triangulator == nil {
		o.triangulator = NewBuiltinTriangulator()
	}

	contours := weightedContours(tp.Contours(), tp.Weights())
	root := NewSubPath(tp.Bounds(), contours)
	tree := newSubsetTree(root, o.recursionDepth, o.pointsPerSubset, o.sizeMaxRatio, o.triangulator)

	var leaves []*Subset
	tree.collectLeaves(&leaves)

	nodes := make(map[int]*Subset)
	tree.collectAll(nodes)

	return &FilledPath{root: tree, leaves: leaves, nodes: nodes}
}

// weightedContours expands each contour by its authored winding weight: a
// weight of n repeats the contour |n| times, reversed first if its point
// order winds opposite to n's sign (clockwise for positive n,
// counter-clockwise for negative n), so the triangulator's crossing-number
// accumulation counts it n times
// rather than the ±1 a bare polygon orientation would otherwise contribute
// (§3, §4.9's "caller-supplied or shoelace-derived winding weight"). A
// weight of exactly zero drops the contour: it was authored to contribute
// nothing to any winding number.
func weightedContours(contours []Contour, weights []int) []Contour {
	if len(weights) == 0 {
		return contours
	}
	var out []Contour
	for i, c := range contours {
		w := 1
		if i < len(weights) {
			w = weights[i]
		}
		rep := c
		if (w < 0) != (shoelaceSign(c) < 0) {
			rep = reverseContour(c)
		}
		for n := 0; n < abs(w); n++ {
			out = append(out, rep)
		}
	}
	return out
}

func reverseContour(c Contour) Contour {
	out := make(Contour, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}

// NumSubsets returns the number of leaves in the subset tree.
func (fp *FilledPath) NumSubsets() int { return len(fp.leaves) }

// Subset returns the i'th leaf, in the same stable order across the
// FilledPath's lifetime, realizing it first if it is not realized yet;
// later calls return the already-realized leaf.
func (fp *FilledPath) Subset(i int) *Subset {
	s := fp.leaves[i]
	s.makeReady()
	return s
}

// SubsetByID returns the node (leaf or, for an aggregated draw, interior)
// with the given ID, as returned by SelectSubsets. It reports false if id
// does not name a node in this tree.
func (fp *FilledPath) SubsetByID(id uint32) (*Subset, bool) {
	s, ok := fp.nodes[int(id)]
	return s, ok
}

// SelectSubsets implements §4.6's select_subsets: clipEquations are
// half-planes in the FilledPath's own coordinate space, transformed by
// clipMatrixLocal before clipping; maxAttr and maxIdx cap the attribute-
// vertex and index counts a caller is willing to draw as one aggregated
// piece. It returns the IDs of every node that should be drawn — realizing
// each one (and merging interior nodes from their children) along the way —
// aggregating whole unclipped subtrees into a single ID where their merged
// size fits within the caps, and otherwise descending to the finer-grained
// nodes beneath them. Passing no clip equations selects (and realizes)
// everything, aggregated as coarsely as the caps allow.
func (fp *FilledPath) SelectSubsets(clipEquations []f64.Vec3, clipMatrixLocal f64.Mat3, maxAttr, maxIdx int) []uint32 {
	local := make([]clipPlane, len(clipEquations))
	for i, p := range clipEquations {
		local[i] = transformPlane(clipMatrixLocal, p)
	}
	var out []uint32
	fp.root.selectSubsets(local, maxAttr, maxIdx, &out)
	return out
}

// transformPlane applies m (row-major, as x/image/math/f64.Mat3 lays out a
// 3x3 matrix) to homogeneous half-plane p, moving a clip equation authored
// in one frame into another.
func transformPlane(m f64.Mat3, p f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		m[0]*p[0] + m[1]*p[1] + m[2]*p[2],
		m[3]*p[0] + m[4]*p[1] + m[5]*p[2],
		m[6]*p[0] + m[7]*p[1] + m[8]*p[2],
	}
}

// FillChunk returns the chunk id a subset's FillAttributeData index map
// stores winding number w's triangles under.
func FillChunk(w int) int { return FillChunkFromWindingNumber(w) }

// FillChunkForRule returns the chunk id a subset's FillAttributeData index
// map stores rule's aggregate triangles under.
func FillChunkForRule(rule FillRule) int { return FillChunkFromFillRule(rule) }

// EdgeChunk returns the chunk id a subset's EdgeAttributeData index map
// stores winding number w's fuzz edges under.
func EdgeChunk(w int) int { return AAFuzzChunkFromWindingNumber(w) }
