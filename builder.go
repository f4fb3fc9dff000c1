package fillpath

import "sort"

// FillRule names one of the four aggregate fill predicates a caller can
// request an index buffer for: winding numbers accepted directly, or their
// complement, under either the nonzero or odd-even rule (§3, §6).
type FillRule int

const (
	NonzeroFillRule FillRule = iota
	ComplementNonzeroFillRule
	OddEvenFillRule
	ComplementOddEvenFillRule
)

func fillRuleAccepts(rule FillRule, w int) bool {
	switch rule {
	case NonzeroFillRule:
		return w != 0
	case ComplementNonzeroFillRule:
		return w == 0
	case OddEvenFillRule:
		return w%2 != 0
	case ComplementOddEvenFillRule:
		return w%2 == 0
	default:
		return false
	}
}

// degenerateBoxInflate is the minimum half-width/half-height a bounding box
// is padded to before it is handed to a CoordinateConverter, so a SubPath
// whose contours collapsed onto a line or a point (the "degenerate bounding
// rectangle" case) still produces a usable, if visually empty, Builder
// instead of panicking.
const degenerateBoxInflate = 1e-6

// Builder orchestrates one SubPath's fp64-to-triangle pipeline: it owns the
// PointHoard and Tesser for that SubPath's own coordinate grid, and exposes
// the resulting geometry as index buffers keyed by winding number or by
// aggregate fill rule (§4.5's "index packing").
type Builder struct {
	conv  *CoordinateConverter
	hoard *PointHoard
	tess  *Tesser
}

// NewBuilder runs the full §4.5 pipeline for one SubPath: build a
// CoordinateConverter scoped to the SubPath's own bounding box, discretize
// and reduce its contours through a PointHoard, triangulate the result with
// t (the built-in Triangulator if t is nil), purge any winding component
// that ended up with no surviving triangles, and — if none remain at all —
// synthesize the bounding rectangle as a fallback so the subset never
// realizes to nothing.
func NewBuilder(sp *SubPath, t Triangulator) *Builder {
	box := sp.Bounds()
	if box.Width() <= 0 || box.Height() <= 0 {
		box = box.Inflate(degenerateBoxInflate)
	}
	conv := NewCoordinateConverter(box)
	hoard := NewPointHoard(conv)
	contours := hoard.GenerateContours(sp.Contours())

	tess := NewTesser(hoard, t)
	tess.Run(contours)
	tess.purgeEmpty()
	if len(tess.Windings()) == 0 {
		Logger().Debug("fillpath: subset triangulation produced no triangles, falling back to bounding rectangle")
		tess.synthesizeFallback()
	}

	return &Builder{conv: conv, hoard: hoard, tess: tess}
}

// Points returns the fp64 vertex positions the builder's indices reference.
func (b *Builder) Points() []Point { return b.hoard.Points() }

// Windings returns every winding number with at least one triangle, sorted
// ascending.
func (b *Builder) Windings() []int {
	ws := b.tess.Windings()
	sort.Ints(ws)
	return ws
}

// IndicesForWinding returns the flattened triangle-index list for exactly
// one winding number.
func (b *Builder) IndicesForWinding(w int) []int32 { return b.tess.Triangles(w) }

// IndicesForFillRule returns the concatenation, in ascending winding order,
// of every winding's index list that satisfies rule.
func (b *Builder) IndicesForFillRule(rule FillRule) []int32 {
	var out []int32
	for _, w := range b.Windings() {
		if fillRuleAccepts(rule, w) {
			out = append(out, b.tess.Triangles(w)...)
		}
	}
	return out
}

// Edges returns the silhouette-candidate edges collected while
// triangulating, for the anti-aliasing "fuzz" attribute filler.
func (b *Builder) Edges() []TesserEdge { return b.tess.Edges() }
