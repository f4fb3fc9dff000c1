package fillpath

// ElementKind identifies the kind of segment a PathElement describes.
type ElementKind int

const (
	MoveTo ElementKind = iota
	LineTo
	QuadTo
	CubicTo
	Close
)

// PathElement is one segment of a Path's input model (§3): a move, a line,
// a quadratic or cubic Bezier, or a contour close. Unused control points are
// left zero for the kinds that don't need them. Weight is meaningful only on
// MoveTo: zero means "derive the contour's winding weight from its authored
// point order" (Flatten's default), any other value is used as-is.
type PathElement struct {
	Kind                   ElementKind
	Control1, Control2, To Point
	Weight                 int
}

// Path is an immutable sequence of PathElements: the fp64 curve input this
// engine flattens into a TessellatedPath before filling. It carries no
// styling or paint state, unlike the wider drawing APIs this package's
// input model is descended from.
type Path struct {
	elements []PathElement
}

// Elements returns the path's segments in order.
func (p *Path) Elements() []PathElement { return p.elements }

// PathBuilder assembles a Path through a fluent, MoveTo/LineTo/.../Close
// call sequence. A zero-value PathBuilder is ready to use.
type PathBuilder struct {
	elements   []PathElement
	hasCurrent bool
}

// NewPathBuilder returns an empty PathBuilder.
func NewPathBuilder() *PathBuilder { return &PathBuilder{} }

// MoveTo starts a new contour at pt. Its winding weight is derived from the
// contour's authored point order once flattened; use MoveToWithWinding to
// override that.
func (pb *PathBuilder) MoveTo(pt Point) *PathBuilder {
	pb.elements = append(pb.elements, PathElement{Kind: MoveTo, To: pt})
	pb.hasCurrent = true
	return pb
}

// MoveToWithWinding starts a new contour at pt with an explicit winding
// weight, overriding the shoelace-derived default Flatten would otherwise
// compute from the contour's point order. A weight of 2 makes the contour
// count twice, counter-clockwise, toward the nonzero winding rule and -1
// makes it count once clockwise, whatever its point order; a weight of 0
// falls back to the shoelace-derived default, the
// same as never calling this method.
func (pb *PathBuilder) MoveToWithWinding(pt Point, weight int) *PathBuilder {
	pb.elements = append(pb.elements, PathElement{Kind: MoveTo, To: pt, Weight: weight})
	pb.hasCurrent = true
	return pb
}

// LineTo appends a straight segment to pt. It panics if no contour has been
// started with MoveTo.
func (pb *PathBuilder) LineTo(pt Point) *PathBuilder {
	pb.requireCurrent("LineTo")
	pb.elements = append(pb.elements, PathElement{Kind: LineTo, To: pt})
	return pb
}

// QuadTo appends a quadratic Bezier segment through ctrl to pt.
func (pb *PathBuilder) QuadTo(ctrl, pt Point) *PathBuilder {
	pb.requireCurrent("QuadTo")
	pb.elements = append(pb.elements, PathElement{Kind: QuadTo, Control1: ctrl, To: pt})
	return pb
}

// CubicTo appends a cubic Bezier segment through c1 and c2 to pt.
func (pb *PathBuilder) CubicTo(c1, c2, pt Point) *PathBuilder {
	pb.requireCurrent("CubicTo")
	pb.elements = append(pb.elements, PathElement{Kind: CubicTo, Control1: c1, Control2: c2, To: pt})
	return pb
}

// Close closes the current contour back to its MoveTo point.
func (pb *PathBuilder) Close() *PathBuilder {
	pb.requireCurrent("Close")
	pb.elements = append(pb.elements, PathElement{Kind: Close})
	pb.hasCurrent = false
	return pb
}

func (pb *PathBuilder) requireCurrent(op string) {
	if !pb.hasCurrent {
		fail("PathBuilder.%s called with no current point", op)
	}
}

// Build finalizes the builder into a Path. It returns ErrEmptyPath if no
// segments were ever added.
func (pb *PathBuilder) Build() (*Path, error) {
	if len(pb.elements) == 0 {
		return nil, ErrEmptyPath
	}
	return &Path{elements: pb.elements}, nil
}
