package triangulator

// VertexID mirrors the root package's client-assigned vertex id vocabulary.
type VertexID int32

// NullVertexID signals a Combine call that could not produce a usable
// vertex; a caller receiving it from Combine must abandon the triangle or
// region currently being formed.
const NullVertexID VertexID = -1

// VertexInput is one input contour vertex: a position plus the id the
// caller wants echoed back through Vertex or used as a Combine input.
type VertexInput struct {
	X, Y float64
	ID   VertexID
}

// Contour is one closed input contour. Every contour this package consumes
// is implicitly closed (the edge from the last vertex back to the first is
// part of the polygon), matching the caller's own closed-contour model.
type Contour struct {
	Vertices []VertexInput
}

// Callbacks is the event sink Run reports through. Combine is required:
// without it Run reports nothing. Vertex, Begin and EmitMonotone are optional
// observers of the same underlying triangle stream, offered at different
// granularities so a caller
// can pick whichever one its winding/fill-rule bookkeeping wants.
type Callbacks struct {
	// Begin announces the start of a new triangle run at the given winding
	// number, mirroring the root package's begin/vertex/vertex/vertex cycle.
	Begin func(winding int)

	// Vertex delivers one triangle's three vertex ids.
	Vertex func(a, b, c VertexID)

	// Combine synthesizes a vertex id for a computed point (a segment
	// intersection or a slab-boundary sample), given up to four contributing
	// input ids and their interpolation weights. Unused slots carry
	// NullVertexID with a zero weight.
	Combine func(x, y float64, data [4]VertexID, weight [4]float64) VertexID

	// EmitMonotone reports one monotone region's boundary loop: its winding
	// number, the vertex ids in boundary order, and for each boundary edge
	// the winding number on the opposite side of that edge.
	EmitMonotone func(winding int, vertexIDs []VertexID, neighborWinding []int)
}
