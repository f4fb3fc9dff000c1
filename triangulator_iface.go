package fillpath

// VertexID identifies a vertex handed to or produced by a Triangulator.
// NullVertexID is the §6 "NULL_CLIENT_ID" sentinel signaling a failed vertex.
type VertexID int32

// NullVertexID is the sentinel returned by a Boundary or Combine callback
// implementation that could not produce a usable vertex, and the value
// Triangulator implementations must feed to Vertex to signal a discarded
// triangle.
const NullVertexID VertexID = -1

// BeginType distinguishes the triangle layouts (plain triangles, fan, strip)
// a triangulator may announce; the Tesser reads vertex() in groups of three
// whichever is in effect.
type BeginType int

const (
	BeginTriangles BeginType = iota
	BeginTriangleFan
	BeginTriangleStrip
)

// TessVertexInput is one contour vertex delivered to the triangulator via
// tess_vertex(x, y, id): an fp64 position plus the client-assigned id the
// triangulator must echo back through Vertex/Combine.
type TessVertexInput struct {
	X, Y float64
	ID   VertexID
}

// TessContour is one begin_contour/.../end_contour span. Every contour this
// engine ever feeds a triangulator is closed (§3's "closed ordered sequence
// of points"), so there is no separate is_closed flag on the Go side.
type TessContour struct {
	Vertices []TessVertexInput
}

// Callbacks is the set of triangulator-to-core callbacks §6 specifies,
// bundled into one struct instead of individual setter methods since Go
// values, not registration calls, are the idiomatic way to hand a triangulator
// its event sink.
type Callbacks struct {
	// Begin starts a new run of triangles for a region with the given
	// triangulator-reported winding number.
	Begin func(kind BeginType, winding int)

	// Vertex receives triangle vertex ids in groups of three. A NullVertexID
	// discards the triangle currently being formed.
	Vertex func(id VertexID)

	// Combine asks the core to synthesize a vertex for an intersection point
	// the triangulator discovered, given up to four contributing input ids
	// and their interpolation weights (unused slots carry NullVertexID).
	Combine func(x, y float64, data [4]VertexID, weight [4]float64) VertexID

	// Boundary asks the core for one corner of the triangulation's bounding
	// rectangle, optionally perturbed by step to disambiguate repeated calls.
	Boundary func(x, y float64, step int, isMaxX, isMaxY bool) VertexID

	// FillRule reports whether the triangulator should emit geometry for a
	// given winding number. This engine always answers true (§4.4).
	FillRule func(winding int) bool

	// EmitMonotone delivers one monotone polygon's boundary: the polygon's
	// own winding, its vertex ids in boundary order, and for each edge the
	// winding number of whatever lies on the polygon's other side.
	EmitMonotone func(winding int, vertexIDs []VertexID, neighborWinding []int)
}

// Triangulator is the external collaborator §6 specifies: a callback-driven
// planar polygon triangulator that accepts fp64 contour vertices and reports
// triangles grouped by winding number plus monotone-polygon boundaries. The
// core (Tesser) depends only on this interface; internal/triangulator
// provides the concrete implementation this repository ships, but any
// conforming implementation may be substituted via WithTriangulator.
type Triangulator interface {
	// Run triangulates the given closed contours within bounds, invoking cb
	// as it discovers triangles and monotone-polygon boundaries. It returns
	// false if the triangulation could not proceed at all (as opposed to
	// individual discarded triangles, which are signaled through Vertex).
	Run(contours []TessContour, bounds BoundingBox, cb Callbacks) bool
}
