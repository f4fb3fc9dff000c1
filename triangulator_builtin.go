package fillpath

import "github.com/gogpu/fillpath/internal/triangulator"

// builtinTriangulator adapts internal/triangulator's from-scratch planar
// triangulator to the Triangulator interface, translating between the two
// packages' independent vocabularies so internal/triangulator itself never
// needs to import this package.
type builtinTriangulator struct {
	impl *triangulator.Triangulator
}

// NewBuiltinTriangulator returns the Triangulator this repository ships by
// default: pairwise segment splitting followed by a vertical-slab sweep and
// per-band monotone triangulation. FilledPath uses this automatically
// unless WithTriangulator names a different one.
func NewBuiltinTriangulator() Triangulator {
	return &builtinTriangulator{impl: triangulator.New()}
}

func (t *builtinTriangulator) Run(contours []TessContour, bounds BoundingBox, cb Callbacks) bool {
	in := make([]triangulator.Contour, len(contours))
	for i, c := range contours {
		verts := make([]triangulator.VertexInput, len(c.Vertices))
		for j, v := range c.Vertices {
			verts[j] = triangulator.VertexInput{X: v.X, Y: v.Y, ID: triangulator.VertexID(v.ID)}
		}
		in[i] = triangulator.Contour{Vertices: verts}
	}

	inner := triangulator.Callbacks{}
	if cb.Begin != nil {
		inner.Begin = func(winding int) { cb.Begin(BeginTriangles, winding) }
	}
	if cb.Vertex != nil {
		inner.Vertex = func(a, b, c2 triangulator.VertexID) {
			cb.Vertex(VertexID(a))
			cb.Vertex(VertexID(b))
			cb.Vertex(VertexID(c2))
		}
	}
	if cb.Combine != nil {
		inner.Combine = func(x, y float64, data [4]triangulator.VertexID, weight [4]float64) triangulator.VertexID {
			var outData [4]VertexID
			for i, d := range data {
				outData[i] = VertexID(d)
			}
			return triangulator.VertexID(cb.Combine(x, y, outData, weight))
		}
	}
	if cb.EmitMonotone != nil {
		inner.EmitMonotone = func(winding int, ids []triangulator.VertexID, neighbor []int) {
			outIDs := make([]VertexID, len(ids))
			for i, id := range ids {
				outIDs[i] = VertexID(id)
			}
			cb.EmitMonotone(winding, outIDs, neighbor)
		}
	}

	return t.impl.Run(in, inner)
}
