package fillpath

import "github.com/gogpu/gputypes"

// fillRuleDataCount reserves one chunk id per FillRule constant, so
// per-winding chunk ids never collide with the four aggregate chunks.
const fillRuleDataCount = 4

// signedToUnsigned maps a signed winding number onto a dense non-negative
// index: 0,-1,1,-2,2,... -> 0,1,2,3,4,... matching FastUIDraw's own
// bijection so nearby winding numbers land in nearby chunk slots.
func signedToUnsigned(w int) int {
	u := 2 * abs(w)
	if w < 0 {
		u--
	}
	return u
}

func abs(w int) int {
	if w < 0 {
		return -w
	}
	return w
}

// FillChunkFromFillRule returns the reserved chunk id for one of the four
// aggregate fill rules.
func FillChunkFromFillRule(rule FillRule) int { return int(rule) }

// FillChunkFromWindingNumber returns the chunk id an individual winding
// number's triangles are stored under. Winding zero reuses the complement
// nonzero chunk, since a region with winding zero is exactly the region the
// nonzero rule's complement covers.
func FillChunkFromWindingNumber(w int) int {
	if w == 0 {
		return int(ComplementNonzeroFillRule)
	}
	sign := 0
	if w < 0 {
		sign = 1
	}
	return fillRuleDataCount + sign + 2*(abs(w)-1)
}

// AAFuzzChunkFromWindingNumber returns the chunk id anti-aliasing "fuzz"
// edge data for winding w is stored under: the interleaving 0, -1, 1, -2, 2,
// … (so -1 gets a smaller id than +1, the reverse of the fill chunks' order),
// in its own numbering space, since edge data and triangle data are never
// packed into the same buffer.
func AAFuzzChunkFromWindingNumber(w int) int { return signedToUnsigned(w) }

// FillVertex is one vertex of the fill triangle attribute stream: just an
// fp32 position, since winding/fill-rule selection happens at the chunk
// level rather than per-vertex.
type FillVertex struct {
	Position [2]float32
}

// FillVertexBufferLayout describes FillVertex's memory layout in the
// vocabulary the rest of the corpus's render pipelines use to configure a
// vertex buffer, so a renderer built against this package's output can
// plug it into a pipeline descriptor unmodified.
var FillVertexBufferLayout = gputypes.VertexBufferLayout{
	ArrayStride: 8,
	StepMode:    gputypes.VertexStepModeVertex,
	Attributes: []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
	},
}

// EdgeVertex is one vertex of the anti-aliasing fuzz attribute stream: a
// position, the outward normal (§4.7) the fragment shader widens along, a
// per-vertex sign in {-1, 0, +1} recording which side of the edge this
// vertex was offset to (0 at an un-offset bevel joint), and a Z layer so
// that later-merged edges draw over earlier ones.
type EdgeVertex struct {
	Position [2]float32
	Normal   [2]float32
	Sign     float32
	Z        float32
}

// EdgeVertexBufferLayout is EdgeVertex's counterpart to
// FillVertexBufferLayout.
var EdgeVertexBufferLayout = gputypes.VertexBufferLayout{
	ArrayStride: 24,
	StepMode:    gputypes.VertexStepModeVertex,
	Attributes: []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
		{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
		{Format: gputypes.VertexFormatFloat32, Offset: 16, ShaderLocation: 2},
		{Format: gputypes.VertexFormatFloat32, Offset: 20, ShaderLocation: 3},
	},
}

// FillAttributeDataFiller packs a Builder's fp64 points and winding-bucketed
// index lists into fp32 vertex data plus a chunk-keyed index map, the shape
// the GPU attribute stream needs (§4.7).
type FillAttributeDataFiller struct {
	Vertices []FillVertex
	Chunks   map[int][]int32
}

// FillAttributeData runs the filler over one Builder.
func FillAttributeData(b *Builder) FillAttributeDataFiller {
	pts := b.Points()
	verts := make([]FillVertex, len(pts))
	for i, p := range pts {
		verts[i] = FillVertex{Position: [2]float32{float32(p.X), float32(p.Y)}}
	}

	chunks := make(map[int][]int32)
	for _, w := range b.Windings() {
		chunks[FillChunkFromWindingNumber(w)] = b.IndicesForWinding(w)
	}
	for _, rule := range []FillRule{NonzeroFillRule, ComplementNonzeroFillRule, OddEvenFillRule, ComplementOddEvenFillRule} {
		chunks[FillChunkFromFillRule(rule)] = b.IndicesForFillRule(rule)
	}

	return FillAttributeDataFiller{Vertices: verts, Chunks: chunks}
}

// EdgeAttributeDataFiller packs a Builder's silhouette edges into a fuzz
// vertex/index stream, one quad per edge expanded along its normal, bucketed
// by the winding number of the region the edge bounds.
type EdgeAttributeDataFiller struct {
	Vertices []EdgeVertex
	Chunks   map[int][]int32
}

// edgeNormal returns e's outward normal, the unit vector perpendicular to
// its tangent, and false if the edge has zero length and so has no normal.
func edgeNormal(pts []Point, e TesserEdge) (Point, bool) {
	a, b := pts[e.A], pts[e.B]
	tangent := b.Sub(a)
	length := tangent.Length()
	if length == 0 {
		return Point{}, false
	}
	return Pt(-tangent.Y/length, tangent.X/length), true
}

// EdgeAttributeData runs the filler over one Builder's edges (§4.7). Each
// edge with DrawEdge set contributes a quad expanded ±1 along its normal; each
// edge with DrawBevel set additionally contributes a triangle covering the
// wedge between it and Next's offset quad at their shared joint.
func EdgeAttributeData(b *Builder) EdgeAttributeDataFiller {
	pts := b.Points()
	edges := b.Edges()
	filler := EdgeAttributeDataFiller{Chunks: make(map[int][]int32)}

	for i, e := range edges {
		if !e.DrawEdge {
			continue
		}
		normal, ok := edgeNormal(pts, e)
		if !ok {
			continue
		}
		a, bp := pts[e.A], pts[e.B]
		z := float32(i)

		base := int32(len(filler.Vertices))
		filler.Vertices = append(filler.Vertices,
			EdgeVertex{Position: f32(a), Normal: f32(normal), Sign: 1, Z: z},
			EdgeVertex{Position: f32(a), Normal: f32(normal.Mul(-1)), Sign: -1, Z: z},
			EdgeVertex{Position: f32(bp), Normal: f32(normal), Sign: 1, Z: z},
			EdgeVertex{Position: f32(bp), Normal: f32(normal.Mul(-1)), Sign: -1, Z: z},
		)
		chunk := AAFuzzChunkFromWindingNumber(e.WindingInside)
		filler.Chunks[chunk] = append(filler.Chunks[chunk],
			base, base+1, base+2,
			base+1, base+3, base+2,
		)
	}

	for i, e := range edges {
		if !e.DrawBevel {
			continue
		}
		next := edges[e.Next]
		normal, ok1 := edgeNormal(pts, e)
		nextNormal, ok2 := edgeNormal(pts, next)
		if !ok1 || !ok2 {
			continue
		}
		joint := pts[e.B]
		z := float32(i)

		base := int32(len(filler.Vertices))
		filler.Vertices = append(filler.Vertices,
			EdgeVertex{Position: f32(joint), Normal: [2]float32{0, 0}, Sign: 0, Z: z},
			EdgeVertex{Position: f32(joint), Normal: f32(normal), Sign: 1, Z: z},
			EdgeVertex{Position: f32(joint), Normal: f32(nextNormal), Sign: 1, Z: z},
		)
		chunk := AAFuzzChunkFromWindingNumber(e.WindingInside)
		filler.Chunks[chunk] = append(filler.Chunks[chunk], base, base+1, base+2)
	}

	return filler
}

func f32(p Point) [2]float32 { return [2]float32{float32(p.X), float32(p.Y)} }
