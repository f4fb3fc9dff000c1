// Package fillpath computes, on demand, a spatial hierarchy of triangulated
// sub-regions for a filled 2-D vector path, ready for GPU rasterization under
// the nonzero, odd-even, and complement fill rules, together with anti-alias
// silhouette ("fuzz") geometry along the boundary between winding regions.
//
// # Overview
//
// A [FilledPath] is built once from a [TessellatedPath] — a set of closed
// polygonal contours, each carrying an integer winding weight. Construction
// only builds the tree skeleton; the actual triangulation of each leaf
// ([Subset]) happens lazily, either through an explicit call to
// [FilledPath.Subset] or transitively through [FilledPath.SelectSubsets] when
// a leaf's size needs to be known for culling.
//
// # Quick Start
//
//	p, err := fillpath.NewPathBuilder().
//		MoveTo(fillpath.Pt(0, 0)).
//		LineTo(fillpath.Pt(4, 0)).
//		LineTo(fillpath.Pt(4, 4)).
//		LineTo(fillpath.Pt(0, 4)).
//		Close().
//		Build()
//
//	tp, err := p.Flatten(0.25)
//	fp := fillpath.NewFilledPath(tp)
//
//	for i := 0; i < fp.NumSubsets(); i++ {
//	    subset := fp.Subset(i)
//	    _ = subset.FillAttributeData()
//	}
//
// # Architecture
//
// The engine is a pipeline of small, single-purpose components, described in
// full in SPEC_FULL.md: a [CoordinateConverter] remaps floating-point
// coordinates onto an integer grid so that a [PointHoard] can deduplicate and
// discretize contour vertices without losing the sub-pixel precision the
// caller authored; a [SubPath] recursively splits along half-planes to bound
// the vertex count handed to any one triangulation; a [Tesser] drives an
// external [Triangulator] and folds its output into per-winding triangle
// lists and silhouette-edge lists; a [Builder] packs those into contiguous,
// fill-rule-addressable index ranges; and the subset tree lazily realizes and
// merges those results bottom-up.
//
// # Coordinate System
//
// All geometry is authored in caller-chosen floating-point units. Internally,
// each [SubPath] remaps its own bounding box onto the integer grid
// [1, 1+2^24]² so that a general-purpose triangulator — which cannot tolerate
// exactly-overlapping edges — never sees two contour vertices at the same
// fp64 position; see [CoordinateConverter] and the fudge-delta mechanism it
// documents.
//
// # Non-goals
//
// This package does not rasterize (it only produces geometry) and is not
// safe for concurrent realization of overlapping parts of one [FilledPath];
// see the package-level concurrency notes on [FilledPath].
package fillpath
