// Package triangulator implements a callback-driven planar polygon
// triangulator: given a set of closed fp64 contours, it discovers every
// self-intersection, sweeps the resulting arrangement into winding-tagged
// trapezoids, merges those into monotone regions, and reports triangles and
// monotone-polygon boundaries through a set of callbacks.
//
// This package has no knowledge of the fillpath package's vertex ids,
// bounding boxes, or coordinate conversion; it works entirely in its own
// Point/VertexID vocabulary so it can be adapted behind fillpath's
// Triangulator interface (see triangulator_builtin.go at the module root)
// without an import cycle.
package triangulator
