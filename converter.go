package fillpath

import "math"

// Compile-time constants named in SPEC_FULL.md §9. All are grid-space
// defaults; recursionDepth, pointsPerSubset, and sizeMaxRatio are overridable
// per FilledPath via Option.
const (
	log2BoxDim         = 24
	negativeLog2Fudge  = 20
	boxDim             = 1 << log2BoxDim // 2^24
	fudgeDelta         = 1.0 / (1 << negativeLog2Fudge)
	minHeight          = 1 << 7 // 128, in grid units
	defaultRecursionDepth  = 12
	defaultPointsPerSubset = 64
	defaultSizeMaxRatio    = 4.0
)

// CoordinateConverter maps a double-precision bounding box onto the integer
// grid [1, 1+2^24]^2, and back. The grid dimension 2^24 fits inside fp32's
// 23-bit significand with one bit to spare; fudgeDelta (2^-20) is more than
// 30 fp64 ULPs at that magnitude yet below one fp32 ULP, so two grid points
// offset by a multiple of fudgeDelta round to the same fp32 value while
// remaining numerically distinct to an fp64-consuming triangulator.
type CoordinateConverter struct {
	box   BoundingBox
	scale Point // 2^24 / (max - min), componentwise
}

// NewCoordinateConverter builds a converter for the given bounding box. It
// panics if the box is degenerate (zero width or height on either axis),
// since no finite scale factor exists for it.
func NewCoordinateConverter(box BoundingBox) *CoordinateConverter {
	w, h := box.Width(), box.Height()
	if w <= 0 || h <= 0 {
		fail("CoordinateConverter: degenerate bounding box %v", box)
	}
	return &CoordinateConverter{
		box:   box,
		scale: Pt(boxDim/w, boxDim/h),
	}
}

// Bounds returns the fp64 bounding box the converter was built from.
func (c *CoordinateConverter) Bounds() BoundingBox { return c.box }

// FudgeDelta returns the fixed sub-fp32-precision offset (2^-20), additive
// rather than multiplicative.
func (c *CoordinateConverter) FudgeDelta() float64 { return fudgeDelta }

func clampGrid(v float64) int32 {
	if v < 0 {
		return 0
	}
	if v > boxDim {
		return boxDim
	}
	return int32(v)
}

// IApply forward-maps a floating point coordinate onto the integer grid:
// 1 + clamp(scale * (p - min)), clamped into [0, 2^24] before the +1, so the
// result lies in [1, 1+2^24].
func (c *CoordinateConverter) IApply(p Point) IVec2 {
	x := clampGrid(c.scale.X * (p.X - c.box.Min.X))
	y := clampGrid(c.scale.Y * (p.Y - c.box.Min.Y))
	return IVec2{X: x + 1, Y: y + 1}
}

// Unapply is the inverse of IApply: (ip - 1)/scale + min.
func (c *CoordinateConverter) Unapply(ip IVec2) Point {
	return Pt(
		float64(ip.X-1)/c.scale.X+c.box.Min.X,
		float64(ip.Y-1)/c.scale.Y+c.box.Min.Y,
	)
}

// gridNearMin reports whether v sits within 1 grid unit of the grid's
// minimum extreme, used by edgeHugsBoundary.
func gridNearMin(v int32) bool {
	return v <= 1
}

// gridNearMax reports whether v sits within 1 grid unit of the grid's
// maximum (2^24) extreme, used by edgeHugsBoundary.
func gridNearMax(v int32) bool {
	return v >= boxDim-1
}

func init() {
	// Sanity-check at package init that the fudge delta is a positive, finite
	// constant. The finer bounds in SPEC_FULL.md §4.1 (below one fp32 ULP at
	// grid-dimension magnitude, above fp64 rounding there) are not checked
	// here. This never fails for the fixed constants above.
	if fudgeDelta <= 0 || math.IsInf(fudgeDelta, 0) {
		fail("converter: fudge delta must be a small positive finite constant")
	}
}
