package fillpath

// Option configures a FilledPath during construction. Use functional options
// to override the compile-time defaults called out in SPEC_FULL.md's DESIGN
// NOTES (recursion depth, points per subset, size max ratio).
//
// Example:
//
//	fp := fillpath.NewFilledPath(tp, fillpath.WithPointsPerSubset(32))
type Option func(*options)

// options holds the tunable constants of a FilledPath and its subset tree.
type options struct {
	recursionDepth  int
	pointsPerSubset int
	sizeMaxRatio    float64
	triangulator    Triangulator
}

// defaultOptions returns the constants named in SPEC_FULL.md §9: recursion
// depth 12, 64 points per subset, and a 4:1 size max ratio.
func defaultOptions() options {
	return options{
		recursionDepth:  defaultRecursionDepth,
		pointsPerSubset: defaultPointsPerSubset,
		sizeMaxRatio:    defaultSizeMaxRatio,
		triangulator:    nil, // set to the built-in triangulator in NewFilledPath if nil
	}
}

// WithRecursionDepth overrides the subset tree's maximum recursion depth.
func WithRecursionDepth(depth int) Option {
	return func(o *options) {
		o.recursionDepth = depth
	}
}

// WithPointsPerSubset overrides the point-count threshold below which a
// SubPath becomes a leaf.
func WithPointsPerSubset(n int) Option {
	return func(o *options) {
		o.pointsPerSubset = n
	}
}

// WithSizeMaxRatio overrides the long-side/short-side ratio above which a
// SubPath always splits on its longer axis. Zero or negative disables the
// forced-split rule entirely, falling back to the median-projection heuristic
// for every split.
func WithSizeMaxRatio(ratio float64) Option {
	return func(o *options) {
		o.sizeMaxRatio = ratio
	}
}

// WithTriangulator substitutes a caller-provided Triangulator for the
// built-in one, e.g. to inject a stub in tests or a hardware-accelerated
// implementation in production.
func WithTriangulator(t Triangulator) Option {
	return func(o *options) {
		o.triangulator = t
	}
}
