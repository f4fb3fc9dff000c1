package fillpath

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the caller-input surfaces of fillpath (Path and
// TessellatedPath construction). Everything past that boundary treats
// contract violations as programmer errors and panics instead; see §7 of
// SPEC_FULL.md.
var (
	// ErrEmptyPath is returned by Flatten when the path has no elements.
	ErrEmptyPath = errors.New("fillpath: path has no elements")

	// ErrNoCurrentPoint is returned when a drawing operation is issued before
	// any MoveTo has established a current point.
	ErrNoCurrentPoint = errors.New("fillpath: no current point")

	// ErrDegenerateBounds is returned by Flatten when no contour keeps at
	// least two points, so there is no geometry to build a grid over.
	ErrDegenerateBounds = errors.New("fillpath: path bounding box is degenerate")
)

// fail panics with the "fillpath: <message>" convention used throughout this
// package for contract violations that are not caller-recoverable.
func fail(format string, args ...any) {
	panic(fmt.Sprintf("fillpath: "+format, args...))
}
