package fillpath

import "testing"

func plainContour(pts ...Point) Contour {
	c := make(Contour, len(pts))
	for i, p := range pts {
		c[i] = subContourPoint{pos: p}
	}
	return c
}

func TestSubPathPointCountSumsAllContours(t *testing.T) {
	sp := NewSubPath(
		BoundingBox{Min: Pt(0, 0), Max: Pt(10, 10)},
		[]Contour{
			plainContour(Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)),
			plainContour(Pt(6, 6), Pt(8, 6), Pt(8, 8)),
		},
	)
	if got := sp.PointCount(); got != 7 {
		t.Fatalf("expected 7 points across both contours, got %d", got)
	}
}

func TestChooseSplitForcesLongAxisWhenElongated(t *testing.T) {
	sp := NewSubPath(
		BoundingBox{Min: Pt(0, 0), Max: Pt(100, 1)},
		[]Contour{plainContour(Pt(0, 0), Pt(100, 0), Pt(100, 1), Pt(0, 1))},
	)
	plan := sp.chooseSplit(4.0)
	if !plan.valid {
		t.Fatalf("expected a valid split plan for a heavily elongated box")
	}
	if plan.ax != axisX {
		t.Fatalf("expected the forced split to fall on the longer (X) axis, got %v", plan.ax)
	}
	if plan.value != 50 {
		t.Fatalf("expected the forced split at the box midpoint (50), got %v", plan.value)
	}
}

func TestSplitPartitionsPointsAndShrinksCount(t *testing.T) {
	// Two disjoint squares, one on each side of x=5: splitting there hands
	// each child only its own square's points, with no shared crossing
	// points to reintroduce the parent's total on both sides.
	box := BoundingBox{Min: Pt(0, 0), Max: Pt(10, 10)}
	sp := NewSubPath(box, []Contour{
		plainContour(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)),
		plainContour(Pt(9, 9), Pt(10, 9), Pt(10, 10), Pt(9, 10)),
	})
	plan := splitPlan{valid: true, ax: axisX, value: 5}
	left, right, ok := sp.Split(plan)
	if !ok {
		t.Fatalf("expected the split to succeed")
	}
	if left.PointCount() >= sp.PointCount() && right.PointCount() >= sp.PointCount() {
		t.Fatalf("expected at least one child to have fewer points than the parent")
	}
	if left.Bounds().Max.X > 5.0001 {
		t.Fatalf("expected the left child to stay left of the split value, got max.X=%v", left.Bounds().Max.X)
	}
	if right.Bounds().Min.X < 4.9999 {
		t.Fatalf("expected the right child to stay right of the split value, got min.X=%v", right.Bounds().Min.X)
	}
}

func TestSplitOfSingleRectangleExactlyBisectedDoesNotShrink(t *testing.T) {
	// A single axis-aligned rectangle split exactly through its middle gives
	// each side two crossing points in place of the two corners it loses, so
	// both children end up with the same point count as the parent: the known blind spot of the point-count
	// stopping rule (a degenerate contour exactly astride the split line).
	box := BoundingBox{Min: Pt(0, 0), Max: Pt(10, 10)}
	sp := NewSubPath(box, []Contour{
		plainContour(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)),
	})
	_, _, ok := sp.Split(splitPlan{valid: true, ax: axisX, value: 5})
	if ok {
		t.Fatalf("expected the split to report failure since neither child shrinks below the parent's point count")
	}
}

func TestSplitRefusesInvalidPlan(t *testing.T) {
	sp := NewSubPath(BoundingBox{Min: Pt(0, 0), Max: Pt(1, 1)}, nil)
	_, _, ok := sp.Split(splitPlan{valid: false})
	if ok {
		t.Fatalf("expected Split to refuse an invalid plan")
	}
}

func TestContourHugsBoundaryRequiresFourCorners(t *testing.T) {
	c := Contour{
		{pos: Pt(0, 0), flags: onMinX | onMinY},
		{pos: Pt(10, 0), flags: onMaxX | onMinY},
		{pos: Pt(10, 10), flags: onMaxX | onMaxY},
		{pos: Pt(0, 10), flags: onMinX | onMaxY},
	}
	if !contourHugsBoundary(c) {
		t.Fatalf("expected a rectangle traced exactly through all four corners to hug the boundary")
	}
}

func TestContourHugsBoundaryRejectsInteriorContour(t *testing.T) {
	c := plainContour(Pt(1, 1), Pt(2, 1), Pt(2, 2), Pt(1, 2))
	if contourHugsBoundary(c) {
		t.Fatalf("expected an interior contour with no boundary flags to not hug the boundary")
	}
}
