package fillpath

import "testing"

func squareSubPath() *SubPath {
	box := BoundingBox{Min: Pt(0, 0), Max: Pt(4, 4)}
	return NewSubPath(box, []Contour{
		plainContour(Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)),
	})
}

func TestNewBuilderTriangulatesSquare(t *testing.T) {
	b := NewBuilder(squareSubPath(), nil)
	windings := b.Windings()
	if len(windings) == 0 {
		t.Fatalf("expected the builder to report at least one winding number")
	}
	sawOne := false
	for _, w := range windings {
		if w == 1 {
			sawOne = true
		}
	}
	if !sawOne {
		t.Fatalf("expected a CCW square to produce a winding-1 region, got %v", windings)
	}
	if len(b.IndicesForWinding(1))%3 != 0 {
		t.Fatalf("expected a whole number of triangles' worth of indices, got %d", len(b.IndicesForWinding(1)))
	}
}

func TestNewBuilderIndicesForFillRuleAggregatesWindings(t *testing.T) {
	b := NewBuilder(squareSubPath(), nil)
	nonzero := b.IndicesForFillRule(NonzeroFillRule)
	if len(nonzero) == 0 {
		t.Fatalf("expected the nonzero fill rule to select the square's winding-1 region")
	}
	complement := b.IndicesForFillRule(ComplementNonzeroFillRule)
	if len(complement) != 0 {
		t.Fatalf("expected the complement rule to select nothing inside a simple filled square, got %d indices", len(complement))
	}
}

func TestNewBuilderHandlesDegenerateBox(t *testing.T) {
	// A bounding box collapsed to a single point (all contour vertices
	// identical) must not panic; NewBuilder inflates it before building a
	// CoordinateConverter.
	box := BoxFromPoint(Pt(2, 2))
	sp := NewSubPath(box, []Contour{plainContour(Pt(2, 2), Pt(2, 2), Pt(2, 2))})
	b := NewBuilder(sp, nil)
	if b == nil {
		t.Fatalf("expected NewBuilder to return a usable Builder for a degenerate box")
	}
}

func TestNewBuilderPointsMatchesVertexCountUsed(t *testing.T) {
	b := NewBuilder(squareSubPath(), nil)
	if len(b.Points()) < 4 {
		t.Fatalf("expected at least the 4 input corners to survive into the point table, got %d", len(b.Points()))
	}
}
