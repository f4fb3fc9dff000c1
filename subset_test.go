package fillpath

import "testing"

func TestBuildSubsetTreeSplitsBeyondPointThreshold(t *testing.T) {
	// Two well-separated squares give chooseSplit a clean axis to split on,
	// so a low points-per-subset threshold should produce two leaves.
	box := BoundingBox{Min: Pt(0, 0), Max: Pt(100, 10)}
	sp := NewSubPath(box, []Contour{
		plainContour(Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)),
		plainContour(Pt(90, 0), Pt(94, 0), Pt(94, 4), Pt(90, 4)),
	})
	root := newSubsetTree(sp, 12, 4, 4.0, NewBuiltinTriangulator())
	var leaves []*Subset
	root.collectLeaves(&leaves)
	if len(leaves) < 2 {
		t.Fatalf("expected splitting to produce at least 2 leaves, got %d", len(leaves))
	}
}

func TestBuildSubsetTreeStopsAtRecursionDepthZero(t *testing.T) {
	sp := squareSubPath()
	root := newSubsetTree(sp, 0, 1, 4.0, NewBuiltinTriangulator())
	if !root.IsLeaf() {
		t.Fatalf("expected a recursion depth of 0 to keep the root a leaf")
	}
}

func TestSubsetMakeReadyOnInteriorNodeMergesChildren(t *testing.T) {
	box := BoundingBox{Min: Pt(0, 0), Max: Pt(100, 10)}
	sp := NewSubPath(box, []Contour{
		plainContour(Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)),
		plainContour(Pt(90, 0), Pt(94, 0), Pt(94, 4), Pt(90, 4)),
	})
	root := newSubsetTree(sp, 12, 4, 4.0, NewBuiltinTriangulator())
	if root.IsLeaf() {
		t.Skip("this bounding box/threshold combination did not split; nothing to assert")
	}
	root.makeReady()
	if root.sizeAttr != root.left.sizeAttr+root.right.sizeAttr {
		t.Fatalf("expected interior sizeAttr to be the sum of its children's, got %d vs %d+%d",
			root.sizeAttr, root.left.sizeAttr, root.right.sizeAttr)
	}
	if root.sizeIdx != root.left.sizeIdx+root.right.sizeIdx {
		t.Fatalf("expected interior sizeIdx to be the sum of its children's, got %d vs %d+%d",
			root.sizeIdx, root.left.sizeIdx, root.right.sizeIdx)
	}
	want := unionSortedInts(root.left.windingNumbers, root.right.windingNumbers)
	if len(root.windingNumbers) != len(want) {
		t.Fatalf("expected interior windingNumbers to be the union of its children's, got %v want %v",
			root.windingNumbers, want)
	}
}

func TestBoxOutsidePlaneRejectsOnlyFullyExteriorBoxes(t *testing.T) {
	box := BoundingBox{Min: Pt(0, 0), Max: Pt(4, 4)}
	inside := clipPlane{1, 0, 1000}   // x + 1000 >= 0, always true here
	outside := clipPlane{1, 0, -1000} // x - 1000 >= 0, never true here
	straddling := clipPlane{1, 0, -2} // x >= 2, true for half the box

	if boxOutsidePlane(box, inside) {
		t.Fatalf("expected an all-encompassing plane to not cull the box")
	}
	if !boxOutsidePlane(box, outside) {
		t.Fatalf("expected a fully disjoint plane to cull the box")
	}
	if boxOutsidePlane(box, straddling) {
		t.Fatalf("expected a straddling plane to not cull the box (conservative culling keeps partial overlaps)")
	}
}
