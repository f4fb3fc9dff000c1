package fillpath

import "testing"

func TestEmptyBoundingBoxIsEmpty(t *testing.T) {
	if !EmptyBoundingBox().IsEmpty() {
		t.Fatalf("EmptyBoundingBox must report IsEmpty")
	}
}

func TestBoundingBoxUnionGrowsFromEmpty(t *testing.T) {
	b := EmptyBoundingBox()
	b = b.Union(Pt(1, 2))
	b = b.Union(Pt(-3, 5))
	if b.IsEmpty() {
		t.Fatalf("expected a non-empty box after unioning two points")
	}
	if b.Min != (Point{-3, 2}) || b.Max != (Point{1, 5}) {
		t.Fatalf("unexpected union result: min=%v max=%v", b.Min, b.Max)
	}
}

func TestBoundingBoxUnionBoxWithEmptyIsIdentity(t *testing.T) {
	b := BoxFromPoint(Pt(1, 1)).Union(Pt(4, 4))
	got := b.UnionBox(EmptyBoundingBox())
	if got != b {
		t.Fatalf("unioning with an empty box must be a no-op, got %v", got)
	}
	got2 := EmptyBoundingBox().UnionBox(b)
	if got2 != b {
		t.Fatalf("unioning an empty box with a real one must return the real one, got %v", got2)
	}
}

func TestBoundingBoxWidthHeight(t *testing.T) {
	b := BoundingBox{Min: Pt(1, 2), Max: Pt(5, 9)}
	if b.Width() != 4 {
		t.Fatalf("Width: expected 4, got %v", b.Width())
	}
	if b.Height() != 7 {
		t.Fatalf("Height: expected 7, got %v", b.Height())
	}
}

func TestBoundingBoxContains(t *testing.T) {
	b := BoundingBox{Min: Pt(0, 0), Max: Pt(10, 10)}
	if !b.Contains(Pt(5, 5)) {
		t.Fatalf("expected interior point to be contained")
	}
	if !b.Contains(Pt(0, 0)) || !b.Contains(Pt(10, 10)) {
		t.Fatalf("expected the closed box to contain its own corners")
	}
	if b.Contains(Pt(-1, 5)) {
		t.Fatalf("expected an exterior point to be rejected")
	}
}

func TestBoundingBoxInflate(t *testing.T) {
	b := BoxFromPoint(Pt(2, 2)).Inflate(1)
	if b.Min != (Point{1, 1}) || b.Max != (Point{3, 3}) {
		t.Fatalf("unexpected inflate result: %v", b)
	}
}

func TestBoundingBoxAsRectangleIsCCW(t *testing.T) {
	b := BoundingBox{Min: Pt(0, 0), Max: Pt(4, 4)}
	corners := b.AsRectangle()
	// Shoelace sum of a CCW closed quad is positive.
	var sum float64
	for i := 0; i < 4; i++ {
		p, q := corners[i], corners[(i+1)%4]
		sum += p.X*q.Y - q.X*p.Y
	}
	if sum <= 0 {
		t.Fatalf("expected AsRectangle to wind counter-clockwise, shoelace sum was %v", sum)
	}
}

func TestBoundingBoxToF32(t *testing.T) {
	b := BoundingBox{Min: Pt(1.5, -2.5), Max: Pt(3.5, 4.5)}
	f := b.ToF32()
	if f.Min != ([2]float32{1.5, -2.5}) || f.Max != ([2]float32{3.5, 4.5}) {
		t.Fatalf("unexpected ToF32 result: %v", f)
	}
}
