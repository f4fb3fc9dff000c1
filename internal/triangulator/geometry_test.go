package triangulator

import "testing"

func TestSegmentIntersect(t *testing.T) {
	pt, tt, s, ok := segmentIntersect(
		Point{0, 0}, Point{2, 2},
		Point{0, 2}, Point{2, 0},
	)
	if !ok {
		t.Fatalf("expected intersection")
	}
	if !samePoint(pt, Point{1, 1}) {
		t.Fatalf("expected intersection at (1,1), got %v", pt)
	}
	if !nearlyEqual(tt, 0.5) || !nearlyEqual(s, 0.5) {
		t.Fatalf("expected t=s=0.5, got t=%v s=%v", tt, s)
	}
}

func TestSegmentIntersectParallel(t *testing.T) {
	_, _, _, ok := segmentIntersect(
		Point{0, 0}, Point{1, 0},
		Point{0, 1}, Point{1, 1},
	)
	if ok {
		t.Fatalf("parallel segments must not report an intersection")
	}
}

func TestSegmentIntersectNoOverlap(t *testing.T) {
	_, _, _, ok := segmentIntersect(
		Point{0, 0}, Point{1, 0},
		Point{5, -1}, Point{5, 1},
	)
	if ok {
		t.Fatalf("disjoint segments must not report an intersection")
	}
}

func TestSegmentIntersectSharedEndpointNotInterior(t *testing.T) {
	_, _, _, ok := segmentIntersect(
		Point{0, 0}, Point{1, 1},
		Point{1, 1}, Point{2, 0},
	)
	if ok {
		t.Fatalf("a crossing exactly at a shared endpoint is not an interior intersection")
	}
}
