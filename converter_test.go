package fillpath

import "testing"

func TestCoordinateConverterRoundTrip(t *testing.T) {
	box := BoundingBox{Min: Pt(-10, -10), Max: Pt(10, 10)}
	c := NewCoordinateConverter(box)

	for _, p := range []Point{{-10, -10}, {10, 10}, {0, 0}, {5, -3}} {
		ip := c.IApply(p)
		back := c.Unapply(ip)
		if !back.Approx(p, 1e-6) {
			t.Fatalf("round trip for %v produced %v (via grid %v)", p, back, ip)
		}
	}
}

func TestCoordinateConverterGridRange(t *testing.T) {
	box := BoundingBox{Min: Pt(0, 0), Max: Pt(1, 1)}
	c := NewCoordinateConverter(box)
	minCorner := c.IApply(Pt(0, 0))
	maxCorner := c.IApply(Pt(1, 1))
	if minCorner.X != 1 || minCorner.Y != 1 {
		t.Fatalf("expected the box minimum to map to grid (1,1), got %v", minCorner)
	}
	if maxCorner.X != 1+boxDim || maxCorner.Y != 1+boxDim {
		t.Fatalf("expected the box maximum to map to grid (1+2^24,1+2^24), got %v", maxCorner)
	}
}

func TestCoordinateConverterClampsOutOfBoundsInput(t *testing.T) {
	box := BoundingBox{Min: Pt(0, 0), Max: Pt(1, 1)}
	c := NewCoordinateConverter(box)
	ip := c.IApply(Pt(-5, 5))
	if ip.X != 1 {
		t.Fatalf("expected an out-of-range-below coordinate to clamp to grid 1, got %v", ip.X)
	}
	if ip.Y != 1+boxDim {
		t.Fatalf("expected an out-of-range-above coordinate to clamp to the grid maximum, got %v", ip.Y)
	}
}

func TestCoordinateConverterPanicsOnDegenerateBox(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected NewCoordinateConverter to panic on a zero-width box")
		}
	}()
	NewCoordinateConverter(BoundingBox{Min: Pt(0, 0), Max: Pt(0, 5)})
}

func TestCoordinateConverterFudgeDeltaIsSmallAndPositive(t *testing.T) {
	c := NewCoordinateConverter(BoundingBox{Min: Pt(0, 0), Max: Pt(1, 1)})
	if c.FudgeDelta() <= 0 {
		t.Fatalf("expected a positive fudge delta, got %v", c.FudgeDelta())
	}
	if c.FudgeDelta() >= 1e-3 {
		t.Fatalf("expected a sub-fp32-ULP fudge delta, got %v", c.FudgeDelta())
	}
}
