package fillpath

import "testing"

func TestSignedToUnsignedBijection(t *testing.T) {
	cases := map[int]int{0: 0, -1: 1, 1: 2, -2: 3, 2: 4, -3: 5, 3: 6}
	for w, want := range cases {
		if got := signedToUnsigned(w); got != want {
			t.Fatalf("signedToUnsigned(%d): expected %d, got %d", w, want, got)
		}
	}
}

func TestFillChunkFromWindingNumberIsInjective(t *testing.T) {
	seen := make(map[int]int)
	for w := -5; w <= 5; w++ {
		chunk := FillChunkFromWindingNumber(w)
		if prev, ok := seen[chunk]; ok {
			t.Fatalf("winding %d and %d collided on chunk %d", w, prev, chunk)
		}
		seen[chunk] = w
	}
}

func TestFillChunkFromWindingNumberZeroReusesComplementChunk(t *testing.T) {
	if got := FillChunkFromWindingNumber(0); got != int(ComplementNonzeroFillRule) {
		t.Fatalf("expected winding 0 to reuse the complement-nonzero chunk, got %d", got)
	}
}

func TestFillChunkFromWindingNumberNeverCollidesWithFillRuleChunks(t *testing.T) {
	ruleChunks := map[int]bool{}
	for _, r := range []FillRule{NonzeroFillRule, ComplementNonzeroFillRule, OddEvenFillRule, ComplementOddEvenFillRule} {
		ruleChunks[FillChunkFromFillRule(r)] = true
	}
	for w := -5; w <= 5; w++ {
		if w == 0 {
			continue // winding 0 legitimately reuses ComplementNonzeroFillRule's chunk
		}
		if chunk := FillChunkFromWindingNumber(w); ruleChunks[chunk] {
			t.Fatalf("winding %d's chunk %d collides with a reserved fill-rule chunk", w, chunk)
		}
	}
}

func TestFillRuleAccepts(t *testing.T) {
	cases := []struct {
		rule   FillRule
		w      int
		accept bool
	}{
		{NonzeroFillRule, 0, false},
		{NonzeroFillRule, 1, true},
		{NonzeroFillRule, -3, true},
		{ComplementNonzeroFillRule, 0, true},
		{ComplementNonzeroFillRule, 2, false},
		{OddEvenFillRule, 1, true},
		{OddEvenFillRule, 2, false},
		{ComplementOddEvenFillRule, 2, true},
		{ComplementOddEvenFillRule, 3, false},
	}
	for _, c := range cases {
		if got := fillRuleAccepts(c.rule, c.w); got != c.accept {
			t.Fatalf("fillRuleAccepts(%v, %d): expected %v, got %v", c.rule, c.w, c.accept, got)
		}
	}
}

func TestFillVertexBufferLayoutMatchesFillVertexSize(t *testing.T) {
	if FillVertexBufferLayout.ArrayStride != 8 {
		t.Fatalf("expected an 8-byte stride for a single fp32 2-vector, got %d", FillVertexBufferLayout.ArrayStride)
	}
	if len(FillVertexBufferLayout.Attributes) != 1 {
		t.Fatalf("expected exactly one vertex attribute, got %d", len(FillVertexBufferLayout.Attributes))
	}
}

func TestEdgeVertexBufferLayoutMatchesEdgeVertexSize(t *testing.T) {
	if EdgeVertexBufferLayout.ArrayStride != 24 {
		t.Fatalf("expected a 24-byte stride for position+normal+sign+z, got %d", EdgeVertexBufferLayout.ArrayStride)
	}
	if len(EdgeVertexBufferLayout.Attributes) != 4 {
		t.Fatalf("expected four vertex attributes (position, normal, sign, z), got %d", len(EdgeVertexBufferLayout.Attributes))
	}
	wantOffsets := []uint64{0, 8, 16, 20}
	for i, want := range wantOffsets {
		if got := EdgeVertexBufferLayout.Attributes[i].Offset; got != want {
			t.Fatalf("attribute %d: expected offset %d, got %d", i, want, got)
		}
	}
}
