package segint

import "testing"

func TestIntersectGeneralCrossing(t *testing.T) {
	a := Segment{P1: Vector{X: 0, Y: 0}, P2: Vector{X: 2, Y: 2}}
	b := Segment{P1: Vector{X: 0, Y: 2}, P2: Vector{X: 2, Y: 0}}
	res, ok := Intersect(a, b, DefaultEpsilon)
	if !ok {
		t.Fatal("expected an intersection")
	}
	if !pointsEqual(res.Single(), Vector{X: 1, Y: 1}, DefaultEpsilon) {
		t.Errorf("got %v, want (1,1)", res.Single())
	}
}

// TestIntersectGeneralOutOfBounds guards the bounds check on both segment
// parameters: the segments' AABBs overlap (b's box contains a's box) but the
// underlying lines only cross outside a's own extent.
func TestIntersectGeneralOutOfBounds(t *testing.T) {
	a := Segment{P1: Vector{X: 0, Y: 0}, P2: Vector{X: 1, Y: 1}}
	b := Segment{P1: Vector{X: 0, Y: 3}, P2: Vector{X: 3, Y: 0}}
	if _, ok := Intersect(a, b, DefaultEpsilon); ok {
		t.Error("expected no intersection: true crossing point lies outside segment a")
	}
}

func TestIntersectParallelDisjoint(t *testing.T) {
	a := Segment{P1: Vector{X: 0, Y: 0}, P2: Vector{X: 1, Y: 0}}
	b := Segment{P1: Vector{X: 0, Y: 1}, P2: Vector{X: 1, Y: 1}}
	if _, ok := Intersect(a, b, DefaultEpsilon); ok {
		t.Error("expected no intersection between parallel, non-collinear segments")
	}
}

func TestIntersectCollinearOverlap(t *testing.T) {
	a := Segment{P1: Vector{X: 0, Y: 0}, P2: Vector{X: 2, Y: 0}}
	b := Segment{P1: Vector{X: 1, Y: 0}, P2: Vector{X: 3, Y: 0}}
	res, ok := Intersect(a, b, DefaultEpsilon)
	if !ok {
		t.Fatal("expected a collinear overlap")
	}
	if !res.isOverlap {
		t.Fatal("expected the overlap variant")
	}
	upper, lower := res.Overlap.orderedEndpoints()
	if !pointsEqual(upper, Vector{X: 1, Y: 0}, DefaultEpsilon) || !pointsEqual(lower, Vector{X: 3, Y: 0}, DefaultEpsilon) {
		t.Errorf("got overlap [%v, %v], want unclipped [(1,0), (3,0)]", upper, lower)
	}
}

func TestIntersectCollinearIdentical(t *testing.T) {
	a := Segment{P1: Vector{X: 0, Y: 0}, P2: Vector{X: 1, Y: 0}}
	res, ok := Intersect(a, a, DefaultEpsilon)
	if !ok {
		t.Fatal("expected an overlap for identical segments")
	}
	if !pointsEqual(res.Single(), Vector{X: 0, Y: 0}, DefaultEpsilon) {
		t.Errorf("got %v, want (0,0)", res.Single())
	}
}

func TestIntersectDegenerateOnSegment(t *testing.T) {
	seg := Segment{P1: Vector{X: 0, Y: 0}, P2: Vector{X: 2, Y: 2}}
	point := Segment{P1: Vector{X: 1, Y: 1}, P2: Vector{X: 1, Y: 1}}
	res, ok := Intersect(seg, point, DefaultEpsilon)
	if !ok {
		t.Fatal("expected the degenerate point to lie on the segment")
	}
	if !pointsEqual(res.Single(), Vector{X: 1, Y: 1}, DefaultEpsilon) {
		t.Errorf("got %v, want (1,1)", res.Single())
	}
}

func TestIntersectDegenerateOffSegment(t *testing.T) {
	seg := Segment{P1: Vector{X: 0, Y: 0}, P2: Vector{X: 2, Y: 2}}
	point := Segment{P1: Vector{X: 1, Y: 0}, P2: Vector{X: 1, Y: 0}}
	if _, ok := Intersect(seg, point, DefaultEpsilon); ok {
		t.Error("expected no intersection: the point is off the segment's line")
	}
}

func TestIntersectBothDegenerateSamePoint(t *testing.T) {
	a := Segment{P1: Vector{X: 1, Y: 1}, P2: Vector{X: 1, Y: 1}}
	b := Segment{P1: Vector{X: 1, Y: 1}, P2: Vector{X: 1, Y: 1}}
	res, ok := Intersect(a, b, DefaultEpsilon)
	if !ok {
		t.Fatal("expected two coincident points to intersect")
	}
	if !pointsEqual(res.Single(), Vector{X: 1, Y: 1}, DefaultEpsilon) {
		t.Errorf("got %v, want (1,1)", res.Single())
	}
}

func TestIntersectAABBReject(t *testing.T) {
	a := Segment{P1: Vector{X: 0, Y: 0}, P2: Vector{X: 1, Y: 1}}
	b := Segment{P1: Vector{X: 5, Y: 5}, P2: Vector{X: 6, Y: 6}}
	if _, ok := Intersect(a, b, DefaultEpsilon); ok {
		t.Error("expected the AABB reject to short-circuit disjoint segments")
	}
}

func TestIntersectSharedEndpointOnly(t *testing.T) {
	a := Segment{P1: Vector{X: 0, Y: 0}, P2: Vector{X: 1, Y: 1}}
	b := Segment{P1: Vector{X: 1, Y: 1}, P2: Vector{X: 2, Y: 0}}
	res, ok := Intersect(a, b, DefaultEpsilon)
	if !ok {
		t.Fatal("expected the shared endpoint to report as an intersection")
	}
	if !pointsEqual(res.Single(), Vector{X: 1, Y: 1}, DefaultEpsilon) {
		t.Errorf("got %v, want (1,1)", res.Single())
	}
}
