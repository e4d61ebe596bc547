package segint

import "math"

// Segment is an unordered pair of 2D points. A degenerate segment has
// P1 == P2 (a point).
type Segment struct {
	P1, P2 Vector
}

// isDegenerate reports whether the segment's endpoints coincide.
func (s Segment) isDegenerate(epsilon float64) bool {
	return pointsEqual(s.P1, s.P2, epsilon)
}

// orderedEndpoints returns the segment's endpoints in (y, x) sweep order:
// upper is encountered first by an increasing-y sweep, lower second.
func (s Segment) orderedEndpoints() (upper, lower Vector) {
	if compareYX(s.P1, s.P2) <= 0 {
		return s.P1, s.P2
	}
	return s.P2, s.P1
}

// aabbDisjoint reports whether the segments' axis-aligned bounding boxes are
// strictly disjoint in either axis. Endpoint-touching boxes are not rejected.
func aabbDisjoint(a, b Segment) bool {
	aLoX, aHiX := minMax(a.P1.X, a.P2.X)
	bLoX, bHiX := minMax(b.P1.X, b.P2.X)
	if aHiX < bLoX || bHiX < aLoX {
		return true
	}
	aLoY, aHiY := minMax(a.P1.Y, a.P2.Y)
	bLoY, bHiY := minMax(b.P1.Y, b.P2.Y)
	return aHiY < bLoY || bHiY < aLoY
}

// segmentXAtY returns the segment's x-coordinate at the given y, using the
// exact line equation. Segment.P1/P2 carry no ordering guarantee, so the
// endpoints are sorted by y before the clamp/interpolate logic runs. A
// horizontal segment (within epsilon) returns its leftmost x, which is the
// convention used for sweep-status insertion.
func segmentXAtY(seg Segment, y, epsilon float64) float64 {
	top, bottom := seg.P1, seg.P2
	if top.Y > bottom.Y {
		top, bottom = bottom, top
	}
	if floatsEqual(top.Y, bottom.Y, epsilon) {
		lo, _ := minMax(top.X, bottom.X)
		return lo
	}
	if y <= top.Y {
		return top.X
	}
	if y >= bottom.Y {
		return bottom.X
	}
	return top.X + (y-top.Y)*(bottom.X-top.X)/(bottom.Y-top.Y)
}

// slopeXY returns dx/dy for the segment, +Inf for a horizontal one. Used as
// a tie-breaker when two segments share an x position at the current sweep y.
func slopeXY(seg Segment, epsilon float64) float64 {
	if floatsEqual(seg.P1.Y, seg.P2.Y, epsilon) {
		return math.Inf(1)
	}
	return (seg.P2.X - seg.P1.X) / (seg.P2.Y - seg.P1.Y)
}

// pointOnSegmentAtSweepY reports whether point lies on seg's geometry,
// checked via the segment's vertical span and then, for a horizontal segment,
// its x span, otherwise the exact line equation.
func pointOnSegmentAtSweepY(seg Segment, point Vector, epsilon float64) bool {
	lo, hi := minMax(seg.P1.Y, seg.P2.Y)
	if point.Y < lo-epsilon || point.Y > hi+epsilon {
		return false
	}
	if floatsEqual(seg.P1.Y, seg.P2.Y, epsilon) {
		xLo, xHi := minMax(seg.P1.X, seg.P2.X)
		return point.X >= xLo-epsilon && point.X <= xHi+epsilon
	}
	return floatsEqual(segmentXAtY(seg, point.Y, epsilon), point.X, epsilon)
}
