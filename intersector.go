package segint

// Result is the outcome of intersecting two segments: either a single point
// or a collinear overlap segment.
type Result struct {
	Point     Vector
	Overlap   Segment
	isOverlap bool
}

// Single collapses either result variant to one representative point; an
// overlap collapses to its start.
func (r Result) Single() Vector {
	if r.isOverlap {
		return r.Overlap.P1
	}
	return r.Point
}

// Intersect computes the intersection of two segments: an AABB reject, a
// parallel branch (degenerate-to-point test, collinear overlap), or the
// general single-point branch. The general branch validates that both
// segment parameters land in [0,1] (up to epsilon) before reporting a point,
// since the AABB reject alone does not guarantee the infinite lines' crossing
// falls within both finite segments. The overlap variant is not clipped to a:
// its endpoints are b's endpoints expressed along a's line.
func Intersect(a, b Segment, epsilon float64) (Result, bool) {
	if aabbDisjoint(a, b) {
		return Result{}, false
	}

	p, r := a.P1, a.P2.Sub(a.P1)
	q, s := b.P1, b.P2.Sub(b.P1)
	rxs := cross(r, s)

	if !floatsEqual(rxs, 0, epsilon) {
		qp := q.Sub(p)
		t := cross(qp, s) / rxs
		u := cross(qp, r) / rxs
		if t < -epsilon || t > 1+epsilon || u < -epsilon || u > 1+epsilon {
			return Result{}, false
		}
		return Result{Point: p.Add(r.Scale(t))}, true
	}

	aDeg := a.isDegenerate(epsilon)
	bDeg := b.isDegenerate(epsilon)
	if aDeg || bDeg {
		switch {
		case aDeg && bDeg:
			if pointsEqual(a.P1, b.P1, epsilon) {
				return Result{Point: a.P1}, true
			}
			return Result{}, false
		case aDeg:
			return segmentPointIntersect(b, a.P1, epsilon)
		default:
			return segmentPointIntersect(a, b.P1, epsilon)
		}
	}

	qp := q.Sub(p)
	if !floatsEqual(cross(qp, r), 0, epsilon) {
		// Parallel, non-collinear.
		return Result{}, false
	}

	rr := r.Dot(r)
	t0 := qp.Dot(r) / rr
	t1 := t0 + s.Dot(r)/rr
	return Result{
		Overlap:   Segment{P1: p.Add(r.Scale(t0)), P2: p.Add(r.Scale(t1))},
		isOverlap: true,
	}, true
}

// segmentPointIntersect tests whether point lies on seg, via endpoint
// equality or the |AB| ≈ |AP|+|PB| distance identity.
func segmentPointIntersect(seg Segment, point Vector, epsilon float64) (Result, bool) {
	if pointsEqual(seg.P1, point, epsilon) || pointsEqual(seg.P2, point, epsilon) {
		return Result{Point: point}, true
	}
	ab := seg.P2.Sub(seg.P1).Length()
	ap := point.Sub(seg.P1).Length()
	pb := seg.P2.Sub(point).Length()
	if floatsEqual(ab, ap+pb, epsilon) {
		return Result{Point: point}, true
	}
	return Result{}, false
}
