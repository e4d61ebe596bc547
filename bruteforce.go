package segint

import "fmt"

// EndpointPolicy selects whether an intersection driver reports
// endpoint-only touches (Inclusive) or suppresses them (Exclusive).
type EndpointPolicy int

const (
	// Inclusive reports every intersection, including pairs that only
	// touch at a shared endpoint.
	Inclusive EndpointPolicy = iota
	// Exclusive skips a pair when any endpoint of one segment ULP-equals
	// any endpoint of the other.
	Exclusive
)

// IntersectionRecord pairs an intersection point with the sorted,
// deduplicated indices of the segments that meet there.
type IntersectionRecord struct {
	Point    Vector
	Segments []int
}

// BruteForce enumerates all unordered pairs of segments and reports their
// intersections directly, in O(n^2) time. Records are returned in
// (i ascending, then j ascending) pair-enumeration order. When three or more
// segments meet at one point, one record per pair is emitted rather than a
// single merged record; the sweep engine merges them.
func BruteForce(segments []Segment, policy EndpointPolicy, epsilon float64) ([]IntersectionRecord, error) {
	for i, s := range segments {
		if !isFiniteVector(s.P1) || !isFiniteVector(s.P2) {
			return nil, fmt.Errorf("%w: segment %d has a non-finite endpoint", ErrInvalidData, i)
		}
	}

	var records []IntersectionRecord
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			a, b := segments[i], segments[j]
			if policy == Exclusive && shareEndpoint(a, b, epsilon) {
				continue
			}
			res, ok := Intersect(a, b, epsilon)
			if !ok {
				continue
			}
			records = append(records, IntersectionRecord{Point: res.Single(), Segments: []int{i, j}})
		}
	}
	return records, nil
}

// shareEndpoint reports whether a and b have any endpoint in common, up to
// epsilon.
func shareEndpoint(a, b Segment, epsilon float64) bool {
	return pointsEqual(a.P1, b.P1, epsilon) || pointsEqual(a.P1, b.P2, epsilon) ||
		pointsEqual(a.P2, b.P1, epsilon) || pointsEqual(a.P2, b.P2, epsilon)
}
