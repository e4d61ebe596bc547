package segint

// sweepThreshold is the segment-count cutoff below which the quadratic
// brute-force driver is used instead of the sweep engine. It is an empirical
// heuristic, not user-tunable.
const sweepThreshold = 25

// IsSelfIntersecting reports whether any two segments in the collection
// intersect, including pairs that only touch at a shared endpoint.
func IsSelfIntersecting(segments []Segment) (bool, error) {
	return hasIntersection(segments, Inclusive)
}

// IsSelfIntersectingInclusive reports whether any two segments intersect,
// including endpoint-only touches. Equivalent to IsSelfIntersecting for raw
// segment collections.
func IsSelfIntersectingInclusive(segments []Segment) (bool, error) {
	return hasIntersection(segments, Inclusive)
}

// SelfIntersections returns every intersection among the segments, excluding
// pairs that only touch at a shared endpoint. Below sweepThreshold segments
// the brute-force driver runs, and a point where k segments meet yields one
// record per pair; otherwise the sweep engine runs and yields one merged
// record per point.
func SelfIntersections(segments []Segment) ([]IntersectionRecord, error) {
	return allIntersections(segments, Exclusive)
}

// SelfIntersectionsInclusive returns every intersection among the segments,
// including pairs that only touch at a shared endpoint. Records follow the
// same per-pair versus merged convention as SelfIntersections.
func SelfIntersectionsInclusive(segments []Segment) ([]IntersectionRecord, error) {
	return allIntersections(segments, Inclusive)
}

func hasIntersection(segments []Segment, policy EndpointPolicy) (bool, error) {
	if len(segments) < sweepThreshold {
		records, err := BruteForce(segments, policy, DefaultEpsilon)
		if err != nil {
			return false, err
		}
		return len(records) > 0, nil
	}

	eng := NewEngine().
		WithIgnoreEndPointIntersections(policy == Exclusive).
		WithStopAtFirstIntersection(true)
	if err := eng.Load(segments); err != nil {
		return false, err
	}
	if err := eng.Compute(); err != nil {
		return false, err
	}
	records, err := eng.Drain()
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

func allIntersections(segments []Segment, policy EndpointPolicy) ([]IntersectionRecord, error) {
	if len(segments) < sweepThreshold {
		return BruteForce(segments, policy, DefaultEpsilon)
	}

	eng := NewEngine().WithIgnoreEndPointIntersections(policy == Exclusive)
	if err := eng.Load(segments); err != nil {
		return nil, err
	}
	if err := eng.Compute(); err != nil {
		return nil, err
	}
	return eng.Drain()
}
