// Package segint detects and reports pairwise intersections among a finite
// collection of 2D line segments.
//
// For small collections it runs a direct O(n²) comparison of every pair
// (BruteForce); for larger ones it runs a Bentley–Ottmann sweep-line
// algorithm (Engine) that reports, for every intersection point, the set of
// input segments meeting there. The package façade (IsSelfIntersecting,
// SelfIntersections, and their *Inclusive variants) picks the strategy by
// segment count automatically.
//
// # Endpoint policy
//
// Every entry point is either inclusive — an intersection is reported even
// when it's only two segments touching at a shared endpoint — or exclusive,
// which suppresses those endpoint-only touches. Polyline input (Polyline)
// always uses the exclusive policy, since adjacent segments in a polyline
// share a vertex by construction; its inclusive methods report
// ErrInvalidSearchParameter instead of running.
//
// # Tolerance
//
// All coordinate comparisons use ULP-style approximate equality rather than
// exact floating-point equality. Engine.WithEpsilon overrides the default
// tolerance (DefaultEpsilon); the package-level façade functions use the
// default.
//
// # Errors
//
//	ErrInvalidData            non-finite coordinate in the input
//	ErrInvalidSearchParameter inclusive policy requested on a Polyline
//	ErrResultsAlreadyTaken    Engine.Drain called more than once
//	ErrInternal               engine invariant violation (not returned by any function)
package segint
