package segint

import "errors"

// Domain errors returned at the package boundary. Input failures are detected
// before any computation starts. The engine performs no invariant checks
// during the sweep, so no function in this package returns ErrInternal.
var (
	// ErrInvalidData indicates a non-finite coordinate was supplied.
	ErrInvalidData = errors.New("segint: invalid data: non-finite coordinate")
	// ErrInvalidSearchParameter indicates an incompatible combination of
	// input shape and endpoint policy, e.g. running the inclusive policy
	// on a polyline.
	ErrInvalidSearchParameter = errors.New("segint: invalid search parameter")
	// ErrResultsAlreadyTaken indicates Drain was called more than once on
	// the same engine run.
	ErrResultsAlreadyTaken = errors.New("segint: results already taken")
	// ErrInternal names an engine invariant violation. It is declared for
	// callers' errors.Is checks but is not returned by any function here.
	ErrInternal = errors.New("segint: internal error")
)
