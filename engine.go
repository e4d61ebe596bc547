package segint

import (
	"fmt"
	"sort"
)

// engineState is the sweep engine's lifecycle: Configured -> Loaded ->
// Computed -> Drained.
type engineState int

const (
	stateConfigured engineState = iota
	stateLoaded
	stateComputed
	stateDrained
)

// Engine runs the Bentley-Ottmann sweep-line algorithm over a set of
// segments, reporting every intersection point and the indices of the
// segments meeting there. An Engine is used once: configure it, Load
// segments, Compute, then Drain the results exactly one time.
type Engine struct {
	state engineState

	ignoreEndPoints bool
	stopAtFirst     bool
	epsilon         float64

	segments []Segment
	queue    *eventQueue
	status   *status
	results  []IntersectionRecord
}

// NewEngine returns an Engine in the Configured state, using DefaultEpsilon
// until WithEpsilon overrides it.
func NewEngine() *Engine {
	return &Engine{state: stateConfigured, epsilon: DefaultEpsilon}
}

func (e *Engine) requireConfigured(method string) {
	if e.state != stateConfigured {
		panic(fmt.Sprintf("segint: %s called outside the Configured state", method))
	}
}

// WithIgnoreEndPointIntersections sets the endpoint-exclusion policy: when
// true, an event whose contributors are only endpoint-touching (no interior
// crossing) is suppressed.
func (e *Engine) WithIgnoreEndPointIntersections(v bool) *Engine {
	e.requireConfigured("WithIgnoreEndPointIntersections")
	e.ignoreEndPoints = v
	return e
}

// WithStopAtFirstIntersection sets early termination: Compute halts as soon
// as the first record is produced.
func (e *Engine) WithStopAtFirstIntersection(v bool) *Engine {
	e.requireConfigured("WithStopAtFirstIntersection")
	e.stopAtFirst = v
	return e
}

// WithEpsilon overrides the tolerance used for every ULP-style comparison
// the engine performs. Values <= 0 are ignored and the current tolerance
// (DefaultEpsilon unless set earlier) is kept.
func (e *Engine) WithEpsilon(eps float64) *Engine {
	e.requireConfigured("WithEpsilon")
	if eps > 0 {
		e.epsilon = eps
	}
	return e
}

// Load validates and binds segments, and initializes the event queue from
// their endpoints. Segments are referenced, not copied; the caller's slice
// must outlive the engine for the duration of the run.
func (e *Engine) Load(segments []Segment) error {
	if e.state != stateConfigured {
		panic("segint: Load called outside the Configured state")
	}
	for i, s := range segments {
		if !isFiniteVector(s.P1) || !isFiniteVector(s.P2) {
			return fmt.Errorf("%w: segment %d has a non-finite endpoint", ErrInvalidData, i)
		}
	}

	e.segments = segments
	e.queue = newEventQueue(e.epsilon)
	e.status = newStatus(e.epsilon)

	for i, s := range segments {
		upper, lower := s.orderedEndpoints()
		e.queue.addStarting(upper, i)
		e.queue.addEnding(lower, i)
	}

	e.state = stateLoaded
	return nil
}

// Compute runs the sweep to completion, or until the first intersection is
// recorded when WithStopAtFirstIntersection(true) was set.
func (e *Engine) Compute() error {
	if e.state != stateLoaded {
		panic("segint: Compute called on a non-Loaded engine")
	}

	for {
		point, data, ok := e.queue.popMin()
		if !ok {
			break
		}
		e.handleEvent(point, data)
		if e.stopAtFirst && len(e.results) > 0 {
			break
		}
	}

	e.state = stateComputed
	return nil
}

// Drain takes ownership of the results exactly once; a second call returns
// ErrResultsAlreadyTaken without side effects.
func (e *Engine) Drain() ([]IntersectionRecord, error) {
	if e.state == stateDrained {
		return nil, ErrResultsAlreadyTaken
	}
	if e.state != stateComputed {
		panic("segint: Drain called before Compute")
	}
	res := e.results
	e.results = nil
	e.state = stateDrained
	return res, nil
}

// handleEvent implements spec §4.4.4: resolve the event's contributor set,
// optionally record an intersection, then update the status and enqueue any
// new future crossings.
func (e *Engine) handleEvent(point Vector, data *eventSet) {
	e.status.setY(point.Y)

	contributors := map[int]struct{}{}
	for idx := range data.starting {
		contributors[idx] = struct{}{}
	}
	for idx := range data.ending {
		contributors[idx] = struct{}{}
	}
	for idx := range data.intersecting {
		contributors[idx] = struct{}{}
	}
	// A status segment may pass through E without E being one of its
	// recorded endpoints or a previously-enqueued crossing (e.g. a segment
	// spanning E that another segment merely touches in passing).
	for idx, se := range e.status.entries {
		if _, already := contributors[idx]; already {
			continue
		}
		if pointOnSegmentAtSweepY(se.seg, point, e.epsilon) {
			contributors[idx] = struct{}{}
			data.intersecting[idx] = struct{}{}
		}
	}

	if len(contributors) >= 2 {
		suppressed := e.ignoreEndPoints && len(data.intersecting) == 0
		if !suppressed {
			indices := make([]int, 0, len(contributors))
			for idx := range contributors {
				indices = append(indices, idx)
			}
			sort.Ints(indices)
			e.results = append(e.results, IntersectionRecord{Point: point, Segments: indices})
		}
	}

	// Remove L ∪ C, then insert U ∪ C (degenerate segments never enter the
	// status: they have no vertical extent for a future event to remove).
	for idx := range data.ending {
		e.status.remove(idx)
	}
	for idx := range data.intersecting {
		e.status.remove(idx)
	}

	insertSet := map[int]struct{}{}
	for idx := range data.starting {
		if !e.segments[idx].isDegenerate(e.epsilon) {
			insertSet[idx] = struct{}{}
		}
	}
	for idx := range data.intersecting {
		insertSet[idx] = struct{}{}
	}
	for idx := range insertSet {
		e.status.insert(idx, e.segments[idx])
	}

	if len(insertSet) == 0 {
		below, above := e.status.neighborsAt(point)
		if below != nil && above != nil {
			e.checkFuture(below.index, above.index, point)
		}
		return
	}

	inserted := make([]int, 0, len(insertSet))
	for idx := range insertSet {
		inserted = append(inserted, idx)
	}
	sort.Slice(inserted, func(i, j int) bool {
		ei := &statusEntry{index: inserted[i], seg: e.segments[inserted[i]]}
		ej := &statusEntry{index: inserted[j], seg: e.segments[inserted[j]]}
		return e.status.comparator.Compare(ei, ej) < 0
	})
	sLeft, sRight := inserted[0], inserted[len(inserted)-1]

	if below, _ := e.status.neighbors(sLeft); below != nil {
		e.checkFuture(below.index, sLeft, point)
	}
	if _, above := e.status.neighbors(sRight); above != nil {
		e.checkFuture(sRight, above.index, point)
	}
}

// checkFuture tests segments i and j for a crossing strictly below (later
// than, in sweep order) current, enqueueing it as a future intersecting
// event. A discovered collinear overlap is instead enqueued once, at the
// overlap's upper endpoint, for both segments; the pair is not re-tested.
func (e *Engine) checkFuture(i, j int, current Vector) {
	if i == j {
		return
	}
	res, ok := Intersect(e.segments[i], e.segments[j], e.epsilon)
	if !ok {
		return
	}
	if res.isOverlap {
		upper, _ := res.Overlap.orderedEndpoints()
		if isFutureEventPoint(upper, current, e.epsilon) {
			e.queue.addIntersecting(upper, i)
			e.queue.addIntersecting(upper, j)
		}
		return
	}
	if isFutureEventPoint(res.Point, current, e.epsilon) {
		e.queue.addIntersecting(res.Point, i)
		e.queue.addIntersecting(res.Point, j)
	}
}

// isFutureEventPoint reports whether p is strictly after current in sweep
// (y, then x) order, outside tolerance. Points equal to current are not
// re-enqueued.
func isFutureEventPoint(p, current Vector, epsilon float64) bool {
	if pointsEqual(p, current, epsilon) {
		return false
	}
	if !floatsEqual(p.Y, current.Y, epsilon) {
		return p.Y > current.Y
	}
	return p.X > current.X
}
